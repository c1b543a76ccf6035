/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package icc

import "fmt"

// TagSignature identifies an entry in a profile's tag directory.
type TagSignature uint32

// Tag signatures this package recognizes during pre-parse (spec.md §4.2
// step 8). Profiles may carry other tags; those are still enumerated by
// the directory but never decoded by Parse.
const (
	SigGrayTRC  TagSignature = 0x6B545243 // "kTRC"
	SigRedTRC   TagSignature = 0x72545243 // "rTRC"
	SigGreenTRC TagSignature = 0x67545243 // "gTRC"
	SigBlueTRC  TagSignature = 0x62545243 // "bTRC"
	SigRedXYZ   TagSignature = 0x7258595A // "rXYZ"
	SigGreenXYZ TagSignature = 0x6758595A // "gXYZ"
	SigBlueXYZ  TagSignature = 0x6258595A // "bXYZ"
	SigAToB0    TagSignature = 0x41324230 // "A2B0"
	SigAToB1    TagSignature = 0x41324231 // "A2B1"
)

func (s TagSignature) String() string { return fourCC(uint32(s)) }

// PayloadType identifies the type of data stored at a tag's offset - the
// first four bytes of the payload, distinct from the tag signature that
// names the slot in the directory.
type PayloadType uint32

const (
	TypeXYZ  PayloadType = 0x58595A20 // "XYZ "
	TypePara PayloadType = 0x70617261 // "para"
	TypeCurv PayloadType = 0x63757276 // "curv"
	TypeMft1 PayloadType = 0x6D667431 // "mft1"
	TypeMft2 PayloadType = 0x6D667432 // "mft2"
	TypeMAB  PayloadType = 0x6D414220 // "mAB "
)

func (t PayloadType) String() string { return fourCC(uint32(t)) }

// fourCC renders a big-endian four-character code the way the ICC
// specification prints tag and type signatures, falling back to hex for
// non-printable values so a corrupt or unrecognized signature never
// panics a caller building a diagnostic message.
func fourCC(v uint32) string {
	bb := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	for _, c := range bb {
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("0x%08X", v)
		}
	}
	return string(bb[:])
}

const sigACSP uint32 = 0x61637370 // "acsp"

// FourCC renders a big-endian four-character code signature - a device
// class, CMM type or platform field - the way the rest of this package
// prints tag and type signatures.
func FourCC(v uint32) string { return fourCC(v) }
