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

import "github.com/mechiko/go-iccprof/pkg/icc/iccerr"

// headerSize is the fixed width of the ICC profile header, ICC.1:2010
// §7.2. The tag count immediately follows at headerSize.
const headerSize = 128

// Header field offsets within the 128-byte profile header.
const (
	offProfileSize        = 0
	offCMMType            = 4
	offVersion            = 8
	offDeviceClass        = 12
	offColorSpace         = 16
	offPCS                = 20
	offCreatedAt          = 24
	offSignature          = 36
	offPlatform           = 40
	offFlags              = 44
	offDeviceManufacturer = 48
	offDeviceModel        = 52
	offDeviceAttributes   = 56
	offRenderingIntent    = 64
	offIlluminant         = 68
	offCreator            = 80
	offProfileID          = 84
	offReserved           = 100
)

// ColorSpace is a profile's declared data color space or PCS signature
// (the raw 4-byte field, ICC.1:2010 §7.2.6/§7.2.7).
type ColorSpace uint32

func (c ColorSpace) String() string { return fourCC(uint32(c)) }

// Common color space signatures. Parse does not treat any of them
// specially.
const (
	ColorSpaceGray ColorSpace = 0x47524159 // "GRAY"
	ColorSpaceRGB  ColorSpace = 0x52474220 // "RGB "
	ColorSpaceXYZ  ColorSpace = 0x58595A20 // "XYZ "
	ColorSpaceLab  ColorSpace = 0x4C616220 // "Lab "
)

// Version is a profile's (major, minor, bugfix) version triple, decoded
// from the single BCD-encoded version field.
type Version struct {
	Major, Minor, BugFix int
}

// DateTime is the ICC.1:2010 §5.1.1 dateTimeNumber: a UTC timestamp with
// each component stored as an unsigned 16-bit value.
type DateTime struct {
	Year, Month, Day, Hour, Minute, Second uint16
}

// Header holds the decoded fields of the 128-byte profile header.
type Header struct {
	Size               uint32
	CMMType            uint32
	Version            Version
	DeviceClass        uint32
	ColorSpace         ColorSpace
	PCS                ColorSpace
	CreatedAt          DateTime
	Platform           uint32
	Flags              uint32
	DeviceManufacturer uint32
	DeviceModel        uint32
	DeviceAttributes   uint64
	RenderingIntent    uint32
	Illuminant         [3]float64
	Creator            uint32
	ProfileID          [16]byte
	ProfileIDPresent   bool
}

// supportedMajorVersion is the highest ICC.1 major version this package
// decodes (ICC.1:2010 is major version 4).
const supportedMajorVersion = 4

// decodeHeader validates and decodes the header of an ICC profile held
// in buf, covering the header checks of spec.md §4.2; the tag count and
// the tag directory entries are checked by Parse. buf must be the entire
// profile buffer; the header references its overall declared size
// against len(buf).
func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize+4 {
		return Header{}, iccerr.Malformed(0, "buffer too small to hold a profile header and tag count")
	}

	var h Header
	h.Size = getUint32(buf, offProfileSize)
	if uint64(h.Size) > uint64(len(buf)) {
		return Header{}, iccerr.Malformedf(offProfileSize, "declared profile size %d exceeds buffer length %d", h.Size, len(buf))
	}
	if h.Size < headerSize+4 {
		return Header{}, iccerr.Malformed(offProfileSize, "declared profile size is smaller than the header and tag count")
	}

	if getUint32(buf, offSignature) != sigACSP {
		return Header{}, iccerr.Malformed(offSignature, "missing 'acsp' profile file signature")
	}

	h.CMMType = getUint32(buf, offCMMType)

	rawVersion := getUint32(buf, offVersion)
	h.Version = Version{
		Major:  int(rawVersion >> 24),
		Minor:  int((rawVersion >> 20) & 0xF),
		BugFix: int((rawVersion >> 16) & 0xF),
	}
	if h.Version.Major > supportedMajorVersion {
		return Header{}, iccerr.Malformedf(offVersion, "unsupported profile major version %d", h.Version.Major)
	}

	h.DeviceClass = getUint32(buf, offDeviceClass)
	h.ColorSpace = ColorSpace(getUint32(buf, offColorSpace))
	h.PCS = ColorSpace(getUint32(buf, offPCS))

	h.CreatedAt = DateTime{
		Year:   getUint16(buf, offCreatedAt),
		Month:  getUint16(buf, offCreatedAt+2),
		Day:    getUint16(buf, offCreatedAt+4),
		Hour:   getUint16(buf, offCreatedAt+6),
		Minute: getUint16(buf, offCreatedAt+8),
		Second: getUint16(buf, offCreatedAt+10),
	}

	h.Platform = getUint32(buf, offPlatform)
	h.Flags = getUint32(buf, offFlags)
	h.DeviceManufacturer = getUint32(buf, offDeviceManufacturer)
	h.DeviceModel = getUint32(buf, offDeviceModel)
	h.DeviceAttributes = getUint64(buf, offDeviceAttributes)
	h.RenderingIntent = getUint32(buf, offRenderingIntent)

	h.Illuminant[0] = getS15Fixed16(buf, offIlluminant)
	h.Illuminant[1] = getS15Fixed16(buf, offIlluminant+4)
	h.Illuminant[2] = getS15Fixed16(buf, offIlluminant+8)
	if !isD50(h.Illuminant[0], h.Illuminant[1], h.Illuminant[2]) {
		return Header{}, iccerr.Malformed(offIlluminant, "header illuminant is not D50 within tolerance")
	}

	h.Creator = getUint32(buf, offCreator)

	copy(h.ProfileID[:], buf[offProfileID:offProfileID+16])
	for _, b := range h.ProfileID {
		if b != 0 {
			h.ProfileIDPresent = true
			break
		}
	}

	return h, nil
}
