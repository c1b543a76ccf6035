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

import (
	"bytes"
	"crypto/md5"

	"github.com/mechiko/go-iccprof/pkg/icc/iccerr"
)

// ChecksumStatus reports the outcome of comparing a profile's declared
// MD5 profile ID against one recomputed from the buffer. Verification
// is a read-only diagnostic: an invalid or absent checksum never fails
// Parse, since the ICC spec does not require the field to be populated.
type ChecksumStatus int

const (
	ChecksumAbsent ChecksumStatus = iota
	ChecksumValid
	ChecksumInvalid
)

// Profile is a parsed ICC profile. It borrows every byte it references
// from the buffer passed to Parse; the caller must keep that buffer
// alive, unmodified, for the lifetime of the Profile.
type Profile struct {
	Header

	raw []byte
	dir []tagEntry

	CheckSum ChecksumStatus

	// GrayTRC is populated from a kTRC tag, which also replicates into
	// RedTRC/GreenTRC/BlueTRC and pre-empts any {r,g,b}TRC tags. Absent
	// kTRC, RedTRC/GreenTRC/BlueTRC are populated only when all three of
	// rTRC/gTRC/bTRC are present; a profile with only some of them
	// leaves all three nil rather than guessing at the missing ones.
	GrayTRC                   *Curve
	RedTRC, GreenTRC, BlueTRC *Curve

	// ToXYZD50 is populated from rXYZ/gXYZ/bXYZ when all three tags are
	// present, with its columns the R, G, B tristimulus values; failing
	// that, a kTRC tag synthesizes it as a diagonal matrix of the
	// header's illuminant.
	ToXYZD50 *Matrix3x3

	// A2B is the device-to-PCS transform, preferring the A2B1 tag over
	// the A2B0 tag when both are present.
	A2B *A2B
}

// Parse decodes buf as an ICC profile, per spec.md §4.2. The returned
// Profile borrows buf for the lifetime of every Tag, Curve and matrix
// it hands out; buf must not be modified while the Profile is in use.
func Parse(buf []byte) (*Profile, error) {
	h, err := decodeHeader(buf)
	if err != nil {
		return nil, err
	}

	tagCount := getUint32(buf, headerSize)
	dirNeed := uint64(tagDirStart) + uint64(tagCount)*uint64(tagDirEntrySize)
	if dirNeed > uint64(h.Size) {
		return nil, iccerr.Malformed(headerSize, "tag directory extends past declared profile size")
	}

	dir := make([]tagEntry, tagCount)
	for i := 0; i < int(tagCount); i++ {
		entryOff := tagDirStart + i*tagDirEntrySize
		sig := TagSignature(getUint32(buf, entryOff))
		offset := getUint32(buf, entryOff+4)
		size := getUint32(buf, entryOff+8)
		if size < 4 {
			return nil, iccerr.Malformedf(entryOff, "tag %s size %d is smaller than the minimum tag element size", sig, size)
		}
		if uint64(offset)+uint64(size) > uint64(h.Size) {
			return nil, iccerr.Malformedf(entryOff, "tag %s data extends past declared profile size", sig)
		}
		dir[i] = tagEntry{sig: sig, offset: offset, size: size}
	}

	p := &Profile{Header: h, raw: buf[:h.Size], dir: dir}
	p.CheckSum = p.verifyChecksum()

	if err := p.loadTRC(); err != nil {
		return nil, err
	}
	if err := p.loadXYZ(); err != nil {
		return nil, err
	}
	if err := p.loadA2B(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Profile) loadTRC() error {
	if tag, ok := p.GetTagBySignature(SigGrayTRC); ok {
		c, _, err := decodeCurve(tag.Data)
		if err != nil {
			return err
		}
		p.GrayTRC = &c
		p.RedTRC, p.GreenTRC, p.BlueTRC = &c, &c, &c

		m := Matrix3x3{
			{p.Illuminant[0], 0, 0},
			{0, p.Illuminant[1], 0},
			{0, 0, p.Illuminant[2]},
		}
		p.ToXYZD50 = &m
		return nil
	}

	rTag, rOk := p.GetTagBySignature(SigRedTRC)
	gTag, gOk := p.GetTagBySignature(SigGreenTRC)
	bTag, bOk := p.GetTagBySignature(SigBlueTRC)
	if !rOk || !gOk || !bOk {
		return nil
	}

	rc, _, err := decodeCurve(rTag.Data)
	if err != nil {
		return err
	}
	gc, _, err := decodeCurve(gTag.Data)
	if err != nil {
		return err
	}
	bc, _, err := decodeCurve(bTag.Data)
	if err != nil {
		return err
	}
	p.RedTRC, p.GreenTRC, p.BlueTRC = &rc, &gc, &bc
	return nil
}

func (p *Profile) loadXYZ() error {
	rTag, rOk := p.GetTagBySignature(SigRedXYZ)
	gTag, gOk := p.GetTagBySignature(SigGreenXYZ)
	bTag, bOk := p.GetTagBySignature(SigBlueXYZ)
	if !rOk || !gOk || !bOk {
		return nil
	}

	rx, ry, rz, err := decodeXYZ(rTag.Data)
	if err != nil {
		return err
	}
	gx, gy, gz, err := decodeXYZ(gTag.Data)
	if err != nil {
		return err
	}
	bx, by, bz, err := decodeXYZ(bTag.Data)
	if err != nil {
		return err
	}

	m := Matrix3x3{
		{rx, gx, bx},
		{ry, gy, by},
		{rz, gz, bz},
	}
	p.ToXYZD50 = &m
	return nil
}

func (p *Profile) loadA2B() error {
	tag, ok := p.GetTagBySignature(SigAToB1)
	if !ok {
		tag, ok = p.GetTagBySignature(SigAToB0)
	}
	if !ok {
		return nil
	}
	a2b, err := decodeA2B(tag)
	if err != nil {
		return err
	}
	p.A2B = &a2b
	return nil
}

// verifyChecksum recomputes the MD5 profile ID over p.raw, with the
// flags, rendering intent and profile ID fields themselves zeroed per
// ICC.1:2010 §7.2.18, and compares it against the header's ProfileID.
// It never reads through p.raw in a way that would require mutating it:
// the zeroed fields are fed to the hash from separate zero buffers
// rather than by patching the borrowed buffer in place.
func (p *Profile) verifyChecksum() ChecksumStatus {
	if !p.ProfileIDPresent {
		return ChecksumAbsent
	}
	sum := checksumFor(p.raw)
	if bytes.Equal(sum[:], p.ProfileID[:]) {
		return ChecksumValid
	}
	return ChecksumInvalid
}

// checksumFor computes the ICC.1:2010 §7.2.18 profile ID over buf, with
// the flags, rendering intent and profile ID fields fed to the hash as
// zeroed stand-ins rather than patched into buf itself.
func checksumFor(buf []byte) [16]byte {
	var zero4 [4]byte
	var zero16 [16]byte

	h := md5.New()
	h.Write(buf[0:offFlags])
	h.Write(zero4[:])
	h.Write(buf[offFlags+4 : offRenderingIntent])
	h.Write(zero4[:])
	h.Write(buf[offRenderingIntent+4 : offProfileID])
	h.Write(zero16[:])
	h.Write(buf[offProfileID+16:])

	var sum [16]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
