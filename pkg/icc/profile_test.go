package icc

import "testing"

type tagFixture struct {
	sig  TagSignature
	data []byte
}

func buildProfile(tags []tagFixture) []byte {
	dirStart := tagDirStart
	dirSize := len(tags) * tagDirEntrySize
	pos := dirStart + dirSize

	offsets := make([]int, len(tags))
	for i, tg := range tags {
		offsets[i] = pos
		pos += len(tg.data)
	}

	buf := make([]byte, pos)
	beU32(buf, offProfileSize, uint32(len(buf)))
	beU32(buf, offSignature, sigACSP)
	putS15Fixed16(buf, offIlluminant, d50Illuminant[0])
	putS15Fixed16(buf, offIlluminant+4, d50Illuminant[1])
	putS15Fixed16(buf, offIlluminant+8, d50Illuminant[2])
	beU32(buf, headerSize, uint32(len(tags)))

	for i, tg := range tags {
		entryOff := dirStart + i*tagDirEntrySize
		beU32(buf, entryOff, uint32(tg.sig))
		beU32(buf, entryOff+4, uint32(offsets[i]))
		beU32(buf, entryOff+8, uint32(len(tg.data)))
		copy(buf[offsets[i]:offsets[i]+len(tg.data)], tg.data)
	}
	return buf
}

func TestParseGrayTRC(t *testing.T) {
	buf := buildProfile([]tagFixture{{SigGrayTRC, identityCurvBlock()}})
	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.GrayTRC == nil {
		t.Fatal("expected GrayTRC to be populated")
	}
	if p.RedTRC != p.GrayTRC || p.GreenTRC != p.GrayTRC || p.BlueTRC != p.GrayTRC {
		t.Error("expected kTRC to replicate into r/g/b TRC")
	}
	if p.ToXYZD50 == nil {
		t.Fatal("expected kTRC to synthesize a diagonal ToXYZD50")
	}
	want := Matrix3x3{
		{s15Fixed16RoundTrip(d50Illuminant[0]), 0, 0},
		{0, s15Fixed16RoundTrip(d50Illuminant[1]), 0},
		{0, 0, s15Fixed16RoundTrip(d50Illuminant[2])},
	}
	if *p.ToXYZD50 != want {
		t.Errorf("ToXYZD50 = %+v, want diagonal %+v", *p.ToXYZD50, want)
	}
}

func TestParseRequiresAllThreeColorTRCs(t *testing.T) {
	buf := buildProfile([]tagFixture{{SigRedTRC, identityCurvBlock()}})
	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RedTRC != nil {
		t.Error("expected RedTRC to stay nil when gTRC/bTRC are missing")
	}
}

func TestParseAllThreeColorTRCsPresent(t *testing.T) {
	buf := buildProfile([]tagFixture{
		{SigRedTRC, identityCurvBlock()},
		{SigGreenTRC, identityCurvBlock()},
		{SigBlueTRC, identityCurvBlock()},
	})
	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RedTRC == nil || p.GreenTRC == nil || p.BlueTRC == nil {
		t.Error("expected all three color TRCs to be populated")
	}
}

func buildXYZPayload(x, y, z float64) []byte {
	b := make([]byte, 20)
	beU32(b, 0, uint32(TypeXYZ))
	putS15Fixed16(b, 8, x)
	putS15Fixed16(b, 12, y)
	putS15Fixed16(b, 16, z)
	return b
}

func TestParseXYZMatrix(t *testing.T) {
	buf := buildProfile([]tagFixture{
		{SigRedXYZ, buildXYZPayload(0.43, 0.22, 0.02)},
		{SigGreenXYZ, buildXYZPayload(0.38, 0.72, 0.10)},
		{SigBlueXYZ, buildXYZPayload(0.14, 0.06, 0.71)},
	})
	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ToXYZD50 == nil {
		t.Fatal("expected ToXYZD50 to be populated")
	}
	if p.ToXYZD50[0][0] != s15Fixed16RoundTrip(0.43) || p.ToXYZD50[1][1] != s15Fixed16RoundTrip(0.72) || p.ToXYZD50[2][2] != s15Fixed16RoundTrip(0.71) {
		t.Errorf("unexpected matrix diagonal: %+v", p.ToXYZD50)
	}
}

func TestParsePrefersA2B1OverA2B0(t *testing.T) {
	a2b0 := buildMft1(2, 3, 2)
	a2b1 := buildMft1(1, 3, 2)
	buf := buildProfile([]tagFixture{
		{SigAToB0, a2b0},
		{SigAToB1, a2b1},
	})
	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tag, ok := p.GetTagBySignature(SigAToB1)
	if !ok {
		t.Fatal("expected A2B1 tag present")
	}
	if p.A2B == nil {
		t.Fatal("expected A2B to be populated")
	}
	if len(tag.Data) != len(a2b1) {
		t.Fatalf("unexpected A2B1 tag length")
	}
	if p.A2B.InputChannels != 1 {
		t.Errorf("A2B.InputChannels = %d, want 1 (decoded from A2B1, not A2B0)", p.A2B.InputChannels)
	}
}

func TestParseRejectsTagBeyondDeclaredSize(t *testing.T) {
	buf := buildProfile([]tagFixture{{SigGrayTRC, identityCurvBlock()}})
	entryOff := tagDirStart
	beU32(buf, entryOff+8, uint32(len(buf))) // inflate size past profile end
	if _, err := Parse(buf); err == nil {
		t.Fatal("expected error for tag data extending past declared profile size")
	}
}

func TestParseRejectsTagSizeBelowMinimum(t *testing.T) {
	buf := buildProfile([]tagFixture{{SigGrayTRC, identityCurvBlock()}})
	entryOff := tagDirStart
	beU32(buf, entryOff+8, 3) // below the ICC.1:2010 minimum tag element size of 4
	if _, err := Parse(buf); err == nil {
		t.Fatal("expected error for tag size below the minimum of 4 bytes")
	}
}

func TestChecksumAbsentWhenProfileIDIsZero(t *testing.T) {
	buf := buildProfile([]tagFixture{{SigGrayTRC, identityCurvBlock()}})
	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CheckSum != ChecksumAbsent {
		t.Errorf("CheckSum = %v, want ChecksumAbsent", p.CheckSum)
	}
}

func TestChecksumValidWhenProfileIDMatches(t *testing.T) {
	buf := buildProfile([]tagFixture{{SigGrayTRC, identityCurvBlock()}})
	h, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := &Profile{Header: h, raw: buf}
	sum := checksumFor(p.raw)
	copy(buf[offProfileID:offProfileID+16], sum[:])

	p2, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.CheckSum != ChecksumValid {
		t.Errorf("CheckSum = %v, want ChecksumValid", p2.CheckSum)
	}
}

func TestChecksumInvalidWhenProfileIDWrong(t *testing.T) {
	buf := buildProfile([]tagFixture{{SigGrayTRC, identityCurvBlock()}})
	buf[offProfileID] = 0xFF
	p, err := Parse(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.CheckSum != ChecksumInvalid {
		t.Errorf("CheckSum = %v, want ChecksumInvalid", p.CheckSum)
	}
}
