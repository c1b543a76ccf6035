package icc

import "testing"

func buildHeader(size uint32) []byte {
	buf := make([]byte, size)
	beU32(buf, offProfileSize, size)
	beU32(buf, offSignature, sigACSP)
	putS15Fixed16(buf, offIlluminant, d50Illuminant[0])
	putS15Fixed16(buf, offIlluminant+4, d50Illuminant[1])
	putS15Fixed16(buf, offIlluminant+8, d50Illuminant[2])
	return buf
}

func TestDecodeHeaderValid(t *testing.T) {
	buf := buildHeader(headerSize + 4)
	h, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Size != headerSize+4 {
		t.Errorf("Size = %d, want %d", h.Size, headerSize+4)
	}
}

func TestDecodeHeaderRejectsShortBuffer(t *testing.T) {
	buf := buildHeader(headerSize + 4)[:headerSize]
	if _, err := decodeHeader(buf); err == nil {
		t.Fatal("expected error for buffer shorter than header+tag count")
	}
}

func TestDecodeHeaderRejectsSizeBeyondBuffer(t *testing.T) {
	buf := buildHeader(headerSize + 4)
	beU32(buf, offProfileSize, uint32(len(buf)+1))
	if _, err := decodeHeader(buf); err == nil {
		t.Fatal("expected error for declared size exceeding buffer length")
	}
}

func TestDecodeHeaderRejectsWrongSignature(t *testing.T) {
	buf := buildHeader(headerSize + 4)
	beU32(buf, offSignature, 0)
	if _, err := decodeHeader(buf); err == nil {
		t.Fatal("expected error for missing acsp signature")
	}
}

func TestDecodeHeaderRejectsNonD50Illuminant(t *testing.T) {
	buf := buildHeader(headerSize + 4)
	putS15Fixed16(buf, offIlluminant, 0.5)
	if _, err := decodeHeader(buf); err == nil {
		t.Fatal("expected error for non-D50 illuminant")
	}
}

func TestDecodeHeaderVersionTriple(t *testing.T) {
	buf := buildHeader(headerSize + 4)
	buf[offVersion] = 0x04
	buf[offVersion+1] = 0x30
	h, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Version != (Version{Major: 4, Minor: 3, BugFix: 0}) {
		t.Errorf("Version = %+v, want {4 3 0}", h.Version)
	}
}

func TestDecodeHeaderRejectsUnsupportedMajorVersion(t *testing.T) {
	buf := buildHeader(headerSize + 4)
	buf[offVersion] = 0x05
	if _, err := decodeHeader(buf); err == nil {
		t.Fatal("expected error for major version greater than 4")
	}
}

func TestDecodeHeaderDecodesDeviceAndCreationFields(t *testing.T) {
	buf := buildHeader(headerSize + 4)
	beU32(buf, offCreatedAt, 0x07E60009)   // year 2022, month 9
	beU32(buf, offCreatedAt+4, 0x000F0021) // day 15, hour 33 (field only, not validated)
	beU32(buf, offCreatedAt+8, 0x0000003B) // minute 0, second 59
	beU32(buf, offDeviceManufacturer, 0x4150504C)
	beU32(buf, offDeviceModel, 0x6D6E7472)
	beU32(buf, offDeviceAttributes, 0)
	beU32(buf, offDeviceAttributes+4, 1)
	beU32(buf, offCreator, 0x6C636d73)

	h, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.CreatedAt.Year != 0x07E6 || h.CreatedAt.Month != 0x0009 {
		t.Errorf("CreatedAt = %+v, want year/month 0x07E6/0x0009", h.CreatedAt)
	}
	if h.DeviceManufacturer != 0x4150504C {
		t.Errorf("DeviceManufacturer = %#x, want 0x4150504C", h.DeviceManufacturer)
	}
	if h.DeviceModel != 0x6D6E7472 {
		t.Errorf("DeviceModel = %#x, want 0x6D6E7472", h.DeviceModel)
	}
	if h.DeviceAttributes != 1 {
		t.Errorf("DeviceAttributes = %d, want 1", h.DeviceAttributes)
	}
	if h.Creator != 0x6C636d73 {
		t.Errorf("Creator = %#x, want 0x6C636d73", h.Creator)
	}
}

func TestDecodeHeaderProfileIDAbsentByDefault(t *testing.T) {
	buf := buildHeader(headerSize + 4)
	h, err := decodeHeader(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.ProfileIDPresent {
		t.Error("expected ProfileIDPresent = false for an all-zero profile ID")
	}
}
