package icc

import (
	"encoding/binary"
	"testing"
)

func beU32(b []byte, off int, v uint32) { binary.BigEndian.PutUint32(b[off:], v) }

func buildMft1(inputChannels, outputChannels, gridPoints int) []byte {
	inputTableSize := 256 * inputChannels
	gridEntries := outputChannels
	for i := 0; i < inputChannels; i++ {
		gridEntries *= gridPoints
	}
	outputTableSize := 256 * outputChannels
	total := lut8FixedHeader + inputTableSize + gridEntries + outputTableSize
	b := make([]byte, total)
	beU32(b, 0, uint32(TypeMft1))
	b[8] = byte(inputChannels)
	b[9] = byte(outputChannels)
	b[10] = byte(gridPoints)
	return b
}

func buildMft2(inputChannels, outputChannels, gridPoints, inputEntries, outputEntries int) []byte {
	inputTableBytes := inputEntries * inputChannels * 2
	gridEntries := outputChannels
	for i := 0; i < inputChannels; i++ {
		gridEntries *= gridPoints
	}
	gridBytes := gridEntries * 2
	outputTableBytes := outputEntries * outputChannels * 2
	total := lut16FixedHeader + inputTableBytes + gridBytes + outputTableBytes
	b := make([]byte, total)
	beU32(b, 0, uint32(TypeMft2))
	b[8] = byte(inputChannels)
	b[9] = byte(outputChannels)
	b[10] = byte(gridPoints)
	binary.BigEndian.PutUint16(b[48:], uint16(inputEntries))
	binary.BigEndian.PutUint16(b[50:], uint16(outputEntries))
	return b
}

func identityCurvBlock() []byte {
	b := make([]byte, 12)
	beU32(b, 0, uint32(TypeCurv))
	return b
}

func TestDecodeMft1Valid(t *testing.T) {
	data := buildMft1(1, 3, 2)
	a2b, err := decodeA2B(Tag{Type: TypeMft1, Data: data})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a2b.InputChannels != 1 || a2b.OutputChannels != 3 {
		t.Errorf("got InputChannels=%d OutputChannels=%d", a2b.InputChannels, a2b.OutputChannels)
	}
	if a2b.GridByteWidth != 1 {
		t.Errorf("GridByteWidth = %d, want 1", a2b.GridByteWidth)
	}
	if len(a2b.GridBytes) != 6 {
		t.Errorf("len(GridBytes) = %d, want 6", len(a2b.GridBytes))
	}
}

func TestDecodeMft1RejectsWrongOutputChannels(t *testing.T) {
	data := buildMft1(1, 2, 2)
	if _, err := decodeA2B(Tag{Type: TypeMft1, Data: data}); err == nil {
		t.Fatal("expected error for output_channels != 3")
	}
}

func TestDecodeMft2Valid(t *testing.T) {
	data := buildMft2(1, 3, 2, 2, 2)
	a2b, err := decodeA2B(Tag{Type: TypeMft2, Data: data})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a2b.InputCurves[0].Entries != 2 || a2b.InputCurves[0].Bits != 16 {
		t.Errorf("unexpected input curve shape: %+v", a2b.InputCurves[0])
	}
}

func TestDecodeMft2RejectsTooFewInputEntries(t *testing.T) {
	data := buildMft2(1, 3, 2, 1, 2)
	if _, err := decodeA2B(Tag{Type: TypeMft2, Data: data}); err == nil {
		t.Fatal("expected error for input_table_entries == 1")
	}
}

func TestDecodeMft2RejectsTooManyOutputEntries(t *testing.T) {
	data := buildMft2(1, 3, 2, 2, 4097)
	if _, err := decodeA2B(Tag{Type: TypeMft2, Data: data}); err == nil {
		t.Fatal("expected error for output_table_entries == 4097")
	}
}

func buildMAB(inputChannels, outputChannels int, withMatrix, withCLUT bool) []byte {
	b := make([]byte, 32)
	beU32(b, 0, uint32(TypeMAB))
	b[8] = byte(inputChannels)
	b[9] = byte(outputChannels)

	pos := 32
	beU32(b, mabOffsetBCurve, uint32(pos))
	for i := 0; i < outputChannels; i++ {
		b = append(b, identityCurvBlock()...)
	}
	pos = len(b)

	if withMatrix {
		beU32(b, mabOffsetMatrix, uint32(pos))
		b = append(b, make([]byte, 48)...)
		pos = len(b)

		beU32(b, mabOffsetMCurve, uint32(pos))
		for i := 0; i < 3; i++ {
			b = append(b, identityCurvBlock()...)
		}
		pos = len(b)
	}

	if withCLUT {
		beU32(b, mabOffsetACurve, uint32(pos))
		for i := 0; i < inputChannels; i++ {
			b = append(b, identityCurvBlock()...)
		}
		pos = len(b)

		beU32(b, mabOffsetCLUT, uint32(pos))
		clut := make([]byte, 20)
		for i := 0; i < inputChannels; i++ {
			clut[i] = 2
		}
		clut[16] = 1 // byte width
		gridEntries := outputChannels
		for i := 0; i < inputChannels; i++ {
			gridEntries *= 2
		}
		clut = append(clut, make([]byte, gridEntries)...)
		b = append(b, clut...)
	}

	return b
}

func TestDecodeMABElidedMatrixAndCLUT(t *testing.T) {
	data := buildMAB(3, 3, false, false)
	a2b, err := decodeA2B(Tag{Type: TypeMAB, Data: data})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a2b.InputChannels != 0 {
		t.Errorf("InputChannels = %d, want 0 (elided)", a2b.InputChannels)
	}
	if a2b.MatrixChannels != 0 {
		t.Errorf("MatrixChannels = %d, want 0 (elided)", a2b.MatrixChannels)
	}
}

func TestDecodeMABWithMatrixAndCLUT(t *testing.T) {
	data := buildMAB(2, 3, true, true)
	a2b, err := decodeA2B(Tag{Type: TypeMAB, Data: data})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a2b.InputChannels != 2 {
		t.Errorf("InputChannels = %d, want 2", a2b.InputChannels)
	}
	if a2b.MatrixChannels != 3 {
		t.Errorf("MatrixChannels = %d, want 3", a2b.MatrixChannels)
	}
	if a2b.GridPoints[0] != 2 || a2b.GridPoints[1] != 2 {
		t.Errorf("GridPoints = %v, want [2 2 0 0]", a2b.GridPoints)
	}
}

func TestDecodeMABElidedCLUTRequiresEqualChannels(t *testing.T) {
	data := buildMAB(2, 3, false, false)
	if _, err := decodeA2B(Tag{Type: TypeMAB, Data: data}); err == nil {
		t.Fatal("expected error when input_channels != output_channels with no CLUT")
	}
}

func TestDecodeMABMissingBCurveIsError(t *testing.T) {
	data := make([]byte, 32)
	beU32(data, 0, uint32(TypeMAB))
	data[8] = 3
	data[9] = 3
	if _, err := decodeA2B(Tag{Type: TypeMAB, Data: data}); err == nil {
		t.Fatal("expected error for missing mandatory b-curves")
	}
}

func TestDecodeMABMatrixWithoutMCurveIsError(t *testing.T) {
	data := buildMAB(3, 3, true, false)
	// zero out the m-curve offset while leaving the matrix offset set.
	beU32(data, mabOffsetMCurve, 0)
	if _, err := decodeA2B(Tag{Type: TypeMAB, Data: data}); err == nil {
		t.Fatal("expected error for matrix present without m-curves")
	}
}

func TestDecodeMABCLUTWithoutACurveIsError(t *testing.T) {
	data := buildMAB(2, 3, false, true)
	beU32(data, mabOffsetACurve, 0)
	if _, err := decodeA2B(Tag{Type: TypeMAB, Data: data}); err == nil {
		t.Fatal("expected error for CLUT present without a-curves")
	}
}
