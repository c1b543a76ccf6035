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

// A2B is the decoded device-to-PCS transform pipeline: input curves,
// multidimensional grid, matrix, matrix curves and output curves. A
// zero InputChannels means the input/CLUT stage is elided (identity);
// a zero MatrixChannels means the matrix/M-curve stage is elided.
// See spec.md §3.
type A2B struct {
	InputChannels  int
	OutputChannels int
	GridPoints     [4]int
	InputCurves    [4]Curve

	GridBytes     []byte // borrowed, GridByteWidth bytes per entry
	GridByteWidth int    // 1 or 2

	MatrixChannels int
	MatrixCurves   [3]Curve
	Matrix         [3][4]float64

	OutputCurves [3]Curve
}

// decodeA2B dispatches on the tag's payload type and decodes it into an
// A2B record. See spec.md §4.6.
func decodeA2B(tag Tag) (A2B, error) {
	switch tag.Type {
	case TypeMft1:
		return decodeMft1(tag.Data)
	case TypeMft2:
		return decodeMft2(tag.Data)
	case TypeMAB:
		return decodeMAB(tag.Data)
	default:
		return A2B{}, iccerr.Malformedf(0, "unrecognized A2B payload type %s", tag.Type)
	}
}

const (
	lut8FixedHeader  = 48
	lut16FixedHeader = 52
)

func decodeMft1(data []byte) (A2B, error) {
	if len(data) < lut8FixedHeader {
		return A2B{}, iccerr.Malformed(0, "mft1 payload shorter than its fixed header")
	}
	inputChannels := int(data[8])
	outputChannels := int(data[9])
	gridPoints := int(data[10])
	if inputChannels < 1 || inputChannels > 4 {
		return A2B{}, iccerr.Malformed(8, "mft1 input channel count out of range")
	}
	if outputChannels != 3 {
		return A2B{}, iccerr.Malformed(9, "mft1 requires 3 output channels")
	}
	if gridPoints < 2 {
		return A2B{}, iccerr.Malformed(10, "mft1 grid has fewer than 2 points per axis")
	}

	inputTableSize := 256 * inputChannels
	gridEntries := uint64(outputChannels)
	for i := 0; i < inputChannels; i++ {
		gridEntries *= uint64(gridPoints)
	}
	outputTableSize := 256 * outputChannels
	total := uint64(lut8FixedHeader) + uint64(inputTableSize) + gridEntries + uint64(outputTableSize)
	if uint64(len(data)) < total {
		return A2B{}, iccerr.Malformed(lut8FixedHeader, "mft1 tables extend past tag size")
	}

	inputStart := lut8FixedHeader
	gridStart := inputStart + inputTableSize
	outputStart := gridStart + int(gridEntries)

	a2b := A2B{
		InputChannels:  inputChannels,
		OutputChannels: 3,
		GridByteWidth:  1,
		GridBytes:      data[gridStart : gridStart+int(gridEntries)],
	}
	for ch := 0; ch < inputChannels; ch++ {
		a2b.GridPoints[ch] = gridPoints
		a2b.InputCurves[ch] = Curve{Kind: CurveSampled, Table: data[inputStart+ch*256 : inputStart+(ch+1)*256], Entries: 256, Bits: 8}
	}
	for ch := 0; ch < outputChannels; ch++ {
		a2b.OutputCurves[ch] = Curve{Kind: CurveSampled, Table: data[outputStart+ch*256 : outputStart+(ch+1)*256], Entries: 256, Bits: 8}
	}
	return a2b, nil
}

func decodeMft2(data []byte) (A2B, error) {
	if len(data) < lut16FixedHeader {
		return A2B{}, iccerr.Malformed(0, "mft2 payload shorter than its fixed header")
	}
	inputChannels := int(data[8])
	outputChannels := int(data[9])
	gridPoints := int(data[10])
	if inputChannels < 1 || inputChannels > 4 {
		return A2B{}, iccerr.Malformed(8, "mft2 input channel count out of range")
	}
	if outputChannels != 3 {
		return A2B{}, iccerr.Malformed(9, "mft2 requires 3 output channels")
	}
	if gridPoints < 2 {
		return A2B{}, iccerr.Malformed(10, "mft2 grid has fewer than 2 points per axis")
	}

	inputEntries := int(getUint16(data, 48))
	outputEntries := int(getUint16(data, 50))
	if inputEntries < 2 || inputEntries > 4096 {
		return A2B{}, iccerr.Malformed(48, "mft2 input table entry count out of range")
	}
	if outputEntries < 2 || outputEntries > 4096 {
		return A2B{}, iccerr.Malformed(50, "mft2 output table entry count out of range")
	}

	inputTableBytes := inputEntries * inputChannels * 2
	gridEntries := uint64(outputChannels)
	for i := 0; i < inputChannels; i++ {
		gridEntries *= uint64(gridPoints)
	}
	gridBytes := gridEntries * 2
	outputTableBytes := outputEntries * outputChannels * 2
	total := uint64(lut16FixedHeader) + uint64(inputTableBytes) + gridBytes + uint64(outputTableBytes)
	if uint64(len(data)) < total {
		return A2B{}, iccerr.Malformed(lut16FixedHeader, "mft2 tables extend past tag size")
	}

	inputStart := lut16FixedHeader
	gridStart := inputStart + inputTableBytes
	outputStart := gridStart + int(gridBytes)

	a2b := A2B{
		InputChannels:  inputChannels,
		OutputChannels: 3,
		GridByteWidth:  2,
		GridBytes:      data[gridStart : gridStart+int(gridBytes)],
	}
	for ch := 0; ch < inputChannels; ch++ {
		a2b.GridPoints[ch] = gridPoints
		start := inputStart + ch*inputEntries*2
		a2b.InputCurves[ch] = Curve{Kind: CurveSampled, Table: data[start : start+inputEntries*2], Entries: inputEntries, Bits: 16}
	}
	for ch := 0; ch < outputChannels; ch++ {
		start := outputStart + ch*outputEntries*2
		a2b.OutputCurves[ch] = Curve{Kind: CurveSampled, Table: data[start : start+outputEntries*2], Entries: outputEntries, Bits: 16}
	}
	return a2b, nil
}

// mAB sub-offset slots, relative to the start of the tag payload.
const (
	mabOffsetBCurve = 12
	mabOffsetMatrix = 16
	mabOffsetMCurve = 20
	mabOffsetCLUT   = 24
	mabOffsetACurve = 28
)

func decodeMAB(data []byte) (A2B, error) {
	if len(data) < 32 {
		return A2B{}, iccerr.Malformed(0, "mAB payload shorter than its fixed header")
	}
	inputChannels := int(data[8])
	outputChannels := int(data[9])
	if inputChannels < 1 || inputChannels > 4 {
		return A2B{}, iccerr.Malformed(8, "mAB input channel count out of range")
	}
	if outputChannels != 3 {
		return A2B{}, iccerr.Malformed(9, "mAB requires 3 output channels")
	}

	bOff := getUint32(data, mabOffsetBCurve)
	matOff := getUint32(data, mabOffsetMatrix)
	mOff := getUint32(data, mabOffsetMCurve)
	clutOff := getUint32(data, mabOffsetCLUT)
	aOff := getUint32(data, mabOffsetACurve)

	if bOff == 0 {
		return A2B{}, iccerr.Malformed(mabOffsetBCurve, "mAB is missing its mandatory b-curves")
	}
	if (mOff == 0) != (matOff == 0) {
		return A2B{}, iccerr.Malformed(mabOffsetMCurve, "mAB m-curves and matrix must be both present or both absent")
	}
	if (aOff == 0) != (clutOff == 0) {
		return A2B{}, iccerr.Malformed(mabOffsetACurve, "mAB a-curves and CLUT must be both present or both absent")
	}

	a2b := A2B{OutputChannels: outputChannels}

	bCurves, err := decodeCurveBlock(data, int(bOff), outputChannels)
	if err != nil {
		return A2B{}, err
	}
	copy(a2b.OutputCurves[:], bCurves)

	if matOff != 0 {
		matrix, err := decodeMatrix3x4(data, int(matOff))
		if err != nil {
			return A2B{}, err
		}
		mCurves, err := decodeCurveBlock(data, int(mOff), 3)
		if err != nil {
			return A2B{}, err
		}
		a2b.Matrix = matrix
		a2b.MatrixChannels = 3
		copy(a2b.MatrixCurves[:], mCurves)
	}

	if clutOff != 0 {
		aCurves, err := decodeCurveBlock(data, int(aOff), inputChannels)
		if err != nil {
			return A2B{}, err
		}
		copy(a2b.InputCurves[:inputChannels], aCurves)

		gridPoints, gridBytes, byteWidth, err := decodeCLUT(data, int(clutOff), inputChannels, outputChannels)
		if err != nil {
			return A2B{}, err
		}
		a2b.GridPoints = gridPoints
		a2b.GridBytes = gridBytes
		a2b.GridByteWidth = byteWidth
		a2b.InputChannels = inputChannels
	} else {
		if inputChannels != outputChannels {
			return A2B{}, iccerr.Malformed(8, "mAB with no a-curves/CLUT requires input_channels == output_channels")
		}
		a2b.InputChannels = 0
	}

	return a2b, nil
}

// decodeCurveBlock decodes count curve sub-blocks starting at offset,
// each advanced to a 4-byte boundary per spec.md §4.6. All arithmetic
// is bounds-checked against len(data) before it is used to slice data.
func decodeCurveBlock(data []byte, offset, count int) ([]Curve, error) {
	curves := make([]Curve, count)
	pos := uint64(offset)
	for i := 0; i < count; i++ {
		if pos > uint64(len(data)) {
			return nil, iccerr.Malformed(offset, "curve sub-block offset out of range")
		}
		curve, consumed, err := decodeCurve(data[pos:])
		if err != nil {
			return nil, err
		}
		curves[i] = curve
		aligned := (uint64(consumed) + 3) &^ 3
		pos += aligned
		if pos > uint64(len(data)) {
			return nil, iccerr.Malformed(offset, "curve sub-block extends past tag size")
		}
	}
	return curves, nil
}

func decodeMatrix3x4(data []byte, offset int) ([3][4]float64, error) {
	var m [3][4]float64
	if offset < 0 || offset+48 > len(data) {
		return m, iccerr.Malformed(offset, "mAB matrix sub-block out of range")
	}
	var vals [12]float64
	for i := range vals {
		vals[i] = getS15Fixed16(data, offset+i*4)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r][c] = vals[r*3+c]
		}
		m[r][3] = vals[9+r]
	}
	return m, nil
}

// decodeCLUT interprets the mAB CLUT sub-block: a 16-byte grid_points
// array (only the first inputChannels entries used), a 1-byte grid byte
// width, 3 reserved bytes, then the grid entries themselves.
func decodeCLUT(data []byte, offset, inputChannels, outputChannels int) ([4]int, []byte, int, error) {
	var gridPoints [4]int
	if offset < 0 || offset+20 > len(data) {
		return gridPoints, nil, 0, iccerr.Malformed(offset, "mAB CLUT sub-block header out of range")
	}
	for i := 0; i < inputChannels; i++ {
		g := int(data[offset+i])
		if g < 2 {
			return gridPoints, nil, 0, iccerr.Malformedf(offset+i, "CLUT grid axis %d has fewer than 2 points", i)
		}
		gridPoints[i] = g
	}
	byteWidth := int(data[offset+16])
	if byteWidth != 1 && byteWidth != 2 {
		return gridPoints, nil, 0, iccerr.Malformed(offset+16, "CLUT byte width must be 1 or 2")
	}

	entries := uint64(outputChannels)
	for i := 0; i < inputChannels; i++ {
		entries *= uint64(gridPoints[i])
	}
	need := entries * uint64(byteWidth)

	start := offset + 20
	if uint64(len(data)-start) < need {
		return gridPoints, nil, 0, iccerr.Malformed(start, "CLUT grid extends past tag size")
	}
	return gridPoints, data[start : start+int(need)], byteWidth, nil
}
