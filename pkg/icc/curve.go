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
	"math"

	"github.com/mechiko/go-iccprof/pkg/icc/iccerr"
)

// CurveKind distinguishes the two shapes a Curve can take.
type CurveKind int

const (
	// CurveParametric holds the seven-coefficient form of spec.md §3.
	CurveParametric CurveKind = iota
	// CurveSampled holds a borrowed table of 8- or 16-bit entries.
	CurveSampled
)

// Curve is a tagged union over a parametric function and a sampled
// lookup table. Only one shape is populated, selected by Kind. Sampled
// curves borrow Table from the profile's input buffer; they are never
// copied.
type Curve struct {
	Kind CurveKind

	// Parametric: y = (a*x+b)^g + e for x >= d, else y = c*x+f.
	G, A, B, C, D, E, F float64

	// Sampled.
	Table   []byte // borrowed, Entries*(Bits/8) bytes
	Entries int
	Bits    int // 8 or 16
}

// decodeCurve interprets a 'para' or 'curv' payload into a Curve,
// returning the number of bytes consumed from data so a caller stepping
// through a sequence of curves (the A2B mAB sub-curves) can advance past
// it. See spec.md §4.4.
func decodeCurve(data []byte) (Curve, int, error) {
	if len(data) < 4 {
		return Curve{}, 0, iccerr.Malformed(0, "curve payload too small for type signature")
	}

	switch PayloadType(getUint32(data, 0)) {
	case TypePara:
		return decodeParametricCurve(data)
	case TypeCurv:
		return decodeSampledCurve(data)
	default:
		return Curve{}, 0, iccerr.Malformedf(0, "unrecognized curve type %s", fourCC(getUint32(data, 0)))
	}
}

// paraExtraBytes maps a parametric function type (0-4) to the number of
// parameter bytes beyond the common 12-byte prefix.
var paraExtraBytes = [5]int{4, 12, 16, 20, 28}

func decodeParametricCurve(data []byte) (Curve, int, error) {
	if len(data) < 12 {
		return Curve{}, 0, iccerr.Malformed(0, "para payload shorter than 12 bytes")
	}
	funcType := getUint16(data, 8)
	if int(funcType) >= len(paraExtraBytes) {
		return Curve{}, 0, iccerr.Malformedf(8, "unknown parametric function type %d", funcType)
	}
	extra := paraExtraBytes[funcType]
	if len(data) < 12+extra {
		return Curve{}, 0, iccerr.Malformed(12, "para payload truncated before its parameters")
	}

	c := Curve{Kind: CurveParametric, A: 1, B: 0, C: 0, D: 0, E: 0, F: 0}
	c.G = getS15Fixed16(data, 12)

	switch funcType {
	case 0:
		// G only; defaults above already give y = x^g.
	case 1:
		c.A = getS15Fixed16(data, 16)
		c.B = getS15Fixed16(data, 20)
		if c.A == 0 {
			return Curve{}, 0, iccerr.Malformed(16, "parametric curve variant 1 has a == 0")
		}
		c.D = -c.B / c.A
	case 2:
		c.A = getS15Fixed16(data, 16)
		c.B = getS15Fixed16(data, 20)
		c.E = getS15Fixed16(data, 24)
		if c.A == 0 {
			return Curve{}, 0, iccerr.Malformed(16, "parametric curve variant 2 has a == 0")
		}
		c.D = -c.B / c.A
		c.F = c.E
	case 3:
		c.A = getS15Fixed16(data, 16)
		c.B = getS15Fixed16(data, 20)
		c.C = getS15Fixed16(data, 24)
		c.D = getS15Fixed16(data, 28)
	case 4:
		c.A = getS15Fixed16(data, 16)
		c.B = getS15Fixed16(data, 20)
		c.C = getS15Fixed16(data, 24)
		c.D = getS15Fixed16(data, 28)
		c.E = getS15Fixed16(data, 32)
		c.F = getS15Fixed16(data, 36)
	}

	return c, 12 + extra, nil
}

func decodeSampledCurve(data []byte) (Curve, int, error) {
	if len(data) < 12 {
		return Curve{}, 0, iccerr.Malformed(0, "curv payload shorter than 12 bytes")
	}
	count := getUint32(data, 8)
	need := 12 + 2*uint64(count)
	if uint64(len(data)) < need {
		return Curve{}, 0, iccerr.Malformed(8, "curv table extends past payload")
	}

	switch count {
	case 0:
		// Identity: y = x, canonicalized as a pure-gamma parametric curve.
		return Curve{Kind: CurveParametric, G: 1, A: 1}, 12, nil
	case 1:
		v := getUint16(data, 12)
		return Curve{Kind: CurveParametric, G: float64(v) / 256.0, A: 1}, 14, nil
	default:
		c := Curve{
			Kind:    CurveSampled,
			Table:   data[12 : 12+2*count],
			Entries: int(count),
			Bits:    16,
		}
		return c, int(need), nil
	}
}

// Evaluate returns the curve's value at x. For a sampled curve, x is
// clamped to [0,1] before interpolation; for a parametric curve no
// clamping is applied, matching spec.md §4.5.
func (c Curve) Evaluate(x float64) float64 {
	if c.Kind == CurveParametric {
		return c.evalParametric(x)
	}
	return c.evalSampled(x)
}

func (c Curve) evalParametric(x float64) float64 {
	if x >= c.D {
		base := c.A*x + c.B
		if base < 0 {
			// Avoid NaN from a negative base raised to a non-integer
			// exponent; the ICC reference curve is undefined there and
			// clamping to zero keeps Evaluate finite over all of [0,1].
			base = 0
		}
		return math.Pow(base, c.G) + c.E
	}
	return c.C*x + c.F
}

func (c Curve) evalSampled(x float64) float64 {
	n := c.Entries
	if n < 2 {
		return x
	}
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}
	ix := x * float64(n-1)
	lo := int(ix)
	if lo >= n-1 {
		lo = n - 1
		return c.normalizedEntry(lo)
	}
	hi := lo + 1
	t := ix - float64(lo)
	v0 := c.normalizedEntry(lo)
	v1 := c.normalizedEntry(hi)
	return v0 + t*(v1-v0)
}

func (c Curve) normalizedEntry(i int) float64 {
	if c.Bits == 8 {
		return float64(c.Table[i]) / 255.0
	}
	return float64(getUint16(c.Table, 2*i)) / 65535.0
}
