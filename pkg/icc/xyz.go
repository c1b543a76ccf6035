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

// Matrix3x3 is a row-major 3x3 matrix, used for the RGB-to-XYZ D50
// linear transform built from the rXYZ/gXYZ/bXYZ tags or synthesized
// from the illuminant for a kTRC-only (gray) profile.
type Matrix3x3 [3][3]float64

// xyzPayloadSize is the minimum size of an 'XYZ ' tag payload: 4-byte
// type signature, 4 reserved bytes, then three s15.16 components.
const xyzPayloadSize = 20

// decodeXYZ interprets an 'XYZ ' payload, returning its (X, Y, Z).
func decodeXYZ(data []byte) (x, y, z float64, err error) {
	if len(data) < xyzPayloadSize {
		return 0, 0, 0, iccerr.Malformed(0, "XYZ payload shorter than 20 bytes")
	}
	if PayloadType(getUint32(data, 0)) != TypeXYZ {
		return 0, 0, 0, iccerr.Malformedf(0, "expected XYZ payload, got %s", fourCC(getUint32(data, 0)))
	}
	x = getS15Fixed16(data, 8)
	y = getS15Fixed16(data, 12)
	z = getS15Fixed16(data, 16)
	return x, y, z, nil
}

// d50Illuminant is the CIE D50 illuminant white point used by the PCS,
// ICC.1:2010 §7.2.16.
var d50Illuminant = [3]float64{0.9642, 1.0000, 0.8249}

// d50Tolerance is the per-axis tolerance spec.md §4.2 step 6 allows
// between a profile's declared illuminant and D50.
const d50Tolerance = 0.01

func isD50(x, y, z float64) bool {
	return absf(x-d50Illuminant[0]) <= d50Tolerance &&
		absf(y-d50Illuminant[1]) <= d50Tolerance &&
		absf(z-d50Illuminant[2]) <= d50Tolerance
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
