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

// Big-endian scalar and fixed-point decoders over a borrowed byte range.
// Every reader here trusts the caller's length contract: callers must
// have already checked len(b) >= offset+width before calling. The
// decoders that sit above these (header, directory, curve, a2b) are the
// ones responsible for bounds-checking attacker-controlled offsets; this
// file never looks at input-derived lengths itself.

func getUint16(b []byte, off int) uint16 {
	return uint16(b[off])<<8 | uint16(b[off+1])
}

func getUint32(b []byte, off int) uint32 {
	return uint32(b[off])<<24 | uint32(b[off+1])<<16 | uint32(b[off+2])<<8 | uint32(b[off+3])
}

func getUint64(b []byte, off int) uint64 {
	return uint64(getUint32(b, off))<<32 | uint64(getUint32(b, off+4))
}

func getInt32(b []byte, off int) int32 {
	return int32(getUint32(b, off))
}

// getS15Fixed16 reads a signed 15.16 fixed-point number: a big-endian
// 32-bit integer divided by 65536.
func getS15Fixed16(b []byte, off int) float64 {
	return float64(getInt32(b, off)) / 65536.0
}
