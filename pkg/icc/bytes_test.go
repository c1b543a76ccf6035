package icc

import "testing"

func TestGetUint16(t *testing.T) {
	b := []byte{0x01, 0x02}
	if got := getUint16(b, 0); got != 0x0102 {
		t.Errorf("getUint16 = 0x%04X, want 0x0102", got)
	}
}

func TestGetUint32(t *testing.T) {
	b := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if got := getUint32(b, 0); got != 0xDEADBEEF {
		t.Errorf("getUint32 = 0x%08X, want 0xDEADBEEF", got)
	}
}

func TestGetS15Fixed16(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
		want float64
	}{
		{"one", []byte{0x00, 0x01, 0x00, 0x00}, 1.0},
		{"negative one", []byte{0xFF, 0xFF, 0x00, 0x00}, -1.0},
		{"zero", []byte{0x00, 0x00, 0x00, 0x00}, 0.0},
		{"one and a half", []byte{0x00, 0x01, 0x80, 0x00}, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getS15Fixed16(tt.b, 0); got != tt.want {
				t.Errorf("getS15Fixed16 = %v, want %v", got, tt.want)
			}
		})
	}
}
