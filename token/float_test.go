package token

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFloatHead(t *testing.T) {
	tests := []struct {
		in   []byte
		want float64
	}{
		{[]byte{0xf9, 0x00, 0x00}, 0},
		{[]byte{0xf9, 0x3c, 0x00}, 1},
		{[]byte{0xf9, 0x3e, 0x00}, 1.5},
		{[]byte{0xf9, 0x7b, 0xff}, 65504},
		{[]byte{0xf9, 0x00, 0x01}, 5.960464477539063e-8},
		{[]byte{0xf9, 0xc4, 0x00}, -4},
		{[]byte{0xf9, 0x7c, 0x00}, math.Inf(1)},
		{[]byte{0xf9, 0xfc, 0x00}, math.Inf(-1)},
		{[]byte{0xfa, 0x47, 0xc3, 0x50, 0x00}, 100000},
		{[]byte{0xfb, 0x3f, 0xf1, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9a}, 1.1},
	}
	for _, tc := range tests {
		h, err := ReadHead(tc.in, 0)
		if err != nil {
			t.Fatalf("ReadHead(% x): %v", tc.in, err)
		}
		if !h.IsFloat() {
			t.Fatalf("% x is not a float head", tc.in)
		}
		if got := h.Float(); got != tc.want {
			t.Errorf("Float(% x) = %v, want %v", tc.in, got, tc.want)
		}
	}
	h, _ := ReadHead([]byte{0xf9, 0x7e, 0x00}, 0)
	if !math.IsNaN(h.Float()) {
		t.Errorf("half NaN read as %v", h.Float())
	}
}

func TestAppendFloatShortest(t *testing.T) {
	tests := []struct {
		in   float64
		want []byte
	}{
		{0, []byte{0xf9, 0x00, 0x00}},
		{math.Copysign(0, -1), []byte{0xf9, 0x80, 0x00}},
		{1.5, []byte{0xf9, 0x3e, 0x00}},
		{65504, []byte{0xf9, 0x7b, 0xff}},
		{100000, []byte{0xfa, 0x47, 0xc3, 0x50, 0x00}},
		{1.1, []byte{0xfb, 0x3f, 0xf1, 0x99, 0x99, 0x99, 0x99, 0x99, 0x9a}},
		{math.Inf(1), []byte{0xfb, 0x7f, 0xf0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tc := range tests {
		got := AppendFloatShortest(nil, tc.in)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("AppendFloatShortest(%v) mismatch (-want +got):\n%s", tc.in, diff)
		}
		h, err := ReadHead(got, 0)
		if err != nil {
			t.Fatal(err)
		}
		if back := h.Float(); math.Float64bits(back) != math.Float64bits(tc.in) {
			t.Errorf("%v read back as %v", tc.in, back)
		}
	}
}
