package decode

import (
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/ugorji/go/codec"

	"github.com/signadot/go-cbor/diag"
)

// TestOracle decodes the output of an independent encoder and compares the
// diagnostic notation of both sides.
func TestOracle(t *testing.T) {
	values := []any{
		0,
		23,
		24,
		-1,
		-1000,
		int64(math.MinInt64),
		uint64(math.MaxUint64),
		"hello",
		"",
		[]byte{1, 2, 3},
		[]byte{},
		true,
		false,
		nil,
		[]any{1, "a", true, nil},
		[]int{},
		map[string]any{"a": []int{1, 2}, "b": map[string]int{"c": 3}},
		map[int]string{1: "one", -2: "minus two"},
		cbor.Tag{Number: 100, Content: "x"},
		cbor.Tag{Number: 1 << 40, Content: []any{1, 2}},
	}
	for _, v := range values {
		data, err := cbor.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", v, err)
		}
		want, err := cbor.Diagnose(data)
		if err != nil {
			t.Fatalf("Diagnose(% x): %v", data, err)
		}
		node, err := Decode(data)
		if err != nil {
			t.Errorf("Decode(% x): %v", data, err)
			continue
		}
		if got := diag.String(node); got != want {
			t.Errorf("Decode(% x) = %s, want %s", data, got, want)
		}
	}
}

// TestOracleUgorji decodes the output of a second encoder, using the first
// one's diagnostic notation as reference.
func TestOracleUgorji(t *testing.T) {
	values := []any{
		uint64(1) << 40,
		-24,
		"text",
		[]byte{0xca, 0xfe},
		[]any{"a", []any{uint8(1), int16(-2)}, nil, false},
		map[string]any{"k": []string{"x", "y"}},
	}
	h := &codec.CborHandle{}
	for _, v := range values {
		var data []byte
		if err := codec.NewEncoderBytes(&data, h).Encode(v); err != nil {
			t.Fatalf("Encode(%v): %v", v, err)
		}
		want, err := cbor.Diagnose(data)
		if err != nil {
			t.Fatalf("Diagnose(% x): %v", data, err)
		}
		node, err := Decode(data, Strict(true))
		if err != nil {
			t.Errorf("Decode(% x): %v", data, err)
			continue
		}
		if got := diag.String(node); got != want {
			t.Errorf("Decode(% x) = %s, want %s", data, got, want)
		}
	}
}
