package encode

import (
	"math"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-cbor/diag"
	"github.com/signadot/go-cbor/ir"
)

func TestOracleBytes(t *testing.T) {
	tests := []struct {
		node *ir.Node
		v    any
	}{
		{ir.FromInt(500), 500},
		{ir.FromInt(-500), -500},
		{ir.FromUint(math.MaxUint64), uint64(math.MaxUint64)},
		{ir.FromFloat(1.5), 1.5},
		{ir.FromText("hello"), "hello"},
		{ir.FromBytes([]byte{1, 2, 3}), []byte{1, 2, 3}},
		{ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromText("a"), ir.Null()}), []any{1, "a", nil}},
		{ir.MustTagUint(100, ir.FromBool(true)), cbor.Tag{Number: 100, Content: true}},
	}
	for _, tc := range tests {
		want, err := cbor.Marshal(tc.v)
		if err != nil {
			t.Fatal(err)
		}
		got, err := Marshal(tc.node)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", diag.String(tc.node), diff)
		}
	}
}

func TestOracleDiagnose(t *testing.T) {
	m := ir.NewMap()
	m.Set(ir.FromText("k"), ir.FromSlice([]*ir.Node{ir.FromInt(-1), ir.FromBytes([]byte{0xab})}))
	m.Set(ir.FromInt(7), ir.MustTagUint(32, ir.FromText("x")))
	for _, node := range []*ir.Node{
		m,
		ir.FromInt(math.MinInt64),
		ir.FromSlice(nil),
		ir.NewMap(),
		ir.FromBool(false),
	} {
		d := MustMarshal(node)
		want, err := cbor.Diagnose(d)
		if err != nil {
			t.Fatalf("Diagnose(% x): %v", d, err)
		}
		if got := diag.String(node); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	}
}
