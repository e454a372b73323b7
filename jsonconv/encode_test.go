package jsonconv

import (
	"bytes"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/signadot/go-cbor/ir"
)

func TestMarshal(t *testing.T) {
	big2_64, _ := new(big.Int).SetString("18446744073709551616", 10)
	m := ir.NewMap()
	m.Set(ir.FromText("t"), ir.FromInt(1))
	m.Set(ir.FromInt(2), ir.FromText("<&>"))
	m.Set(ir.FromBytes([]byte{1}), ir.Null())
	tests := []struct {
		name string
		in   *ir.Node
		want string
	}{
		{"int", ir.FromInt(-3), "-3"},
		{"bignum", ir.FromBigInt(big2_64), "18446744073709551616"},
		{"float", ir.FromFloat(0.1), "0.1"},
		{"integral float", ir.FromFloat(100), "100"},
		{"large float", ir.FromFloat(1e21), "1e+21"},
		{"nan", ir.FromFloat(math.NaN()), "null"},
		{"inf", ir.FromFloat(math.Inf(-1)), "null"},
		{"bytes", ir.FromBytes([]byte{1, 2}), `"AQI"`},
		{"bytes url alphabet", ir.FromBytes([]byte{0xfb, 0xff}), `"-_8"`},
		{"text", ir.FromText("a\"\n"), `"a\"\n"`},
		{"bool", ir.FromBool(false), "false"},
		{"undefined", ir.Undefined(), "null"},
		{"simple", mustSimple(t, 16), "null"},
		{"decimal", ir.FromDecimal(-2, big.NewInt(22222)), "222.22"},
		{"negative decimal", ir.FromDecimal(-1, big.NewInt(-15)), "-1.5"},
		{"small decimal", ir.FromDecimal(-3, big.NewInt(5)), "0.005"},
		{"integral decimal", ir.FromDecimal(0, big.NewInt(7)), "7"},
		{"positive exponent", ir.FromDecimal(2, big.NewInt(15)), "15e2"},
		{"tiny decimal", ir.FromDecimal(-100, big.NewInt(1)), "1e-100"},
		{"tag", ir.MustTagUint(32, ir.FromText("u")), `"u"`},
		{"hand built decimal", &ir.Node{Type: ir.TagType, Tag: big.NewInt(4), Values: []*ir.Node{ir.FromText("x")}}, `"x"`},
		{"array", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null()}), "[1,null]"},
		{"map", m, `{"t":1,"2":"<&>","h'01'":null}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Marshal(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func mustSimple(t *testing.T, v uint8) *ir.Node {
	n, err := ir.FromSimple(v)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEncodeIndent(t *testing.T) {
	node, err := Parse([]byte(`{"a":[1]}`))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Encode(node, buf, Indent(2)); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1\n  ]\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeIndentLargeNumbers(t *testing.T) {
	node, err := Parse([]byte(`[1e400, 1e5000, {}, []]`))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := Encode(node, buf, Indent(1)); err != nil {
		t.Fatal(err)
	}
	want := "[\n 1" + strings.Repeat("0", 400) + ",\n 1e5000,\n {},\n []\n]\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := `{"a":[1,2.5,"s",true,null,-0.125,123456789012345678901234567890],"b":{}}`
	node, err := Parse([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Marshal(node)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != in {
		t.Errorf("got %s, want %s", got, in)
	}
}
