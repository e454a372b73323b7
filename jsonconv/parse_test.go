package jsonconv

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/go-cbor/diag"
	"github.com/signadot/go-cbor/ir"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`[1.5,2.6,3.7,4.0,222.22]`, "[4([-1, 15]), 4([-1, 26]), 4([-1, 37]), 4, 4([-2, 22222])]"},
		{`0`, "0"},
		{`-0`, "0"},
		{`0.0`, "0"},
		{`-12`, "-12"},
		{`1e2`, "100"},
		{`1E+2`, "100"},
		{`100e-2`, "1"},
		{`1.50`, "4([-2, 150])"},
		{`-0.5`, "4([-1, -5])"},
		{`1e-2`, "4([-2, 1])"},
		{`2.5e3`, "2500"},
		{`12345678901234567890`, "12345678901234567890"},
		{`-9223372036854775809`, "-9223372036854775809"},
		{`1e5000`, "4([5000, 1])"},
		{`"aé😀"`, `"aé😀"`},
		{`true`, "true"},
		{`null`, "null"},
		{`[]`, "[]"},
		{`{}`, "{}"},
		{` { "b" : [ 1 , { "c" : null } ] , "a" : "x" } `, `{"b": [1, {"c": null}], "a": "x"}`},
		{`{"a":1,"a":2}`, `{"a": 2}`},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			node, err := Parse([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := diag.String(node); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseLargeExponent(t *testing.T) {
	node, err := Parse([]byte("1e400"))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.BigIntType {
		t.Fatalf("got %s, want %s", node.Type, ir.BigIntType)
	}
	want := "1" + strings.Repeat("0", 400)
	if got := node.Big.String(); got != want {
		t.Errorf("got %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		``,
		`[1,`,
		`{"a"}`,
		`{1: 2}`,
		`tru`,
		`[1] x`,
		`1 2`,
		`01`,
		`-01`,
		`1.`,
		`1.e3`,
		`.5`,
		`+1`,
		`-`,
		`nul`,
		`trux`,
		`[1 2]`,
		`[1,]`,
		`[,1]`,
		`[1,,2]`,
		`{"a":1 "b":2}`,
		`{"a" 1}`,
		`{"a"::1}`,
		`{"a":1,}`,
		`1,`,
		`"a\x"`,
		"\"tab\there\"",
		`1.5e-9223372036854775808`,
		`{"a": 1, // c
}`,
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			node, err := Parse([]byte(in))
			if err == nil {
				t.Fatalf("got %s, want error", diag.String(node))
			}
			if !errors.Is(err, ErrInvalidJSON) {
				t.Errorf("got %v, want %v", err, ErrInvalidJSON)
			}
			var jerr *Error
			if !errors.As(err, &jerr) {
				t.Fatalf("%T is not *Error", err)
			}
			if jerr.Offset < 0 || jerr.Offset > len(in) {
				t.Errorf("offset %d outside input of %d bytes", jerr.Offset, len(in))
			}
		})
	}
}

func TestParseErrorOffset(t *testing.T) {
	in := `["\n\u00e9", 1 2]`
	_, err := Parse([]byte(in))
	var jerr *Error
	if !errors.As(err, &jerr) {
		t.Fatalf("got %v, want *Error", err)
	}
	if want := strings.Index(in, "2"); jerr.Offset != want {
		t.Errorf("offset %d, want %d", jerr.Offset, want)
	}
}

func TestParseStrings(t *testing.T) {
	good := []struct {
		in   string
		want string
	}{
		{`"\ud83d\ude00"`, "\U0001f600"},
		{`"a\u00e9\n\"\\\/"`, "a\u00e9\n\"\\/"},
		{`["\ud83d\ude00", "x"]`, ""},
	}
	for _, tc := range good {
		t.Run(tc.in, func(t *testing.T) {
			node, err := Parse([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if tc.want != "" && node.Text != tc.want {
				t.Errorf("got %q, want %q", node.Text, tc.want)
			}
		})
	}

	bad := []struct {
		in   string
		kind error
	}{
		{`"\ud800"`, ir.ErrUnpairedSurrogate},
		{`"\udc00x"`, ir.ErrUnpairedSurrogate},
		{`"\ud800\u0041"`, ir.ErrUnpairedSurrogate},
		{`["ok", "\ud83d"]`, ir.ErrUnpairedSurrogate},
		{"\"\xff\"", ir.ErrInvalidUTF8},
		{"\"\xed\xa0\x80\"", ir.ErrInvalidUTF8},
	}
	for _, tc := range bad {
		t.Run(tc.in, func(t *testing.T) {
			node, err := Parse([]byte(tc.in))
			if err == nil {
				t.Fatalf("got %s, want error", diag.String(node))
			}
			if !errors.Is(err, ErrInvalidJSON) || !errors.Is(err, tc.kind) {
				t.Errorf("got %v, want %v and %v", err, ErrInvalidJSON, tc.kind)
			}
		})
	}
}

func TestParseComments(t *testing.T) {
	in := `{
	// leading
	"a": 1, /* inline */ "b": [1, 2,],
}`
	node, err := Parse([]byte(in), AllowComments(true))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := diag.String(node), `{"a": 1, "b": [1, 2]}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if _, err := Parse([]byte(in)); !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("comments accepted without AllowComments: %v", err)
	}
}

func TestNumber(t *testing.T) {
	n, err := Number("3.14159")
	if err != nil {
		t.Fatal(err)
	}
	if got := diag.String(n); got != "4([-5, 314159])" {
		t.Errorf("got %s", got)
	}
	for _, in := range []string{"1.2.3", "01", "-0.", ".5", "1.e3", "1e", "1e+", "+1", "-", "0x10", "1_000"} {
		if n, err := Number(in); err == nil {
			t.Errorf("Number(%q) = %s, want error", in, diag.String(n))
		}
	}
}
