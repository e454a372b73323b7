package jsonconv

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/tidwall/jsonc"

	"github.com/signadot/go-cbor/debug"
	"github.com/signadot/go-cbor/ir"
	"github.com/signadot/go-cbor/token"
)

// maxExpand bounds the exponent up to which an integral number with a
// positive exponent is expanded to an integer rather than kept as a
// decimal fraction.
const maxExpand = 4096

type parser struct {
	data []byte
	dec  *json.Decoder
	// end of the last token in data. The decoder's own offset drifts once
	// it has unescaped a string.
	off int
}

// lexeme is a token together with the separators, "," or ":", that the
// tokenizer skipped before it.
type lexeme struct {
	tok   json.Token
	start int
	sep   string
}

// Parse parses the single JSON value held in data.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	if po.comments {
		// same length as the input, so offsets still point into data
		data = jsonc.ToJSON(data)
	}
	p := &parser{data: data, dec: json.NewDecoder(bytes.NewReader(data))}
	p.dec.UseNumber()

	lx, err := p.next()
	if err != nil {
		return nil, p.cut(lx, err)
	}
	if lx.sep != "" {
		return nil, p.errorf(lx.start, "unexpected %q before value", lx.sep)
	}
	node, err := p.value(lx)
	if err != nil {
		return nil, err
	}
	if lx, err := p.next(); err != io.EOF || lx.sep != "" {
		return nil, p.errorf(lx.start, "data after top-level value")
	}
	if err := p.checkStrings(); err != nil {
		return nil, err
	}
	if debug.JSON() {
		debug.Logf("json parsed %v\n", node)
	}
	return node, nil
}

func (p *parser) errorf(off int, format string, args ...any) error {
	return p.kindErrorf(off, nil, format, args...)
}

func (p *parser) kindErrorf(off int, kind error, format string, args ...any) error {
	off = min(max(off, 0), len(p.data))
	pos := token.NewPosDoc(p.data).Pos(off)
	l, c := pos.LineCol()
	return &Error{Offset: off, Line: l, Col: c, Kind: kind, Msg: fmt.Sprintf(format, args...), pos: pos}
}

// cut reports a value cut short by the end of input.
func (p *parser) cut(lx lexeme, err error) error {
	if err == io.EOF {
		return p.errorf(lx.start, "unexpected end of input")
	}
	return err
}

// next reads a token. The tokenizer passes over commas and colons
// wherever they occur, so next records them for the caller to check.
// Errors other than io.EOF are returned as *Error.
func (p *parser) next() (lexeme, error) {
	tok, err := p.dec.Token()
	lx := lexeme{tok: tok, start: p.off}
	var sep []byte
	for ; lx.start < len(p.data); lx.start++ {
		c := p.data[lx.start]
		if c == ',' || c == ':' {
			sep = append(sep, c)
			continue
		}
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			break
		}
	}
	lx.sep = string(sep)
	switch {
	case err == io.EOF:
		return lx, err
	case err != nil:
		return lx, p.errorf(lx.start, "%v", err)
	}
	p.off = min(lx.start+p.width(lx), len(p.data))
	return lx, nil
}

// width returns the length of the raw text of lx.
func (p *parser) width(lx lexeme) int {
	switch v := lx.tok.(type) {
	case json.Delim:
		return 1
	case json.Number:
		return len(v)
	case bool:
		if v {
			return len("true")
		}
		return len("false")
	case nil:
		return len("null")
	}
	d := p.data
	i := lx.start + 1
	for i < len(d) && d[i] != '"' {
		if d[i] == '\\' {
			i++
		}
		i++
	}
	return i + 1 - lx.start
}

func (p *parser) sepError(lx lexeme, want string) error {
	if want == "" {
		return p.errorf(lx.start, "unexpected %q", lx.sep)
	}
	return p.errorf(lx.start, "found %q, want %q", lx.sep, want)
}

func (p *parser) value(lx lexeme) (*ir.Node, error) {
	switch v := lx.tok.(type) {
	case json.Delim:
		switch v {
		case '[':
			return p.array()
		case '{':
			return p.object()
		}
		return nil, p.errorf(lx.start, "unexpected %q", rune(v))
	case string:
		return ir.FromText(v), nil
	case json.Number:
		n, err := Number(string(v))
		if err != nil {
			return nil, p.errorf(lx.start, "%v", err)
		}
		return n, nil
	case bool:
		if err := p.literal(lx, strconv.FormatBool(v)); err != nil {
			return nil, err
		}
		return ir.FromBool(v), nil
	case nil:
		if err := p.literal(lx, "null"); err != nil {
			return nil, err
		}
		return ir.Null(), nil
	}
	return nil, p.errorf(lx.start, "unexpected token %v", lx.tok)
}

// literal checks the spelling of a literal, of which the tokenizer reads
// only the first letter.
func (p *parser) literal(lx lexeme, lit string) error {
	if !bytes.HasPrefix(p.data[lx.start:], []byte(lit)) {
		return p.errorf(lx.start, "invalid literal, want %s", lit)
	}
	return nil
}

func (p *parser) array() (*ir.Node, error) {
	res := ir.FromSlice(nil)
	for {
		lx, err := p.next()
		if err != nil {
			return nil, p.cut(lx, err)
		}
		if lx.tok == json.Delim(']') {
			if lx.sep != "" {
				return nil, p.sepError(lx, "")
			}
			return res, nil
		}
		want := ","
		if len(res.Values) == 0 {
			want = ""
		}
		if lx.sep != want {
			return nil, p.sepError(lx, want)
		}
		v, err := p.value(lx)
		if err != nil {
			return nil, err
		}
		res.Append(v)
	}
}

func (p *parser) object() (*ir.Node, error) {
	res := ir.NewMap()
	for n := 0; ; n++ {
		lx, err := p.next()
		if err != nil {
			return nil, p.cut(lx, err)
		}
		if lx.tok == json.Delim('}') {
			if lx.sep != "" {
				return nil, p.sepError(lx, "")
			}
			return res, nil
		}
		want := ","
		if n == 0 {
			want = ""
		}
		if lx.sep != want {
			return nil, p.sepError(lx, want)
		}
		key, ok := lx.tok.(string)
		if !ok {
			return nil, p.errorf(lx.start, "object key is %v, want string", lx.tok)
		}
		vx, err := p.next()
		if err != nil {
			return nil, p.cut(vx, err)
		}
		if vx.sep != ":" {
			return nil, p.sepError(vx, ":")
		}
		v, err := p.value(vx)
		if err != nil {
			return nil, err
		}
		res.Set(ir.FromText(key), v)
	}
}

// checkStrings rejects string literals holding invalid UTF-8, control
// characters, unknown escapes or escaped unpaired surrogates. The
// tokenizer replaces bad sequences with U+FFFD rather than failing. It runs
// once the input is known to be well formed, so every literal is
// terminated.
func (p *parser) checkStrings() error {
	d := p.data
	for i := 0; i < len(d); i++ {
		if d[i] != '"' {
			continue
		}
		for i++; i < len(d) && d[i] != '"'; {
			switch c := d[i]; {
			case c == '\\':
				if i+1 >= len(d) || !strings.ContainsRune(`"\/bfnrtu`, rune(d[i+1])) {
					return p.errorf(i, "invalid escape in string")
				}
				if d[i+1] != 'u' {
					i += 2
					continue
				}
				n, err := p.unicodeEscape(i)
				if err != nil {
					return err
				}
				i += n
			case c < 0x20:
				return p.errorf(i, "control character %#02x in string", c)
			case c < utf8.RuneSelf:
				i++
			default:
				r, size := utf8.DecodeRune(d[i:])
				if r == utf8.RuneError && size <= 1 {
					return p.kindErrorf(i, ir.ErrInvalidUTF8, "invalid utf-8 byte %#02x in string", c)
				}
				i += size
			}
		}
	}
	return nil
}

// unicodeEscape returns the length of the \uXXXX escape at i, including
// the low surrogate escape that must follow a high surrogate.
func (p *parser) unicodeEscape(i int) (int, error) {
	r, ok := hex4(p.data, i+2)
	if !ok {
		return 0, p.errorf(i, "malformed unicode escape")
	}
	switch {
	case r >= 0xd800 && r < 0xdc00:
		if i+12 <= len(p.data) && p.data[i+6] == '\\' && p.data[i+7] == 'u' {
			if lo, ok := hex4(p.data, i+8); ok && lo >= 0xdc00 && lo < 0xe000 {
				return 12, nil
			}
		}
		return 0, p.kindErrorf(i, ir.ErrUnpairedSurrogate, "high surrogate \\u%04x without low surrogate", r)
	case r >= 0xdc00 && r < 0xe000:
		return 0, p.kindErrorf(i, ir.ErrUnpairedSurrogate, "low surrogate \\u%04x without high surrogate", r)
	}
	return 6, nil
}

func hex4(d []byte, i int) (uint64, bool) {
	if i+4 > len(d) {
		return 0, false
	}
	v, err := strconv.ParseUint(string(d[i:i+4]), 16, 16)
	return v, err == nil
}

// Number converts the text of a JSON number to an integer when it is
// integral and to a decimal fraction otherwise.
func Number(s string) (*ir.Node, error) {
	if !wellFormed(s) {
		return nil, fmt.Errorf("malformed number %q", s)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ir.FromInt(i), nil
	}
	body, neg := strings.CutPrefix(s, "-")
	intPart, frac, exp := body, "", int64(0)
	if i := strings.IndexAny(intPart, "eE"); i >= 0 {
		var err error
		exp, err = strconv.ParseInt(intPart[i+1:], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("exponent of %q: %w", s, err)
		}
		intPart = intPart[:i]
	}
	if i := strings.IndexByte(intPart, '.'); i >= 0 {
		intPart, frac = intPart[:i], intPart[i+1:]
	}
	digits := intPart + frac
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return nil, fmt.Errorf("malformed number %q", s)
	}
	m, _ := new(big.Int).SetString(digits, 10)
	if neg {
		m.Neg(m)
	}
	if exp < math.MinInt64+int64(len(frac)) {
		return nil, fmt.Errorf("exponent of %q out of range", s)
	}
	e := exp - int64(len(frac))
	if m.Sign() == 0 {
		return ir.FromInt(0), nil
	}
	if e >= 0 {
		if e > maxExpand {
			return ir.FromDecimal(e, m), nil
		}
		return ir.FromBigInt(m.Mul(m, pow10(e))), nil
	}
	if -e <= int64(len(digits)) {
		q, r := new(big.Int).QuoRem(m, pow10(-e), new(big.Int))
		if r.Sign() == 0 {
			return ir.FromBigInt(q), nil
		}
	}
	return ir.FromDecimal(e, m), nil
}

// wellFormed reports whether s follows the JSON number grammar: an optional
// minus, an integer part without leading zeros, an optional fraction with
// at least one digit and an optional exponent with at least one digit.
func wellFormed(s string) bool {
	digits := func(i int) int {
		j := i
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		return j
	}
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	j := digits(i)
	if j == i || (s[i] == '0' && j > i+1) {
		return false
	}
	i = j
	if i < len(s) && s[i] == '.' {
		if j = digits(i + 1); j == i+1 {
			return false
		}
		i = j
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if j = digits(i); j == i {
			return false
		}
		i = j
	}
	return i == len(s)
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
