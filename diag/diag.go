package diag

import (
	"bytes"
	"encoding/hex"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/go-cbor/ir"
)

type state struct {
	buf    bytes.Buffer
	indent int
	depth  int
	color  func(ir.Type, ColorAttr, string) string
}

// String returns the diagnostic notation of node on a single line.
func String(node *ir.Node) string {
	s := &state{}
	s.node(node)
	return s.buf.String()
}

func Encode(node *ir.Node, w io.Writer, opts ...Option) error {
	s := &state{}
	for _, opt := range opts {
		opt(s)
	}
	s.node(node)
	if s.indent > 0 {
		s.buf.WriteByte('\n')
	}
	_, err := w.Write(s.buf.Bytes())
	return err
}

func (s *state) paint(t ir.Type, attr ColorAttr, v string) {
	if s.color != nil {
		v = s.color(t, attr, v)
	}
	s.buf.WriteString(v)
}

func (s *state) node(y *ir.Node) {
	if y == nil {
		s.buf.WriteString("<nil>")
		return
	}
	switch y.Type {
	case ir.IntType:
		s.paint(y.Type, ValueColor, strconv.FormatInt(y.Int, 10))
	case ir.BigIntType:
		s.paint(y.Type, ValueColor, y.Big.String())
	case ir.FloatType:
		s.paint(y.Type, ValueColor, FormatFloat(y.Float))
	case ir.BytesType:
		s.paint(y.Type, ValueColor, "h'"+hex.EncodeToString(y.Bytes)+"'")
	case ir.TextType:
		s.paint(y.Type, ValueColor, Quote(y.Text))
	case ir.BoolType:
		s.paint(y.Type, ValueColor, strconv.FormatBool(y.Bool))
	case ir.NullType:
		s.paint(y.Type, ValueColor, "null")
	case ir.UndefinedType:
		s.paint(y.Type, ValueColor, "undefined")
	case ir.SimpleType:
		s.paint(y.Type, ValueColor, "simple("+strconv.Itoa(int(y.Simple))+")")
	case ir.ArrayType:
		s.paint(y.Type, SepColor, "[")
		s.depth++
		for i, v := range y.Values {
			s.sep(y.Type, i)
			s.node(v)
		}
		s.depth--
		s.close(y.Type, len(y.Values), "]")
	case ir.MapType:
		s.paint(y.Type, SepColor, "{")
		s.depth++
		for i, k := range y.Keys {
			s.sep(y.Type, i)
			if k.Type == ir.TextType {
				s.paint(ir.MapType, KeyColor, Quote(k.Text))
			} else {
				s.node(k)
			}
			s.paint(y.Type, SepColor, ":")
			s.buf.WriteByte(' ')
			s.node(y.Values[i])
		}
		s.depth--
		s.close(y.Type, len(y.Keys), "}")
	case ir.TagType:
		s.paint(y.Type, TagColor, y.Tag.String()+"(")
		s.node(y.Content())
		s.paint(y.Type, TagColor, ")")
	default:
		s.buf.WriteString("<unknown>")
	}
}

// sep writes what precedes the i'th element of a container.
func (s *state) sep(t ir.Type, i int) {
	if i > 0 {
		s.paint(t, SepColor, ",")
		if s.indent == 0 {
			s.buf.WriteByte(' ')
		}
	}
	s.newline()
}

func (s *state) close(t ir.Type, n int, brkt string) {
	if n > 0 {
		s.newline()
	}
	s.paint(t, SepColor, brkt)
}

func (s *state) newline() {
	if s.indent == 0 {
		return
	}
	s.buf.WriteByte('\n')
	s.buf.WriteString(strings.Repeat(" ", s.indent*s.depth))
}

// FormatFloat formats f so it always reads as a float: with a fractional
// part, an exponent, or as Infinity, -Infinity or NaN.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		if !strings.Contains(mant, ".") {
			mant += ".0"
		}
		return mant + "e" + exp
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Quote returns v as a double quoted string, escaping quotes, backslashes
// and control characters the way JSON does.
func Quote(v string) string {
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f || r == utf8.RuneError {
				sb.WriteString(`\u`)
				sb.WriteString(strconv.FormatInt(int64(r)|0x10000, 16)[1:])
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
