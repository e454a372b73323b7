package jsonconv

import (
	"bytes"
	"encoding/base64"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/signadot/go-cbor/diag"
	"github.com/signadot/go-cbor/ir"
	"github.com/signadot/go-cbor/token"
)

// Encode writes node as JSON text followed by a newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.value(node); err != nil {
		return err
	}
	es.buf.WriteByte('\n')
	_, err := w.Write(es.buf.Bytes())
	return err
}

// Marshal returns the compact JSON text of node.
func Marshal(node *ir.Node) ([]byte, error) {
	es := &encState{}
	if err := es.value(node); err != nil {
		return nil, err
	}
	return es.buf.Bytes(), nil
}

// newline starts a line at the current depth when indenting.
func (es *encState) newline() {
	if es.indent == 0 {
		return
	}
	es.buf.WriteByte('\n')
	es.buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func (es *encState) value(y *ir.Node) error {
	buf := &es.buf
	switch y.Type {
	case ir.IntType:
		buf.WriteString(strconv.FormatInt(y.Int, 10))
	case ir.BigIntType:
		buf.WriteString(y.Big.String())
	case ir.FloatType:
		if math.IsNaN(y.Float) || math.IsInf(y.Float, 0) {
			buf.WriteString("null")
			return nil
		}
		buf.WriteString(strconv.FormatFloat(y.Float, 'g', -1, 64))
	case ir.BytesType:
		return writeString(buf, base64.RawURLEncoding.EncodeToString(y.Bytes))
	case ir.TextType:
		return writeString(buf, y.Text)
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case ir.NullType, ir.UndefinedType, ir.SimpleType:
		buf.WriteString("null")
	case ir.ArrayType:
		buf.WriteByte('[')
		es.depth++
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			es.newline()
			if err := es.value(v); err != nil {
				return err
			}
		}
		es.depth--
		if len(y.Values) > 0 {
			es.newline()
		}
		buf.WriteByte(']')
	case ir.MapType:
		buf.WriteByte('{')
		es.depth++
		for i, k := range y.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			es.newline()
			key := k.Text
			if k.Type != ir.TextType {
				key = diag.String(k)
			}
			if err := writeString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if es.indent > 0 {
				buf.WriteByte(' ')
			}
			if err := es.value(y.Values[i]); err != nil {
				return err
			}
		}
		es.depth--
		if len(y.Keys) > 0 {
			es.newline()
		}
		buf.WriteByte('}')
	case ir.TagType:
		if s, ok := decimalString(y); ok {
			buf.WriteString(s)
			return nil
		}
		return es.value(y.Content())
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	d, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// decimalString renders a well formed decimal fraction as an exact JSON
// number.
func decimalString(y *ir.Node) (string, bool) {
	tag, _ := y.TagUint64()
	c := y.Content()
	if tag != token.TagDecimalFrac || c.Type != ir.ArrayType || len(c.Values) != 2 {
		return "", false
	}
	e, m := c.Values[0], c.Values[1]
	if e.Type != ir.IntType || !m.IsInteger() {
		return "", false
	}
	digits := m.BigValue().String()
	digits, neg := strings.CutPrefix(digits, "-")
	sign := ""
	if neg {
		sign = "-"
	}
	switch {
	case e.Int == 0:
		return sign + digits, true
	case e.Int < 0 && e.Int >= -64:
		point := len(digits) + int(e.Int)
		if point <= 0 {
			return sign + "0." + strings.Repeat("0", -point) + digits, true
		}
		return sign + digits[:point] + "." + digits[point:], true
	}
	return sign + digits + "e" + strconv.FormatInt(e.Int, 10), true
}
