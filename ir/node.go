package ir

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/signadot/go-cbor/token"
)

type Node struct {
	Type Type

	Int    int64
	Big    *big.Int
	Float  float64
	Bytes  []byte
	Text   string
	Bool   bool
	Simple uint8
	Tag    *big.Int

	Keys   []*Node
	Values []*Node

	index map[uint64][]int
}

func FromInt(v int64) *Node {
	return &Node{Type: IntType, Int: v}
}

func FromInt8(v int8) *Node   { return FromInt(int64(v)) }
func FromInt16(v int16) *Node { return FromInt(int64(v)) }
func FromInt32(v int32) *Node { return FromInt(int64(v)) }

func FromUint(v uint64) *Node {
	if v <= math.MaxInt64 {
		return FromInt(int64(v))
	}
	return &Node{Type: BigIntType, Big: new(big.Int).SetUint64(v)}
}

func FromUint8(v uint8) *Node   { return FromInt(int64(v)) }
func FromUint16(v uint16) *Node { return FromInt(int64(v)) }
func FromUint32(v uint32) *Node { return FromInt(int64(v)) }

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float: f}
}

func FromFloat32(f float32) *Node {
	return FromFloat(float64(f))
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func Undefined() *Node {
	return &Node{Type: UndefinedType}
}

// FromSimple returns the simple value v. The values 20 through 23 are
// returned as the boolean, null and undefined variants; 24 through 31 are
// not simple values and are rejected.
func FromSimple(v uint8) (*Node, error) {
	switch v {
	case 20, 21:
		return FromBool(v == 21), nil
	case 22:
		return Null(), nil
	case 23:
		return Undefined(), nil
	}
	if v >= 24 && v < 32 {
		return nil, fmt.Errorf("%w: %d is reserved", ErrInvalidSimple, v)
	}
	return &Node{Type: SimpleType, Simple: v}, nil
}

// FromText returns a text node for v, which must be valid UTF-8.
func FromText(v string) *Node {
	return &Node{Type: TextType, Text: v}
}

// FromTextChecked is FromText for untrusted input.
func FromTextChecked(v string) (*Node, error) {
	if !utf8.ValidString(v) {
		return nil, ErrInvalidUTF8
	}
	return FromText(v), nil
}

// FromBytes returns a byte string node holding a copy of v.
func FromBytes(v []byte) *Node {
	return &Node{Type: BytesType, Bytes: bytes.Clone(nonNil(v))}
}

func nonNil(v []byte) []byte {
	if v == nil {
		return []byte{}
	}
	return v
}

func FromSlice(vs []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(vs)),
	}
	copy(res.Values, vs)
	return res
}

// Append adds v to the end of the array y.
func (y *Node) Append(v *Node) *Node {
	if y.Type != ArrayType {
		panic(fmt.Sprintf("ir: Append on %s node", y.Type))
	}
	y.Values = append(y.Values, v)
	return y
}

// FromTag returns content tagged with tag. The tag is copied. See
// FromTagUint for the tags with restricted content.
func FromTag(tag *big.Int, content *Node) (*Node, error) {
	if tag == nil || tag.Sign() < 0 {
		return nil, fmt.Errorf("%w: %v is negative", ErrInvalidTag, tag)
	}
	if tag.BitLen() > 64 {
		return nil, fmt.Errorf("%w: %v exceeds 64 bits", ErrInvalidTag, tag)
	}
	return FromTagUint(tag.Uint64(), content)
}

// FromTagUint returns content tagged with tag.
//
// Tags 2 and 3 over a byte string are bignums and yield the integer they
// denote, so the result is not a TagType node. Tag 4 requires the decimal
// fraction content [exponent, mantissa] with an IntType exponent and an
// integer mantissa. Other content for these tags is ErrInvalidTag.
func FromTagUint(tag uint64, content *Node) (*Node, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: no content", ErrInvalidTag)
	}
	switch tag {
	case token.TagPosBignum, token.TagNegBignum:
		if content.Type != BytesType {
			return nil, fmt.Errorf("%w: tag %d content is %s, want Bytes", ErrInvalidTag, tag, content.Type)
		}
		return FromBignum(tag == token.TagNegBignum, content.Bytes), nil
	case token.TagDecimalFrac:
		if err := checkDecimal(content); err != nil {
			return nil, err
		}
	}
	return &Node{
		Type:   TagType,
		Tag:    new(big.Int).SetUint64(tag),
		Values: []*Node{content},
	}, nil
}

// MustTagUint is FromTagUint for tags known to be valid. It panics on error.
func MustTagUint(tag uint64, content *Node) *Node {
	n, err := FromTagUint(tag, content)
	if err != nil {
		panic(err)
	}
	return n
}

func checkDecimal(c *Node) error {
	if c.Type != ArrayType || len(c.Values) != 2 {
		return fmt.Errorf("%w: decimal fraction content is %s of length %d, want 2 element Array", ErrInvalidTag, c.Type, c.Len())
	}
	if c.Values[0] == nil || c.Values[0].Type != IntType {
		return fmt.Errorf("%w: decimal fraction exponent is not Int", ErrInvalidTag)
	}
	if c.Values[1] == nil || !c.Values[1].IsInteger() {
		return fmt.Errorf("%w: decimal fraction mantissa is not an integer", ErrInvalidTag)
	}
	return nil
}

// TagUint64 returns the tag number of a tag node.
func (y *Node) TagUint64() (uint64, bool) {
	if y.Type != TagType || y.Tag == nil || !y.Tag.IsUint64() {
		return 0, false
	}
	return y.Tag.Uint64(), true
}

// Content returns the tagged value of a tag node, nil otherwise.
func (y *Node) Content() *Node {
	if y.Type != TagType || len(y.Values) == 0 {
		return nil
	}
	return y.Values[0]
}

// FromDecimal returns the decimal fraction mantissa*10^exponent as tag 4.
func FromDecimal(exponent int64, mantissa *big.Int) *Node {
	return &Node{
		Type:   TagType,
		Tag:    big.NewInt(token.TagDecimalFrac),
		Values: []*Node{FromSlice([]*Node{FromInt(exponent), FromBigInt(mantissa)})},
	}
}

// Len returns the element count of an array, the entry count of a map, the
// byte count of a byte string and the code point count of a text string.
// It is 0 for every other type.
func (y *Node) Len() int {
	switch y.Type {
	case ArrayType:
		return len(y.Values)
	case MapType:
		return len(y.Keys)
	case BytesType:
		return len(y.Bytes)
	case TextType:
		return utf8.RuneCountInString(y.Text)
	}
	return 0
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{
		Type:   y.Type,
		Int:    y.Int,
		Float:  y.Float,
		Text:   y.Text,
		Bool:   y.Bool,
		Simple: y.Simple,
	}
	if y.Big != nil {
		dst.Big = new(big.Int).Set(y.Big)
	}
	if y.Tag != nil {
		dst.Tag = new(big.Int).Set(y.Tag)
	}
	if y.Bytes != nil {
		dst.Bytes = bytes.Clone(y.Bytes)
	}
	if y.Keys != nil {
		dst.Keys = make([]*Node, len(y.Keys))
		for i, k := range y.Keys {
			dst.Keys[i] = k.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			dst.Values[i] = v.Clone()
		}
	}
	if y.index != nil {
		dst.reindex()
	}
	return dst
}
