package encode

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/signadot/go-cbor/ir"
	"github.com/signadot/go-cbor/token"
)

type EncState struct {
	shortestFloats bool
	chunk          int
	sortKeys       bool
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func Marshal(node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	return Append(nil, node, opts...)
}

// Append appends the encoding of node to dst.
func Append(dst []byte, node *ir.Node, opts ...EncodeOption) ([]byte, error) {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(dst, node, es)
}

func encode(dst []byte, y *ir.Node, es *EncState) ([]byte, error) {
	if y == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEncoding)
	}
	switch y.Type {
	case ir.IntType:
		if y.Int >= 0 {
			return token.AppendHead(dst, token.MajorUint, uint64(y.Int)), nil
		}
		return token.AppendHead(dst, token.MajorNegInt, uint64(-1-y.Int)), nil
	case ir.BigIntType:
		if y.Big == nil {
			return nil, fmt.Errorf("%w: BigInt node without value", ErrEncoding)
		}
		return appendBig(dst, y.Big), nil
	case ir.FloatType:
		if es.shortestFloats {
			return token.AppendFloatShortest(dst, y.Float), nil
		}
		return token.AppendFloat64(dst, y.Float), nil
	case ir.BytesType:
		return appendString(dst, token.MajorBytes, y.Bytes, es), nil
	case ir.TextType:
		return appendString(dst, token.MajorText, []byte(y.Text), es), nil
	case ir.ArrayType:
		dst = token.AppendHead(dst, token.MajorArray, uint64(len(y.Values)))
		var err error
		for _, v := range y.Values {
			if dst, err = encode(dst, v, es); err != nil {
				return nil, err
			}
		}
		return dst, nil
	case ir.MapType:
		return appendMap(dst, y, es)
	case ir.TagType:
		tag, ok := y.TagUint64()
		if !ok {
			return nil, fmt.Errorf("%w: tag %v does not fit a head", ErrEncoding, y.Tag)
		}
		if y.Content() == nil {
			return nil, fmt.Errorf("%w: tag %d without content", ErrEncoding, tag)
		}
		dst = token.AppendHead(dst, token.MajorTag, tag)
		return encode(dst, y.Content(), es)
	case ir.BoolType:
		if y.Bool {
			return append(dst, token.InitialByte(token.MajorSimple, token.SimpleTrue)), nil
		}
		return append(dst, token.InitialByte(token.MajorSimple, token.SimpleFalse)), nil
	case ir.NullType:
		return append(dst, token.InitialByte(token.MajorSimple, token.SimpleNull)), nil
	case ir.UndefinedType:
		return append(dst, token.InitialByte(token.MajorSimple, token.SimpleUndefined)), nil
	case ir.SimpleType:
		if y.Simple >= 20 && y.Simple < 32 {
			return nil, fmt.Errorf("%w: simple value %d is not a SimpleType value", ErrEncoding, y.Simple)
		}
		return token.AppendHead(dst, token.MajorSimple, uint64(y.Simple)), nil
	}
	return nil, fmt.Errorf("%w: unknown node type %s", ErrEncoding, y.Type)
}

// appendBig writes v as a plain integer when a head can carry it and as a
// bignum otherwise.
func appendBig(dst []byte, v *big.Int) []byte {
	if v.Sign() >= 0 {
		if v.IsUint64() {
			return token.AppendHead(dst, token.MajorUint, v.Uint64())
		}
		dst = token.AppendHead(dst, token.MajorTag, token.TagPosBignum)
		return appendRaw(dst, token.MajorBytes, v.Bytes())
	}
	// -1 - v
	n := new(big.Int).Neg(v)
	n.Sub(n, big.NewInt(1))
	if n.IsUint64() {
		return token.AppendHead(dst, token.MajorNegInt, n.Uint64())
	}
	dst = token.AppendHead(dst, token.MajorTag, token.TagNegBignum)
	return appendRaw(dst, token.MajorBytes, n.Bytes())
}

func appendRaw(dst []byte, m token.Major, p []byte) []byte {
	dst = token.AppendHead(dst, m, uint64(len(p)))
	return append(dst, p...)
}

func appendString(dst []byte, m token.Major, p []byte, es *EncState) []byte {
	if es.chunk <= 0 || len(p) <= es.chunk {
		return appendRaw(dst, m, p)
	}
	dst = token.AppendIndefinite(dst, m)
	for len(p) > 0 {
		n := min(es.chunk, len(p))
		dst = appendRaw(dst, m, p[:n])
		p = p[n:]
	}
	return append(dst, token.Break)
}

func appendMap(dst []byte, y *ir.Node, es *EncState) ([]byte, error) {
	if len(y.Keys) != len(y.Values) {
		return nil, fmt.Errorf("%w: map with %d keys and %d values", ErrEncoding, len(y.Keys), len(y.Values))
	}
	dst = token.AppendHead(dst, token.MajorMap, uint64(len(y.Keys)))
	var err error
	if !es.sortKeys {
		for i := range y.Keys {
			if dst, err = encode(dst, y.Keys[i], es); err != nil {
				return nil, err
			}
			if dst, err = encode(dst, y.Values[i], es); err != nil {
				return nil, err
			}
		}
		return dst, nil
	}
	type entry struct{ key, val []byte }
	entries := make([]entry, len(y.Keys))
	for i := range y.Keys {
		if entries[i].key, err = encode(nil, y.Keys[i], es); err != nil {
			return nil, err
		}
		if entries[i].val, err = encode(nil, y.Values[i], es); err != nil {
			return nil, err
		}
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return bytes.Compare(a.key, b.key)
	})
	for _, e := range entries {
		dst = append(dst, e.key...)
		dst = append(dst, e.val...)
	}
	return dst, nil
}
