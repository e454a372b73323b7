package ir

import (
	"math"
	"math/big"
)

// FromBigInt returns an integer node for v, an IntType node when v fits
// int64. v is copied.
func FromBigInt(v *big.Int) *Node {
	if v.IsInt64() {
		return FromInt(v.Int64())
	}
	return &Node{Type: BigIntType, Big: new(big.Int).Set(v)}
}

// FromNegUint returns -1-n, the value of a CBOR negative integer with
// argument n.
func FromNegUint(n uint64) *Node {
	if n <= math.MaxInt64 {
		return FromInt(-1 - int64(n))
	}
	v := new(big.Int).SetUint64(n)
	v.Neg(v)
	v.Sub(v, big.NewInt(1))
	return &Node{Type: BigIntType, Big: v}
}

// FromBignum returns the integer a CBOR bignum denotes: the big endian
// magnitude, or -1 minus it when neg is set.
func FromBignum(neg bool, magnitude []byte) *Node {
	v := new(big.Int).SetBytes(magnitude)
	if neg {
		v.Neg(v)
		v.Sub(v, big.NewInt(1))
	}
	return FromBigInt(v)
}

// IsInteger reports whether y holds an integer.
func (y *Node) IsInteger() bool {
	return y.Type.IsInteger()
}

// BigValue returns the value of an integer node as a new big.Int, or nil
// for any other node.
func (y *Node) BigValue() *big.Int {
	switch y.Type {
	case IntType:
		return big.NewInt(y.Int)
	case BigIntType:
		return new(big.Int).Set(y.Big)
	}
	return nil
}

// Int64 returns the value of an integer node that fits int64.
func (y *Node) Int64() (int64, bool) {
	switch y.Type {
	case IntType:
		return y.Int, true
	case BigIntType:
		if y.Big.IsInt64() {
			return y.Big.Int64(), true
		}
	}
	return 0, false
}
