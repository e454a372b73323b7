package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// canonicalNaN is hashed for every NaN, since Equal treats them alike.
const canonicalNaN = 0x7ff8000000000001

// Hash returns a 64-bit hash of the node, consistent with Equal.
// Hashes are stable within a process only.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	var b [8]byte

	h.WriteByte(byte(rank(n.Type)))

	switch n.Type {
	case NullType, UndefinedType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case SimpleType:
		h.WriteByte(n.Simple)
	case IntType, BigIntType:
		// Int and BigInt holding the same value must agree, so both hash
		// the sign and the big endian magnitude.
		v := n.BigValue()
		h.WriteByte(byte(v.Sign() + 1))
		h.Write(v.Bytes())
	case FloatType:
		bits := math.Float64bits(n.Float)
		if math.IsNaN(n.Float) {
			bits = canonicalNaN
		}
		binary.LittleEndian.PutUint64(b[:], bits)
		h.Write(b[:])
	case BytesType:
		h.Write(n.Bytes)
	case TextType:
		h.WriteString(n.Text)
	case ArrayType:
		for _, v := range n.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MapType:
		// Entries combine by addition so insertion order does not matter.
		var sum uint64
		for i, k := range n.Keys {
			sum += entryHash(k.Hash(), n.Values[i].Hash())
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], uint64(len(n.Keys)))
		h.Write(b[:])
	case TagType:
		h.Write(n.Tag.Bytes())
		h.WriteByte(0)
		binary.LittleEndian.PutUint64(b[:], n.Content().Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}

func entryHash(k, v uint64) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], k)
	binary.LittleEndian.PutUint64(b[8:], v)
	return maphash.Bytes(seed, b[:])
}
