package ir

import (
	"bytes"
	"cmp"
	"math"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally equal.
//
// Integers compare by value regardless of variant. Floats compare by bit
// pattern, except that all NaNs are equal to each other. Maps compare as
// sets of entries, ignoring insertion order.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.IsInteger() && b.IsInteger() {
		return compareInts(a, b) == 0
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType, UndefinedType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case SimpleType:
		return a.Simple == b.Simple
	case FloatType:
		if math.IsNaN(a.Float) {
			return math.IsNaN(b.Float)
		}
		return math.Float64bits(a.Float) == math.Float64bits(b.Float)
	case BytesType:
		return bytes.Equal(a.Bytes, b.Bytes)
	case TextType:
		return a.Text == b.Text
	case ArrayType:
		return slices.EqualFunc(a.Values, b.Values, Equal)
	case MapType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i, k := range a.Keys {
			j := b.find(k)
			if j < 0 || !Equal(a.Values[i], b.Values[j]) {
				return false
			}
		}
		return true
	case TagType:
		return a.Tag.Cmp(b.Tag) == 0 && Equal(a.Content(), b.Content())
	}
	return false
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Compare is a total order consistent with Equal. Maps are ordered by size
// and then by their entries sorted by key.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case IntType, BigIntType:
		return compareInts(a, b)
	case FloatType:
		return compareFloats(a.Float, b.Float)
	case BytesType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case TextType:
		return strings.Compare(a.Text, b.Text)
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case SimpleType:
		return cmp.Compare(a.Simple, b.Simple)
	case ArrayType:
		return slices.CompareFunc(a.Values, b.Values, Compare)
	case MapType:
		return compareMaps(a, b)
	case TagType:
		if c := a.Tag.Cmp(b.Tag); c != 0 {
			return c
		}
		return Compare(a.Content(), b.Content())
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Undefined < Bool < Simple < Int,BigInt < Float < Bytes < Text < Array < Map < Tag
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case UndefinedType:
		return 1
	case BoolType:
		return 2
	case SimpleType:
		return 3
	case IntType, BigIntType:
		return 4
	case FloatType:
		return 5
	case BytesType:
		return 6
	case TextType:
		return 7
	case ArrayType:
		return 8
	case MapType:
		return 9
	case TagType:
		return 10
	}
	return 100
}

func compareInts(a, b *Node) int {
	if a.Type == IntType && b.Type == IntType {
		return cmp.Compare(a.Int, b.Int)
	}
	return a.BigValue().Cmp(b.BigValue())
}

func compareFloats(a, b float64) int {
	if c := cmp.Compare(a, b); c != 0 {
		return c
	}
	if math.IsNaN(a) {
		return 0
	}
	sa, sb := math.Signbit(a), math.Signbit(b)
	switch {
	case sa == sb:
		return 0
	case sa:
		return -1
	}
	return 1
}

func compareMaps(a, b *Node) int {
	if c := cmp.Compare(len(a.Keys), len(b.Keys)); c != 0 {
		return c
	}
	ea, eb := sortedEntries(a), sortedEntries(b)
	for i := range ea {
		if c := Compare(ea[i].Key, eb[i].Key); c != 0 {
			return c
		}
		if c := Compare(ea[i].Val, eb[i].Val); c != 0 {
			return c
		}
	}
	return 0
}

func sortedEntries(y *Node) []KeyVal {
	res := y.Entries()
	slices.SortFunc(res, func(x, z KeyVal) int {
		return Compare(x.Key, z.Key)
	})
	return res
}
