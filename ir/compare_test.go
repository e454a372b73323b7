package ir

import (
	"math"
	"math/big"
	"testing"
)

func TestCompare(t *testing.T) {
	big2p64 := new(big.Int).Lsh(big.NewInt(1), 64)
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < Undefined < Bool < Simple < Int < Float < Bytes < Text < Array < Map < Tag
		{"Null < Undefined", Null(), Undefined(), -1},
		{"Undefined < Bool", Undefined(), FromBool(false), -1},
		{"Bool < Int", FromBool(true), FromInt(1), -1},
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Float < Bytes", FromFloat(1), FromBytes(nil), -1},
		{"Bytes < Text", FromBytes([]byte("b")), FromText("a"), -1},
		{"Text < Array", FromText("a"), FromSlice(nil), -1},
		{"Array < Map", FromSlice(nil), NewMap(), -1},
		{"Map < Tag", NewMap(), MustTagUint(0, Null()), -1},

		// Bool Comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Integer Comparison across variants
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Int < BigInt", FromInt(math.MaxInt64), FromBigInt(big2p64), -1},
		{"-BigInt < Int", FromBigInt(new(big.Int).Neg(big2p64)), FromInt(math.MinInt64), -1},
		{"Int == BigInt of same value", FromInt(7), &Node{Type: BigIntType, Big: big.NewInt(7)}, 0},

		// Float Comparison
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"-0 < +0", FromFloat(math.Copysign(0, -1)), FromFloat(0), -1},
		{"NaN == NaN", FromFloat(math.NaN()), FromFloat(math.NaN()), 0},
		{"NaN < -Inf", FromFloat(math.NaN()), FromFloat(math.Inf(-1)), -1},

		// Array Comparison
		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"Array Element Comparison", FromSlice([]*Node{FromInt(1)}), FromSlice([]*Node{FromInt(2)}), -1},

		// Map Comparison
		{"Empty Map == Empty Map", NewMap(), NewMap(), 0},
		{"Short Map < Long Map",
			FromKeyVals([]KeyVal{{Key: FromText("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromText("a"), Val: FromInt(1)}, {Key: FromText("b"), Val: FromInt(2)}}),
			-1},
		{"Map Key Comparison",
			FromKeyVals([]KeyVal{{Key: FromText("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromText("b"), Val: FromInt(1)}}),
			-1},
		{"Map Order Ignored",
			FromKeyVals([]KeyVal{{Key: FromText("a"), Val: FromInt(1)}, {Key: FromText("b"), Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: FromText("b"), Val: FromInt(2)}, {Key: FromText("a"), Val: FromInt(1)}}),
			0},

		// Tag Comparison
		{"Tag Number", MustTagUint(1, Null()), MustTagUint(5, Null()), -1},
		{"Tag Content", MustTagUint(1, FromInt(1)), MustTagUint(1, FromInt(2)), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// Test symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
			if eq := Equal(tt.a, tt.b); eq != (tt.expected == 0) {
				t.Errorf("Equal() = %v, want %v", eq, tt.expected == 0)
			}
		})
	}
}

func TestEqualHashConsistency(t *testing.T) {
	pairs := [][2]*Node{
		{FromInt(5), &Node{Type: BigIntType, Big: big.NewInt(5)}},
		{FromUint(math.MaxUint64), FromBigInt(new(big.Int).SetUint64(math.MaxUint64))},
		{FromFloat(math.NaN()), FromFloat(-math.NaN())},
		{FromText("héllo"), FromText("héllo")},
		{FromBytes([]byte{1, 2}), FromBytes([]byte{1, 2})},
		{
			FromKeyVals([]KeyVal{{Key: FromInt(1), Val: FromText("a")}, {Key: FromText("x"), Val: Null()}}),
			FromKeyVals([]KeyVal{{Key: FromText("x"), Val: Null()}, {Key: FromInt(1), Val: FromText("a")}}),
		},
		{MustTagUint(4, FromSlice([]*Node{FromInt(-1), FromInt(15)})), FromDecimal(-1, big.NewInt(15))},
	}
	for i, p := range pairs {
		if !Equal(p[0], p[1]) {
			t.Errorf("pair %d: not equal", i)
			continue
		}
		if p[0].Hash() != p[1].Hash() {
			t.Errorf("pair %d: equal values hash differently", i)
		}
	}
}

func TestNotEqual(t *testing.T) {
	pairs := [][2]*Node{
		{FromInt(1), FromFloat(1)},
		{FromText("a"), FromBytes([]byte("a"))},
		{FromFloat(0), FromFloat(math.Copysign(0, -1))},
		{Null(), Undefined()},
		{MustTagUint(5, Null()), MustTagUint(6, Null())},
		{FromSlice([]*Node{FromInt(1), FromInt(2)}), FromSlice([]*Node{FromInt(2), FromInt(1)})},
	}
	for i, p := range pairs {
		if Equal(p[0], p[1]) {
			t.Errorf("pair %d: unexpectedly equal", i)
		}
	}
}
