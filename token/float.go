package token

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// Float returns the value of a float head, widened to float64.
func (h Head) Float() float64 {
	switch h.Info {
	case SimpleFloat16:
		return float64(float16.Frombits(uint16(h.Arg)).Float32())
	case SimpleFloat32:
		return float64(math.Float32frombits(uint32(h.Arg)))
	}
	return math.Float64frombits(h.Arg)
}

// AppendFloat64 appends f as a double precision float.
func AppendFloat64(dst []byte, f float64) []byte {
	dst = append(dst, InitialByte(MajorSimple, SimpleFloat64))
	return binary.BigEndian.AppendUint64(dst, math.Float64bits(f))
}

// AppendFloatShortest appends f as the narrowest of half, single and double
// precision that holds it exactly. Infinities and NaN are always written as
// doubles.
func AppendFloatShortest(dst []byte, f float64) []byte {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return AppendFloat64(dst, f)
	}
	f32 := float32(f)
	if float64(f32) != f {
		return AppendFloat64(dst, f)
	}
	if h := float16.Fromfloat32(f32); float64(h.Float32()) == f && math.Signbit(float64(h.Float32())) == math.Signbit(f) {
		dst = append(dst, InitialByte(MajorSimple, SimpleFloat16))
		return binary.BigEndian.AppendUint16(dst, h.Bits())
	}
	dst = append(dst, InitialByte(MajorSimple, SimpleFloat32))
	return binary.BigEndian.AppendUint32(dst, math.Float32bits(f32))
}
