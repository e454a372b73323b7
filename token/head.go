package token

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Head is a decoded item head.
//
// For major types 0 through 6 Arg is the integer, length or tag number. For
// major type 7 Arg is the simple value number, or the raw bits of a float
// when Info is one of the float widths. Indefinite is set for the indefinite
// length marker of major types 2 through 5 and for the break byte.
type Head struct {
	Major      Major
	Info       uint8
	Arg        uint64
	Indefinite bool
	Len        int
}

// IsBreak reports whether h is the break stop code.
func (h Head) IsBreak() bool {
	return h.Major == MajorSimple && h.Info == SimpleBreak
}

// IsFloat reports whether h heads a half, single or double float.
func (h Head) IsFloat() bool {
	return h.Major == MajorSimple && h.Info >= SimpleFloat16 && h.Info <= SimpleFloat64
}

// Minimal reports whether the argument of h was encoded in the shortest
// available form. Floats and the indefinite marker are always minimal here.
func (h Head) Minimal() bool {
	if h.IsFloat() || h.Indefinite {
		return true
	}
	switch h.Info {
	case InfoUint8:
		return h.Arg > InfoDirectMax
	case InfoUint16:
		return h.Arg > math.MaxUint8
	case InfoUint32:
		return h.Arg > math.MaxUint16
	case InfoUint64:
		return h.Arg > math.MaxUint32
	}
	return true
}

// ReadHead reads the head starting at data[off].
func ReadHead(data []byte, off int) (Head, error) {
	if off >= len(data) {
		return Head{}, fmt.Errorf("%w: expected item head", ErrTruncated)
	}
	ib := data[off]
	h := Head{Major: MajorOf(ib), Info: InfoOf(ib), Len: 1}
	switch {
	case h.Info <= InfoDirectMax:
		h.Arg = uint64(h.Info)
		return h, nil
	case h.Info <= InfoUint64:
		n := 1 << (h.Info - InfoUint8)
		if len(data)-off-1 < n {
			return Head{}, fmt.Errorf("%w: %s head needs %d argument bytes, %d remain", ErrTruncated, h.Major, n, len(data)-off-1)
		}
		p := data[off+1 : off+1+n]
		switch n {
		case 1:
			h.Arg = uint64(p[0])
		case 2:
			h.Arg = uint64(binary.BigEndian.Uint16(p))
		case 4:
			h.Arg = uint64(binary.BigEndian.Uint32(p))
		default:
			h.Arg = binary.BigEndian.Uint64(p)
		}
		h.Len += n
		if h.Major == MajorSimple && h.Info == SimpleOneByte && h.Arg < 32 {
			return Head{}, fmt.Errorf("%w: two byte simple value %d", ErrMalformed, h.Arg)
		}
		return h, nil
	case h.Info == InfoIndefinite:
		if h.Major.Streamable() || h.Major == MajorSimple {
			h.Indefinite = true
			return h, nil
		}
		return Head{}, fmt.Errorf("%w: indefinite length not allowed for %s", ErrMalformed, h.Major)
	}
	return Head{}, fmt.Errorf("%w: reserved additional information %d", ErrMalformed, h.Info)
}

// AppendHead appends the shortest head for major type m with argument arg.
func AppendHead(dst []byte, m Major, arg uint64) []byte {
	switch {
	case arg <= InfoDirectMax:
		return append(dst, InitialByte(m, uint8(arg)))
	case arg <= math.MaxUint8:
		return append(dst, InitialByte(m, InfoUint8), uint8(arg))
	case arg <= math.MaxUint16:
		dst = append(dst, InitialByte(m, InfoUint16))
		return binary.BigEndian.AppendUint16(dst, uint16(arg))
	case arg <= math.MaxUint32:
		dst = append(dst, InitialByte(m, InfoUint32))
		return binary.BigEndian.AppendUint32(dst, uint32(arg))
	default:
		dst = append(dst, InitialByte(m, InfoUint64))
		return binary.BigEndian.AppendUint64(dst, arg)
	}
}

// AppendIndefinite appends the indefinite length marker for m.
func AppendIndefinite(dst []byte, m Major) []byte {
	return append(dst, InitialByte(m, InfoIndefinite))
}

// HeadLen returns the number of bytes AppendHead writes for arg.
func HeadLen(arg uint64) int {
	switch {
	case arg <= InfoDirectMax:
		return 1
	case arg <= math.MaxUint8:
		return 2
	case arg <= math.MaxUint16:
		return 3
	case arg <= math.MaxUint32:
		return 5
	}
	return 9
}
