package token

// Major is the CBOR major type held in the high three bits of an initial
// byte.
type Major uint8

const (
	MajorUint Major = iota
	MajorNegInt
	MajorBytes
	MajorText
	MajorArray
	MajorMap
	MajorTag
	MajorSimple
)

func (m Major) String() string {
	switch m {
	case MajorUint:
		return "uint"
	case MajorNegInt:
		return "negint"
	case MajorBytes:
		return "bytes"
	case MajorText:
		return "text"
	case MajorArray:
		return "array"
	case MajorMap:
		return "map"
	case MajorTag:
		return "tag"
	case MajorSimple:
		return "simple"
	}
	return "<unknown major>"
}

// Streamable reports whether the indefinite length marker is legal for m.
func (m Major) Streamable() bool {
	switch m {
	case MajorBytes, MajorText, MajorArray, MajorMap:
		return true
	}
	return false
}

// Additional information values (low five bits).
const (
	InfoDirectMax  = 23
	InfoUint8      = 24
	InfoUint16     = 25
	InfoUint32     = 26
	InfoUint64     = 27
	InfoIndefinite = 31
)

// Simple values of major type 7.
const (
	SimpleFalse     = 20
	SimpleTrue      = 21
	SimpleNull      = 22
	SimpleUndefined = 23
	SimpleOneByte   = 24
	SimpleFloat16   = 25
	SimpleFloat32   = 26
	SimpleFloat64   = 27
	SimpleBreak     = 31
)

// Break is the byte terminating an indefinite length item.
const Break byte = 0xff

// Tags with meaning to this module.
const (
	TagPosBignum   = 2
	TagNegBignum   = 3
	TagDecimalFrac = 4
)

// InitialByte makes the first byte of a head.
func InitialByte(m Major, info uint8) byte {
	return byte(m)<<5 | info&0x1f
}

// MajorOf extracts the major type of an initial byte.
func MajorOf(b byte) Major {
	return Major(b >> 5)
}

// InfoOf extracts the additional information of an initial byte.
func InfoOf(b byte) uint8 {
	return b & 0x1f
}
