package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	UndefinedType
	BoolType
	SimpleType
	IntType
	BigIntType
	FloatType
	BytesType
	TextType
	ArrayType
	MapType
	TagType
)

var typeNames = map[Type]string{
	NullType:      "Null",
	UndefinedType: "Undefined",
	BoolType:      "Bool",
	SimpleType:    "Simple",
	IntType:       "Int",
	BigIntType:    "BigInt",
	FloatType:     "Float",
	BytesType:     "Bytes",
	TextType:      "Text",
	ArrayType:     "Array",
	MapType:       "Map",
	TagType:       "Tag",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		UndefinedType,
		BoolType,
		SimpleType,
		IntType,
		BigIntType,
		FloatType,
		BytesType,
		TextType,
		ArrayType,
		MapType,
		TagType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case MapType, ArrayType, TagType:
		return false
	default:
		return true
	}
}

// IsInteger reports whether t is one of the two integer variants.
func (t Type) IsInteger() bool {
	return t == IntType || t == BigIntType
}
