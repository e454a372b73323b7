package decode

import (
	"errors"
	"fmt"

	"github.com/signadot/go-cbor/ir"
	"github.com/signadot/go-cbor/token"
)

var (
	ErrMalformedHeader        = token.ErrMalformed
	ErrTruncatedInput         = token.ErrTruncated
	ErrNestedIndefiniteString = errors.New("nested indefinite-length string")
	ErrTaggedChunkNotAllowed  = errors.New("tagged chunk in indefinite-length string")
	ErrInvalidDecimalFraction = errors.New("invalid decimal fraction")
	ErrInvalidBignum          = errors.New("invalid bignum")
	ErrUnpairedSurrogate      = ir.ErrUnpairedSurrogate
	ErrInvalidUTF8            = ir.ErrInvalidUTF8
	ErrTrailingBytes          = errors.New("trailing bytes")
	ErrMaxDepth               = errors.New("maximum nesting depth exceeded")
	ErrNonCanonical           = errors.New("non-canonical encoding")
)

// Error is a decoding failure.
type Error struct {
	// Offset is the position in the input of the item at fault.
	Offset int
	// Kind is one of the sentinel errors of this package.
	Kind error
	Msg  string

	sample string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cbor: %s at offset %d [%s]", e.Msg, e.Offset, e.sample)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func (d *decoder) fail(off int, kind error, format string, args ...any) error {
	return &Error{
		Offset: off,
		Kind:   kind,
		Msg:    kind.Error() + ": " + fmt.Sprintf(format, args...),
		sample: token.HexSample(d.data, off),
	}
}

// wrap converts an error from the token package.
func (d *decoder) wrap(off int, err error) error {
	kind := ErrMalformedHeader
	if errors.Is(err, ErrTruncatedInput) {
		kind = ErrTruncatedInput
	}
	return &Error{
		Offset: off,
		Kind:   kind,
		Msg:    err.Error(),
		sample: token.HexSample(d.data, off),
	}
}
