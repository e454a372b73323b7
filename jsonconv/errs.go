package jsonconv

import (
	"errors"
	"fmt"

	"github.com/signadot/go-cbor/token"
)

var ErrInvalidJSON = errors.New("invalid json")

// Error is a JSON parse failure at a position in the input. Kind, when
// set, is ir.ErrUnpairedSurrogate or ir.ErrInvalidUTF8 and is matched by
// errors.Is along with ErrInvalidJSON.
type Error struct {
	Offset    int
	Line, Col int
	Kind      error
	Msg       string

	pos *token.Pos
}

func (e *Error) Error() string {
	if e.pos == nil {
		return fmt.Sprintf("%s: %s at line %d, col %d (offset %d)", ErrInvalidJSON, e.Msg, e.Line+1, e.Col+1, e.Offset)
	}
	return fmt.Sprintf("%s: %s near %s", ErrInvalidJSON, e.Msg, e.pos)
}

func (e *Error) Unwrap() []error {
	if e.Kind == nil {
		return []error{ErrInvalidJSON}
	}
	return []error{ErrInvalidJSON, e.Kind}
}
