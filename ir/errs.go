package ir

import (
	"errors"
)

var (
	ErrInvalidTag        = errors.New("invalid tag")
	ErrUnpairedSurrogate = errors.New("unpaired surrogate")
	ErrInvalidUTF8       = errors.New("invalid utf-8")
	ErrInvalidSimple     = errors.New("invalid simple value")
)
