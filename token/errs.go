package token

import "errors"

var (
	ErrTruncated = errors.New("truncated input")
	ErrMalformed = errors.New("malformed header")
)
