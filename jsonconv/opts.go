package jsonconv

import "bytes"

type parseOpts struct {
	comments bool
}

type ParseOption func(*parseOpts)

// AllowComments accepts JSONC input: comments and trailing commas.
func AllowComments(v bool) ParseOption {
	return func(o *parseOpts) { o.comments = v }
}

type encState struct {
	buf    bytes.Buffer
	indent int
	depth  int
}

type EncodeOption func(*encState)

func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}
