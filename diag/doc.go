// Package diag renders IR nodes in CBOR diagnostic notation (RFC 8949
// section 8).
//
// # Usage
//
//	s := diag.String(node) // e.g. [1, "two", h'03', 4([-1, 15])]
//
//	// Pretty printed and colored
//	err := diag.Encode(node, os.Stdout, diag.Indent(2), diag.EncodeColors(diag.NewColors()))
//
// The output is meant for people and tests. Floats always carry a fraction
// or exponent so they are distinguishable from integers, and Infinity,
// -Infinity and NaN are spelled out. It is not guaranteed to parse as JSON.
package diag
