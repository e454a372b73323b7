// Package jsonconv converts between JSON text and IR nodes.
//
// # Usage
//
//	node, err := jsonconv.Parse([]byte(`{"price": 1.5, "qty": 3}`))
//	// {"price": 4([-1, 15]), "qty": 3}
//
//	err = jsonconv.Encode(node, os.Stdout)
//
// Parse keeps numbers exact. Integral numbers become integers, of any size.
// A number with a fraction or exponent that is not integral becomes a
// decimal fraction, tag 4 holding [exponent, mantissa] with the digits as
// written, so 1.5 is 4([-1, 15]). Object members become map entries in
// document order.
//
// Encode follows RFC 8949 section 6.1: byte strings become base64url
// text, tags other than decimal fractions are dropped in favor of their
// content, and values JSON cannot hold become null.
package jsonconv
