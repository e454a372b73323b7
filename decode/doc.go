// Package decode decodes CBOR bytes into IR nodes.
//
// # Usage
//
//	node, err := decode.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	// Reject non-minimal heads and deep nesting
//	node, err := decode.Decode(data, decode.Strict(true), decode.MaxDepth(64))
//
// Decode consumes the whole input, which must hold exactly one data item.
// Byte and text strings may be indefinite length; the chunks are joined
// before text is validated, so a character may span chunks. Tags 2 and 3
// decode to integers, and tag 4 is checked to be a decimal fraction.
//
// Errors are *Error values carrying the offset of the offending item, and
// match the sentinel errors of this package with errors.Is.
//
// # Related Packages
//
//   - github.com/signadot/go-cbor/ir - IR representation
//   - github.com/signadot/go-cbor/encode - Encode IR to bytes
//   - github.com/signadot/go-cbor/token - Item heads
package decode
