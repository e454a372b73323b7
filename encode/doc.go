// Package encode encodes IR nodes to CBOR bytes.
//
// # Usage
//
//	node := ir.FromSlice([]*ir.Node{ir.FromInt(3), ir.FromInt(4)})
//	data, err := encode.Marshal(node) // 0x82 0x03 0x04
//
//	// Encode with options
//	err := encode.Encode(node, w, encode.SortKeys(true), encode.ShortestFloats(true))
//
// Output uses the shortest head for every integer, length and tag number.
// Integers outside the range of a head argument are written as bignums
// (tags 2 and 3) with no leading zero bytes. Arrays and maps are always
// definite length. Floats are doubles unless ShortestFloats is given.
//
// # Related Packages
//
//   - github.com/signadot/go-cbor/ir - IR representation
//   - github.com/signadot/go-cbor/decode - Decode bytes to IR
package encode
