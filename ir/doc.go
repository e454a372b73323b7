// Package ir provides the in-memory representation of CBOR data items.
//
// # Overview
//
// Every CBOR value, whether decoded from bytes, parsed from JSON or built
// programmatically, is represented as a tree of *Node. The decoder and the
// JSON parser produce nodes; the encoder, the diagnostic formatter and the
// JSON writer consume them.
//
// The IR works as a recursive tagged union, where values are placed in
// fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - IntType: integer in the int64 range, in Int
//   - BigIntType: integer outside the int64 range, in Big
//   - FloatType: IEEE double, in Float (single and half precision are widened)
//   - BytesType: byte string, in Bytes
//   - TextType: UTF-8 text string, in Text
//   - ArrayType: ordered list of nodes, in Values
//   - MapType: key-value pairs, Keys[i] is the key for Values[i]
//   - TagType: tag number in Tag, tagged content in Values[0]
//   - BoolType, NullType, UndefinedType: the named simple values
//   - SimpleType: any other simple value, in Simple
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	num := ir.FromInt(42)
//	big := ir.FromBigInt(n) // demoted to IntType when n fits int64
//	txt := ir.FromText("hello")
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	m := ir.NewMap()
//	m.Set(ir.FromText("key"), ir.FromBool(true))
//	tagged, err := ir.FromTag(tagNum, ir.Null())
//
// # IR Structure Constraints
//
// ## Integers
//
// An integer is an IntType node whenever it fits int64 and a BigIntType node
// only otherwise. Constructors maintain this; code building nodes by hand
// must as well.
//
// ## Maps
//
// Keys are unique under Equal. Set on an existing key replaces its value in
// place, so insertion order is the order in which distinct keys were first
// set. Keys and Values must only be changed through Set and Delete, since
// maps keep an index over their keys.
//
// ## Tags
//
// Tag numbers are arbitrary precision but limited to what a CBOR head can
// carry, 0 through 2^64-1. A TagType node always has exactly one value.
//
// ## Text
//
// Text is always valid UTF-8, and so never holds a surrogate code point.
//
// # Comparison and Hashing
//
//	equal := ir.Equal(a, b)
//	order := ir.Compare(a, b)
//	h := a.Hash()
//
// Equal compares integers by mathematical value, so an IntType and a
// BigIntType node holding the same number are equal, and compares maps as
// sets of entries. Hash is consistent with Equal.
//
// # Thread Safety
//
// Node structures are not thread-safe. Arrays and maps may be mutated, and
// must not be read or mutated concurrently without synchronization.
//
// # Related Packages
//
//   - github.com/signadot/go-cbor/decode - decodes CBOR bytes to IR
//   - github.com/signadot/go-cbor/encode - encodes IR to CBOR bytes
//   - github.com/signadot/go-cbor/jsonconv - converts JSON text to and from IR
//   - github.com/signadot/go-cbor/diag - renders IR in diagnostic notation
package ir
