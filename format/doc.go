// Package format names the document formats the cbor command reads and
// writes.
//
// # Usage
//
//	f, err := format.ParseFormat("hex")
//	if err != nil {
//		return err
//	}
//	node, err := f.Read(data)
//
// Binary CBOR, hex encoded CBOR and JSON can be read; every format can be
// written.
//
// # Related Packages
//
//   - github.com/signadot/go-cbor/decode - CBOR bytes to IR
//   - github.com/signadot/go-cbor/encode - IR to CBOR bytes
//   - github.com/signadot/go-cbor/jsonconv - JSON to and from IR
//   - github.com/signadot/go-cbor/diag - IR to diagnostic notation
package format
