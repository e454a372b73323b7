// Package token defines the wire vocabulary of CBOR (RFC 8949): major
// types, the additional information carried in the low five bits of an
// initial byte, well known simple values and tags, and the routines that
// read and append item heads.
//
// A head is the initial byte of a data item plus the 0, 1, 2, 4 or 8
// argument bytes which follow it. Every other package in this module reads
// and writes heads through this package.
//
// # Related Packages
//
//   - github.com/signadot/go-cbor/decode - decodes bytes to IR
//   - github.com/signadot/go-cbor/encode - encodes IR to bytes
package token
