package encode

import (
	"github.com/signadot/go-cbor/ir"
)

// MustMarshal is Marshal for nodes built with the ir constructors, which
// always encode. It panics otherwise.
func MustMarshal(node *ir.Node, opts ...EncodeOption) []byte {
	d, err := Marshal(node, opts...)
	if err != nil {
		panic(err)
	}
	return d
}
