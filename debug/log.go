package debug

import (
	"fmt"
	"os"

	"github.com/signadot/go-cbor/diag"
	"github.com/signadot/go-cbor/ir"
)

// Logf writes a trace message to stderr, rendering *ir.Node arguments in
// diagnostic notation.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok && x != nil {
			args[i] = diag.String(x)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
