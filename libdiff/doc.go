// Package libdiff computes structural differences between two CBOR values.
//
// # Usage
//
//	// Compute the changes turning a into b
//	changes := libdiff.Diff(a, b)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
//	// Changes turning b back into a
//	back := libdiff.Reverse(changes)
//
// Arrays are aligned with a longest common subsequence over element
// equality, maps are compared key by key and tags are compared by number
// before their content. Elements which are equal under ir.Equal never
// produce a change.
//
// # Related Packages
//
//   - github.com/signadot/go-cbor/ir - IR representation
//   - github.com/signadot/go-cbor/diag - rendering of changed values
package libdiff
