// Package testtree provides a go-cmp based diff helper for comparing
// reconstructed streamjson.Value trees in tests, where a plain
// reflect.DeepEqual failure message is not actionable (map ordering,
// pointer identity on Value.Array, opaque Number internals).
package testtree

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Diff returns a human-readable difference between got and want, or "" if
// they are equal. Leaves that implement fmt.Stringer, such as Number, are
// compared by their String() text (the raw lexeme), so their unexported
// internals are never inspected; empty maps and slices equal nil ones.
func Diff(got, want interface{}) string {
	d := cmp.Diff(want, got,
		cmpopts.EquateEmpty(),
		cmp.Comparer(func(a, b fmt.Stringer) bool {
			return a.String() == b.String()
		}),
	)
	return d
}
