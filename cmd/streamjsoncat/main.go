// Command streamjsoncat is a small CLI collaborator around the
// streamjson package: it has no place in the core parsing pipeline (see
// spec.md section 1's scope note on external collaborators), but gives
// the library something to drive end to end from a shell, the way
// examples/stdinparser does for the lexer this package descends from.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
