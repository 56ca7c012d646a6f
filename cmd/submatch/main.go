// Command submatch is the CLI front end for the subgraph-matching engine:
// count embeddings of a named pattern, count triangles via the fast path,
// compute FSM minimum-image support, list the pattern library, or inspect
// run history.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/submatch/cmd/submatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
