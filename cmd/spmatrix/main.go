// Command spmatrix exercises the sparse matrix package from the command line.
// Build with: go build -o bin/spmatrix ./cmd/spmatrix
// Usage: spmatrix demo [--size 10] [--format table|json|yaml]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
