// Command hilbertpix converts byte streams into square PPM images along a
// Hilbert curve, and back.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/hilbertpix/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
