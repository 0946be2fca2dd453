// Tonal derives Material 3 colour schemes from a seed colour and exports
// them as design tokens.
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
