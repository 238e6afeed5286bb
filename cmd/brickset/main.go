// Command brickset loads the LEGO set dataset and runs the fixed
// report, with subcommands for browsing the data interactively.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/brickset-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "brickset: %v\n", err)
		os.Exit(1)
	}
}
