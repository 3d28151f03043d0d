// Command cliffgo exposes the Clifford tableau engine on the command line.
package main

import (
	"os"

	"github.com/kvantor/cliffgo/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
