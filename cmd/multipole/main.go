// SPDX-License-Identifier: MIT

// Command multipole evaluates point-charge potentials with a truncated
// multipole expansion. Run "multipole --help" for the command list.
package main

import (
	"os"

	"github.com/katalvlaran/multipole/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
