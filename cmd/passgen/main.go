// Command passgen generates passwords, scores them and exports batches from
// the command line.
package main

import (
	"os"

	"github.com/vaultpass/passgen/internal/clipboard"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd(clipboard.System()).Execute(); err != nil {
		// Cobra has already printed the error.
		os.Exit(1)
	}
}
