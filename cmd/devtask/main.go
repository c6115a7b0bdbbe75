// Command devtask is a development-task harness for the rauta crate: it maps
// short task names to cargo and rustc invocations with the right flags and
// environment.
package main

import (
	"os"

	"github.com/rauta/devtask/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
