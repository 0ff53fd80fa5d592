// Command engineos hosts the engine runtime on the current platform.
package main

import (
	"os"

	"github.com/roach88/engineos/internal/cli"
)

func main() {
	os.Exit(cli.Execute(&cli.RootOptions{}, os.Args[1:], os.Stdout, os.Stderr))
}
