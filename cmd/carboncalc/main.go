// Command carboncalc computes sustainability metrics, lifecycle assessments
// and lifecycle costs for construction projects.
package main

import (
	"fmt"
	"os"

	"github.com/rshade/carboncalc/internal/cli"
	"github.com/rshade/carboncalc/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
