// Command spektro manages an archive and catalog of EPR measurements.
package main

import (
	"os"

	"github.com/TheresiaQuintes/spektro-db/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
