package main

import (
	"os"

	"github.com/jchesterman/apothecary/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
