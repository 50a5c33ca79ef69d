// Package cli implements the apothecary CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jchesterman/apothecary/internal/catalog"
)

var (
	formatFlag  string
	verboseFlag bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "apothecary",
	Short: "Herbal supplement and medication interaction reference",
	Long: `Check for known interactions between herbs, OTC drugs, and prescription
drugs, and extract herb data from plain-text document sources.

This tool is for informational purposes only and is NOT a replacement for
professional medical advice.`,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if verboseFlag {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

func openCatalog() *catalog.Catalog {
	c, err := catalog.Default()
	if err != nil {
		exitErr("load catalog", err)
	}
	return c
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
