package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jchesterman/apothecary/internal/config"
	"github.com/jchesterman/apothecary/internal/export"
	"github.com/jchesterman/apothecary/internal/extract"
	"github.com/jchesterman/apothecary/internal/herbdict"
	"github.com/jchesterman/apothecary/internal/model"
	"github.com/jchesterman/apothecary/internal/scanner"
)

const generatedCodeFile = "apothecary_generated.go.txt"

func init() {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract herb data from document sources",
		Long: `Scan a directory for .pdf sources, read their pre-extracted sidecar text,
and extract herb records with tradition-specific properties to a JSON file.`,
		Run: runExtract,
	}

	cmd.Flags().StringP("directory", "d", "", "Directory containing PDF sources (default: APOTHECARY_DIRECTORY or .)")
	cmd.Flags().StringP("output", "o", "", "Output JSON file path (default: APOTHECARY_OUTPUT or extracted_herbs.json)")
	cmd.Flags().BoolP("generate-code", "g", false, "Also generate Go catalog snippets for the extracted herbs")

	RootCmd.AddCommand(cmd)
}

func runExtract(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	if dir, _ := cmd.Flags().GetString("directory"); dir != "" {
		cfg.Directory = dir
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.Output = out
	}
	generateCode, _ := cmd.Flags().GetBool("generate-code")

	logger := newLogger()

	dict := herbdict.Merge()
	ex := extract.New(dict, extract.Options{Window: cfg.ContextWindow})
	sc := scanner.New(ex, logger)

	logger.Info("processing documents", "dir", cfg.Directory)
	herbs, err := sc.ProcessDirectory(cfg.Directory)
	if err != nil {
		exitErr("process directory", err)
	}
	if len(herbs) == 0 {
		logger.Warn("no herbs extracted")
		return
	}

	if err := export.WriteJSON(cfg.Output, herbs); err != nil {
		exitErr("write output", err)
	}
	logger.Info("exported herbs", "count", len(herbs), "file", cfg.Output)

	if generateCode {
		code, err := export.GenerateCode(herbs)
		if err != nil {
			exitErr("generate code", err)
		}
		if err := os.WriteFile(generatedCodeFile, []byte(code), 0o644); err != nil {
			exitErr("write generated code", err)
		}
		logger.Info("generated catalog snippets", "file", generatedCodeFile)
	}

	printExtractSummary(herbs)
}

func printExtractSummary(herbs []model.ExtractedHerb) {
	if formatFlag == "json" {
		return // the JSON artifact is the output
	}

	byTradition := make(map[model.Tradition]int)
	for _, h := range herbs {
		byTradition[h.Tradition]++
	}

	fmt.Printf("\nExtracted %d unique herb(s)\n", len(herbs))
	for _, t := range []model.Tradition{model.TraditionWestern, model.TraditionAyurvedic, model.TraditionTCM, model.TraditionMixed} {
		if n := byTradition[t]; n > 0 {
			fmt.Printf("  %s: %d\n", t, n)
		}
	}
}
