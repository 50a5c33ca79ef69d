package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jchesterman/apothecary/internal/catalog"
	"github.com/jchesterman/apothecary/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check [substances...]",
		Short: "Check substances for known pairwise interactions",
		Long: `Check substances for known interactions. With arguments, each argument is
one substance name and the check runs once. Without arguments an interactive
loop prompts for substances ('list' shows the catalog, 'done' runs the
check, 'quit' exits).`,
		Run: runCheck,
	}

	RootCmd.AddCommand(cmd)
}

// checkResult is the JSON form of one interaction check.
type checkResult struct {
	Substances   []model.Substance   `json:"substances"`
	NotFound     []string            `json:"not_found,omitempty"`
	Interactions []model.Interaction `json:"interactions"`
}

func runCheck(cmd *cobra.Command, args []string) {
	c := openCatalog()

	if len(args) > 0 {
		batchCheck(c, args)
		return
	}
	interactiveCheck(c)
}

func batchCheck(c *catalog.Catalog, rawNames []string) {
	var substances []model.Substance
	var notFound []string
	added := make(map[string]bool)

	for _, raw := range rawNames {
		s, ok := c.Resolve(raw)
		if !ok {
			notFound = append(notFound, raw)
			continue
		}
		if added[s.Name] {
			continue
		}
		added[s.Name] = true
		substances = append(substances, s)
	}

	interactions := c.FindInteractions(substances)

	if formatFlag == "json" {
		printJSON(checkResult{Substances: substances, NotFound: notFound, Interactions: interactions})
		return
	}

	for _, s := range substances {
		printSubstance(s)
	}
	if len(notFound) > 0 {
		fmt.Printf("\nNot found in catalog: %s\n", strings.Join(notFound, ", "))
	}
	if len(substances) < 2 {
		fmt.Println("\nNeed at least 2 substances to check for interactions.")
		return
	}
	printInteractionReport(substances, interactions)
}

func interactiveCheck(c *catalog.Catalog) {
	fmt.Println("Enter substances to check (herbs, OTC drugs, prescription drugs).")
	fmt.Println("Type 'done' when finished, 'list' to see available substances, or 'quit' to exit.")
	fmt.Println()

	var substances []model.Substance
	added := make(map[string]bool)
	in := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("Enter substance #%d (or command): ", len(substances)+1)
		if !in.Scan() {
			return
		}
		input := strings.TrimSpace(in.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit":
			fmt.Println("\nStay safe!")
			return
		case "list":
			printCatalogList(c)
			continue
		case "done":
			if len(substances) < 2 {
				fmt.Println("Please enter at least 2 substances to check for interactions.")
				fmt.Println()
				continue
			}
		default:
			s, ok := c.Resolve(input)
			if !ok {
				fmt.Printf("%q not found in catalog. Try 'list' to see available substances.\n\n", input)
				continue
			}
			if added[s.Name] {
				fmt.Printf("%s already added.\n\n", s.Name)
				continue
			}
			added[s.Name] = true
			substances = append(substances, s)
			printSubstance(s)
			fmt.Printf("\nAdded %s\n\n", s.Name)
			continue
		}

		break // done with >= 2 substances
	}

	interactions := c.FindInteractions(substances)
	if formatFlag == "json" {
		printJSON(checkResult{Substances: substances, Interactions: interactions})
		return
	}
	printInteractionReport(substances, interactions)
}

func printCatalogList(c *catalog.Catalog) {
	fmt.Println("\nAvailable substances in catalog:")
	for _, s := range c.Substances() {
		fmt.Printf("  - %s (%s)\n", s.Name, s.Category)
	}
	fmt.Println()
}

func printSubstance(s model.Substance) {
	fmt.Printf("\n%s\n", s.Name)
	fmt.Printf("  Category: %s\n", strings.ToUpper(string(s.Category)))
	fmt.Printf("  Description: %s\n", s.Description)
	fmt.Printf("  Primary effects: %s\n", strings.Join(s.Effects, ", "))
}

func printInteraction(in model.Interaction) {
	fmt.Printf("\n[%s] %s + %s\n", strings.ToUpper(string(in.Severity)), in.Substance1, in.Substance2)
	fmt.Printf("  Effects: %s\n", strings.Join(in.Effects, ", "))
	fmt.Printf("  Details: %s\n", in.Detail)
	fmt.Printf("  Recommendation: %s\n", in.Recommendation)
}

// printInteractionReport prints found interactions most severe first and a
// summary. The core returns pair order; sorting here is display-only.
func printInteractionReport(substances []model.Substance, interactions []model.Interaction) {
	fmt.Println("\nChecking for interactions...")

	if len(interactions) == 0 {
		fmt.Println("\nNo known interactions found in catalog.")
		fmt.Println("This does not guarantee safety. Always consult a healthcare provider.")
	} else {
		display := append([]model.Interaction(nil), interactions...)
		sort.SliceStable(display, func(i, j int) bool {
			return display[i].Severity.Rank() > display[j].Severity.Rank()
		})
		fmt.Printf("\nFound %d interaction(s):\n", len(display))
		for _, in := range display {
			printInteraction(in)
		}
	}

	names := make([]string, len(substances))
	for i, s := range substances {
		names[i] = s.Name
	}
	fmt.Println("\nSummary")
	fmt.Printf("  Substances checked: %s\n", strings.Join(names, ", "))
	fmt.Printf("  Interactions found: %d\n", len(interactions))

	for _, in := range interactions {
		if in.Severity.Rank() >= model.SeverityMajor.Rank() {
			fmt.Println("\nCRITICAL: major or severe interactions detected.")
			fmt.Println("Consult a healthcare provider before using these substances together.")
			break
		}
	}
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}
