package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jchesterman/apothecary/internal/herbdict"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show herb dictionary statistics",
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	st := herbdict.Merge().Stats()

	if formatFlag == "json" {
		printJSON(st)
		return
	}

	fmt.Printf("Total herbs: %d\n", st.Total)
	fmt.Printf("  Western: %d\n", st.Western)
	fmt.Printf("  Ayurvedic: %d\n", st.Ayurvedic)
	fmt.Printf("  TCM: %d\n", st.TCM)
	fmt.Printf("  Mixed tradition: %d\n", st.Mixed)
}
