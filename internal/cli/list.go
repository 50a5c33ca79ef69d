package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the substances in the interaction catalog",
		Run:   runList,
	}

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	c := openCatalog()

	if formatFlag == "json" {
		printJSON(c.Substances())
		return
	}
	printCatalogList(c)
}
