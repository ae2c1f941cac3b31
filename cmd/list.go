package cmd

import (
	"github.com/spf13/cobra"
)

var listLimit int

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the cheapest cards in the dataset with price statistics",
	Long: `List prints the number of cards in the dataset, the first cards in
canonical order (price, then name) with their total, and the least expensive,
most expensive and median prices over the whole dataset.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadConfiguredDataset()
		if err != nil {
			return err
		}

		limit := appConfig.PreviewLimit
		if cmd.Flags().Changed("limit") {
			limit = listLimit
		}

		out := cmd.OutOrStdout()
		p := newPrinter(out)
		p.DatasetSize(cat.Len())
		p.Table(cat.Cards(), limit)
		printStats(out, p, cat.Cards())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "Number of cards to show (0 for all)")
}
