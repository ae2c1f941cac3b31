package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/duelist/internal/deck"
)

var showUnmatched bool

// deckCmd represents the deck command
var deckCmd = &cobra.Command{
	Use:   "deck [decklist]",
	Short: "Show the cards of a decklist with price statistics",
	Long: `Deck reads a decklist (one card id per line; YDK files work too) and
looks every id up in the dataset. Repeated ids count as separate copies. Cards
are listed in canonical order (price, then name), followed by statistics.

Ids missing from the dataset are skipped; use --show-unmatched to list them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := deck.ReadFile(args[0])
		if err != nil {
			return err
		}

		cat, err := loadConfiguredDataset()
		if err != nil {
			return err
		}

		result := cat.Match(ids)
		if len(result.Unmatched) > 0 {
			logger.Info("decklist ids not in dataset", "count", len(result.Unmatched))
		}

		out := cmd.OutOrStdout()
		p := newPrinter(out)
		fmt.Fprintln(out, "\nSearch results")
		p.Table(result.Cards, 0)
		printStats(out, p, result.Cards)
		if showUnmatched {
			p.Unmatched(result.Unmatched)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)

	deckCmd.Flags().BoolVarP(&showUnmatched, "show-unmatched", "u", false, "List decklist ids that are not in the dataset")
}
