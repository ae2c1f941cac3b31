package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/search"
)

var searchCategory string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search cards by a substring of one field",
	Long: `Search lists every card whose chosen field contains the query as a
literal, case-sensitive substring, followed by price statistics for the matches.

Categories: id, name, type, description (desc), race, archetype, price (card price).

Examples:
  duelist search Dragon --category race
  duelist search "Dark Magician" -c name`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]

		allowed, err := appConfig.CategoryList()
		if err != nil {
			return err
		}
		category, err := card.ParseCategoryIn(searchCategory, allowed)
		if err != nil {
			return err
		}

		cat, err := loadConfiguredDataset()
		if err != nil {
			return err
		}

		results, err := search.Search(cat.Cards(), query, category)
		if err != nil {
			return err
		}
		logger.Debug("search finished", "query", query, "category", category.String(), "results", len(results))

		out := cmd.OutOrStdout()
		p := newPrinter(out)
		p.SearchHeader(len(results), query, strings.ToLower(searchCategory))
		if len(results) > 0 {
			p.Table(results, 0)
			printStats(out, p, results)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "Field to search")
	searchCmd.MarkFlagRequired("category")
}
