package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/duelist/internal/catalog"
	"github.com/arcanaland/duelist/internal/menu"
)

var (
	menuShowUnmatched bool
	menuAskDataset    bool
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Menu starts the interactive session: check all cards, search cards,
view a decklist or exit.

The session asks for a dataset file first unless --dataset is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd, menuAskDataset)
	},
}

func init() {
	RootCmd.AddCommand(menuCmd)

	menuCmd.Flags().BoolVarP(&menuShowUnmatched, "show-unmatched", "u", false, "List decklist ids that are not in the dataset")
	menuCmd.Flags().BoolVar(&menuAskDataset, "ask-dataset", false, "Ask for the dataset file even when --dataset is given")
}

// runMenu runs an interactive session on the command's input and output.
// The dataset is preloaded only when given with --dataset.
func runMenu(cmd *cobra.Command, askDataset bool) error {
	categories, err := appConfig.CategoryList()
	if err != nil {
		return err
	}

	var cat *catalog.Catalog
	if cmd.Flags().Changed("dataset") && !askDataset {
		if cat, err = loadConfiguredDataset(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	session := menu.New(menu.Options{
		In:            cmd.InOrStdin(),
		Out:           out,
		Text:          appConfig.Menu.Text,
		Farewell:      appConfig.Menu.Farewell,
		Categories:    categories,
		PreviewLimit:  appConfig.PreviewLimit,
		ShowUnmatched: menuShowUnmatched,
		Printer:       newPrinter(out),
		LoadDataset:   loadDataset,
		Logger:        logger,
	}, cat)
	return session.Run()
}
