package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/duelist/internal/config"
	"github.com/arcanaland/duelist/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card dataset file",
	Long: `Validate checks every row of a card dataset instead of stopping at the
first problem. Rows that would fail to load (wrong field count, bad price, empty
id) are errors; duplicate ids, empty names, names longer than the display width
and unexpected header names are warnings.

Without a path the configured dataset is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		datasetPath := appConfig.Dataset
		if len(args) == 1 {
			datasetPath = args[0]
		}
		if path, err := config.GetDatasetPath(datasetPath); err == nil {
			datasetPath = path
		}

		v := validator.NewValidator(datasetPath)
		v.Delimiter = appConfig.DelimiterRune()
		v.NameWidth = appConfig.NameWidth
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Dataset '%s' is valid (%d cards).\n", datasetPath, results.Rows)
		} else {
			fmt.Fprintf(out, "❌ Dataset '%s' has %d validation errors:\n", datasetPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
