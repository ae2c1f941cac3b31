package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/catalog"
	"github.com/arcanaland/duelist/internal/config"
	"github.com/arcanaland/duelist/internal/display"
	"github.com/arcanaland/duelist/internal/errors"
	"github.com/arcanaland/duelist/internal/logging"
	"github.com/arcanaland/duelist/internal/stats"
)

var (
	configFile  string
	datasetFlag string
	logLevel    string
	logFormat   string
	noColor     bool

	appConfig *config.Config
	logger    = slog.Default()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "duelist",
	Short: "Analyse trading card datasets and decklists",
	Long: `Duelist loads a trading card dataset (CSV: id, name, type, desc, race,
archetype, card price) and reports on it: full listings with price statistics,
substring search over any card field, and decklist cross-referencing.

Run without a subcommand in a terminal to start the interactive menu.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return cmd.Help()
		}
		return runMenu(cmd, false)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/duelist/config.toml)")
	RootCmd.PersistentFlags().StringVar(&datasetFlag, "dataset", "", "Dataset file, overrides the configured default")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// setup loads the config, applies flag overrides and configures logging.
func setup(cmd *cobra.Command) error {
	var err error
	if configFile != "" {
		appConfig, err = config.LoadConfigFile(configFile)
	} else {
		appConfig, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		appConfig.Dataset = datasetFlag
	}
	if flags.Changed("log-level") {
		appConfig.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		appConfig.LogFormat = logFormat
	}
	if noColor || !appConfig.Color {
		colorize.NoColor = true
	}

	logger = logging.Setup(appConfig.LogLevel, appConfig.LogFormat, cmd.ErrOrStderr())
	logger.Debug("config loaded", "dataset", appConfig.Dataset, "images_dir", appConfig.ImagesDir)
	return nil
}

// catalogOptions builds dataset loading options from the config.
func catalogOptions() catalog.Options {
	opts := catalog.DefaultOptions()
	opts.Delimiter = appConfig.DelimiterRune()
	opts.Logger = logger
	if appConfig.LegacyNameTruncation {
		opts.TruncateNamesAt = appConfig.NameWidth
	}
	return opts
}

// loadDataset loads a dataset by name, looking in the data directory when
// the name is not an existing path.
func loadDataset(name string) (*catalog.Catalog, error) {
	path, err := config.GetDatasetPath(name)
	if err != nil {
		path = name
	}
	return catalog.LoadFile(path, catalogOptions())
}

// loadConfiguredDataset loads the dataset from --dataset or the config.
func loadConfiguredDataset() (*catalog.Catalog, error) {
	if appConfig.Dataset == "" {
		return nil, errors.NewInvalidRequest("no dataset given; use --dataset or 'duelist config set-dataset'")
	}
	return loadDataset(appConfig.Dataset)
}

func newPrinter(w io.Writer) *display.Printer {
	p := display.NewPrinter(w)
	p.NameWidth = appConfig.NameWidth
	p.Gradient = appConfig.Color
	return p
}

// printStats prints statistics for cards, or a notice when there are none.
func printStats(w io.Writer, p *display.Printer, cards []*card.Card) {
	summary, err := stats.Compute(cards)
	if errors.Is(err, errors.ErrEmptyDataset) {
		fmt.Fprintln(w, "\nThere are no cards to compute statistics for.")
		return
	}
	p.Stats(summary)
}
