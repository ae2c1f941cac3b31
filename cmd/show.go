package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/duelist/internal/art"
	"github.com/arcanaland/duelist/internal/config"
	"github.com/arcanaland/duelist/internal/display"
	"github.com/arcanaland/duelist/internal/errors"
)

var noArt bool

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card with ANSI art",
	Long: `Show displays the details of a card by id. When an image named
<id>.png, <id>.jpg or <id>.gif exists in the configured images directory it is
rendered as ANSI art next to the details.

Examples:
  duelist show 46986414
  duelist show --dataset ./cards.csv 89631139
  duelist show --no-art 55144522`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cardID := args[0]

		cat, err := loadConfiguredDataset()
		if err != nil {
			return err
		}

		cards := cat.Lookup(cardID)
		if len(cards) == 0 {
			return errors.NewInvalidRequest(fmt.Sprintf("no card with id %s in the dataset", cardID))
		}

		ansiArt := ""
		if !noArt {
			ansiArt = loadArt(cardID)
		}

		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80
		}

		out := cmd.OutOrStdout()
		// Ids are unique in a clean dataset; duplicates are all shown.
		for _, c := range cards {
			spacing := 4
			artWidth := 0
			if ansiArt != "" {
				artWidth = art.DefaultWidth + spacing
			}
			infoWidth := max(width-artWidth-4, 20)
			display.SideBySide(out, ansiArt, display.CardInfo(c, infoWidth), spacing)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&noArt, "no-art", false, "Show card details without ANSI art")
}

// loadArt returns ANSI art for the card, or "" when no image is available.
func loadArt(cardID string) string {
	imagePath, err := art.FindImage(appConfig.ImagesDir, cardID)
	if err != nil {
		logger.Debug("no card art", "id", cardID, "error", err)
		return ""
	}

	ansiArt, err := art.Load(imagePath, filepath.Join(config.GetCacheDir(), "ansi_cache"))
	if err != nil {
		logger.Warn("failed to render card art", "path", imagePath, "error", err)
		return ""
	}
	return ansiArt
}
