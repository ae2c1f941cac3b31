package display

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arcanaland/duelist/internal/card"
)

var numberPrinter = message.NewPrinter(language.English)

// Price gradient endpoints, cheapest to most expensive.
var (
	cheapColor, _  = colorful.Hex("#5fd75f")
	priceyColor, _ = colorful.Hex("#ff5f5f")
)

// FormatPrice renders a price with two decimals and thousands separators
// (e.g., 1,234.50).
func FormatPrice(price float64) string {
	return numberPrinter.Sprintf("%.2f", price)
}

// Total sums card prices exactly, so long listings don't drift.
func Total(cards []*card.Card) float64 {
	sum := decimal.Zero
	for _, c := range cards {
		sum = sum.Add(decimal.NewFromFloat(c.Price))
	}
	return sum.InexactFloat64()
}

// Truncate shortens s to at most width characters.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

// priceColor places price on the cheap→pricey gradient between lo and hi.
func priceColor(price, lo, hi float64) colorful.Color {
	if hi <= lo {
		return cheapColor
	}
	t := (price - lo) / (hi - lo)
	return cheapColor.BlendLab(priceyColor, t).Clamped()
}

// paint wraps text in a 24-bit foreground colour escape unless colour
// output is disabled.
func paint(text string, c colorful.Color) string {
	if colorize.NoColor {
		return text
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}
