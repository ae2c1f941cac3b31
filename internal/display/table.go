// Package display renders cards and price statistics for the terminal.
//
// The core packages hand over raw cards and float prices; everything about
// column widths, name truncation and currency formatting lives here.
package display

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/stats"
)

// Column widths of the card table.
const (
	nameCol      = 50
	typeCol      = 30
	raceCol      = 20
	archetypeCol = 40
	priceCol     = 12
)

// Printer writes tables and statistics to W.
type Printer struct {
	W io.Writer

	// NameWidth is the maximum number of name characters shown.
	NameWidth int

	// Gradient colours prices from cheapest to most expensive.
	Gradient bool
}

// NewPrinter creates a printer with the default name width.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{W: w, NameWidth: 45}
}

// DatasetSize prints the number of cards in the dataset.
func (p *Printer) DatasetSize(n int) {
	fmt.Fprintf(p.W, "\nThere are %d cards in the dataset.\n", n)
}

// SearchHeader prints the search result banner.
func (p *Printer) SearchHeader(n int, query, category string) {
	fmt.Fprintln(p.W, "\nSearch results")
	if n == 0 {
		fmt.Fprintf(p.W, "\nThere are no cards with '%s' in the '%s' category.\n", query, category)
		return
	}
	fmt.Fprintf(p.W, "\nThere are %d cards with '%s' in the '%s' category.\n", n, query, category)
}

// Table prints up to limit cards (all when limit <= 0) followed by the
// total price of the rows shown.
func (p *Printer) Table(cards []*card.Card, limit int) {
	if limit <= 0 || limit > len(cards) {
		limit = len(cards)
	}
	shown := cards[:limit]

	var lo, hi float64
	if len(shown) > 0 {
		lo, hi = shown[0].Price, shown[0].Price
		for _, c := range shown {
			lo = min(lo, c.Price)
			hi = max(hi, c.Price)
		}
	}

	heading := fmt.Sprintf("%-*s%-*s%-*s%-*s%-*s",
		nameCol, "Name", typeCol, "Type", raceCol, "Race", archetypeCol, "Archetype", priceCol, "TCGPlayer")
	fmt.Fprintln(p.W, colorize.New(colorize.Bold).Sprint(heading))

	for _, c := range shown {
		price := fmt.Sprintf("%*s", priceCol, FormatPrice(c.Price))
		if p.Gradient {
			price = paint(price, priceColor(c.Price, lo, hi))
		}
		fmt.Fprintf(p.W, "%-*s%-*s%-*s%-*s%s\n",
			nameCol, Truncate(c.Name, p.NameWidth),
			typeCol, c.Type,
			raceCol, c.Race,
			archetypeCol, c.Archetype,
			price)
	}

	fmt.Fprintf(p.W, "\n%-*s%-*s%-*s%-*s%*s\n",
		nameCol, "Totals", typeCol, "", raceCol, "", archetypeCol, "", priceCol, FormatPrice(Total(shown)))
}

// Stats prints the least expensive, most expensive and median prices with
// the cards at each price.
func (p *Printer) Stats(s *stats.Summary) {
	p.statBlock("least expensive", s.MinPrice, s.MinTies)
	p.statBlock("most expensive", s.MaxPrice, s.MaxTies)
	p.statBlock("median", s.MedianPrice, s.MedianTies)
}

func (p *Printer) statBlock(label string, price float64, cards []*card.Card) {
	fmt.Fprintf(p.W, "\nThe price of the %s card(s) is %s\n",
		label, colorize.New(colorize.FgCyan).Sprint(FormatPrice(price)))
	for _, c := range cards {
		fmt.Fprintf(p.W, "\t%s\n", Truncate(c.Name, p.NameWidth))
	}
}

// Unmatched prints decklist ids that matched no card.
func (p *Printer) Unmatched(ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintln(p.W, colorize.New(colorize.FgYellow).Sprintf(
		"\n%d decklist id(s) not found in the dataset: %s", len(ids), strings.Join(ids, ", ")))
}
