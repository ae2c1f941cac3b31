// Package catalog loads card datasets into an immutable, canonically
// ordered record store.
//
// A dataset is delimited text: one header row, then rows of exactly seven
// fields in the order id, name, type, description, race, archetype, price.
// Parsing is all-or-nothing: the first malformed row aborts the load with a
// MALFORMED_RECORD error naming the row. Use the validator package to list
// every problem in a file at once.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/deck"
	"github.com/arcanaland/duelist/internal/errors"
)

// FieldCount is the number of fields every dataset row must have.
const FieldCount = 7

// Header is the expected dataset header.
var Header = []string{"id", "name", "type", "desc", "race", "archetype", "card price"}

// Options configures dataset loading.
type Options struct {
	// Delimiter separates fields. Defaults to ','.
	Delimiter rune

	// TruncateNamesAt, when positive, shortens stored names to at most that
	// many characters. This reproduces the legacy behaviour where truncated
	// names are also what search and display see. Zero keeps full names.
	TruncateNamesAt int

	Logger *slog.Logger
}

// DefaultOptions returns options for comma-separated datasets with full names.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
	}
}

// Catalog is a build-once store of cards in canonical order.
// It is safe for concurrent readers.
type Catalog struct {
	cards []*card.Card
	index deck.Index
}

// Parse builds a catalog from data rows (no header). Row i is reported as
// data row i+1 on line i+2.
func Parse(rows [][]string, opts Options) (*Catalog, error) {
	cards := make([]*card.Card, 0, len(rows))
	for i, fields := range rows {
		c, err := NewCard(fields, opts.TruncateNamesAt)
		if err != nil {
			return nil, errors.NewMalformedRecord(i+1, i+2, err.Error())
		}
		cards = append(cards, c)
	}
	return newCatalog(cards), nil
}

// Load reads a dataset with a header row from r.
func Load(r io.Reader, opts Options) (*Catalog, error) {
	opts = withDefaults(opts)

	reader := NewReader(r, opts.Delimiter)

	// Skip the header
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			opts.Logger.Warn("dataset is empty")
			return newCatalog(nil), nil
		}
		return nil, readError(err, 0)
	}

	var cards []*card.Card
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, readError(err, row)
		}

		c, err := NewCard(fields, opts.TruncateNamesAt)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, errors.NewMalformedRecord(row, line, err.Error())
		}
		cards = append(cards, c)
	}

	cat := newCatalog(cards)
	opts.Logger.Debug("dataset loaded", "cards", cat.Len())
	return cat, nil
}

// LoadFile loads a dataset from path.
func LoadFile(path string, opts Options) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFound(path)
		}
		return nil, fmt.Errorf("error opening dataset: %w", err)
	}
	defer file.Close()

	opts = withDefaults(opts)
	cat, err := Load(file, opts)
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("dataset ready", "path", path, "cards", cat.Len())
	return cat, nil
}

// NewCard builds a card from one dataset row. The price must be a finite,
// non-negative number.
func NewCard(fields []string, truncateNamesAt int) (*card.Card, error) {
	if len(fields) != FieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", FieldCount, len(fields))
	}

	price, err := ParsePrice(fields[6])
	if err != nil {
		return nil, err
	}

	name := fields[1]
	if truncateNamesAt > 0 {
		name = truncate(name, truncateNamesAt)
	}

	return &card.Card{
		ID:          fields[0],
		Name:        name,
		Type:        fields[2],
		Description: fields[3],
		Race:        fields[4],
		Archetype:   fields[5],
		Price:       price,
	}, nil
}

// ParsePrice parses a price field.
func ParsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("price %q is not a number", s)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("price %q is not finite", s)
	}
	if price < 0 {
		return 0, fmt.Errorf("price %q is negative", s)
	}
	return price, nil
}

// Cards returns all cards in canonical order. The slice is shared and
// must not be modified.
func (c *Catalog) Cards() []*card.Card {
	return c.cards
}

// Len returns the number of cards.
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Lookup returns every card with the given id.
func (c *Catalog) Lookup(id string) []*card.Card {
	return c.index.Lookup(id)
}

// Match resolves a decklist against the catalog using its id index.
func (c *Catalog) Match(ids deck.Decklist) deck.Result {
	return c.index.Match(ids)
}

func newCatalog(cards []*card.Card) *Catalog {
	card.SortCanonical(cards)
	return &Catalog{
		cards: cards,
		index: deck.NewIndex(cards),
	}
}

// NewReader returns a CSV reader configured the way Load reads datasets.
func NewReader(r io.Reader, delimiter rune) *csv.Reader {
	if delimiter == 0 {
		delimiter = ','
	}
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // field count is checked per row
	reader.LazyQuotes = true
	return reader
}

func readError(err error, row int) error {
	if pErr, ok := err.(*csv.ParseError); ok {
		return errors.NewMalformedRecord(row, pErr.Line, pErr.Err.Error())
	}
	return fmt.Errorf("error reading dataset: %w", err)
}

func withDefaults(opts Options) Options {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
