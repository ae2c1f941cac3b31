// Package menu implements the interactive four-option session: list all
// cards, search, view a decklist, exit.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/catalog"
	"github.com/arcanaland/duelist/internal/deck"
	"github.com/arcanaland/duelist/internal/display"
	"github.com/arcanaland/duelist/internal/errors"
	"github.com/arcanaland/duelist/internal/search"
	"github.com/arcanaland/duelist/internal/stats"
)

// Prompts shown by the session.
const (
	DatasetPrompt   = "\nEnter cards file name: "
	QueryPrompt     = "\nEnter query: "
	CategoryPrompt  = "\nEnter category to search: "
	DecklistPrompt  = "\nEnter decklist filename: "
	FileNotFound    = "\nFile not Found. Please try again!"
	InvalidOption   = "\nInvalid option. Please try again!"
	InvalidCategory = "\nIncorrect category was selected!"
	NoStatistics    = "\nThere are no cards to compute statistics for."
)

// Options configures a Session.
type Options struct {
	In  io.Reader
	Out io.Writer

	// Text is the menu printed before every option prompt.
	Text     string
	Farewell string

	// Categories accepted by the search prompt.
	Categories []card.Category

	// PreviewLimit caps the rows shown by "Check All Cards".
	PreviewLimit int

	// ShowUnmatched reports decklist ids missing from the dataset.
	ShowUnmatched bool

	Printer *display.Printer

	// LoadDataset and LoadDecklist open files by name. Retryable errors
	// make the session ask again.
	LoadDataset  func(path string) (*catalog.Catalog, error)
	LoadDecklist func(path string) (deck.Decklist, error)

	Logger *slog.Logger
}

// Session is one interactive run over a single dataset.
type Session struct {
	opts    Options
	scanner *bufio.Scanner
	catalog *catalog.Catalog
}

// New creates a session. If cat is nil the session asks for a dataset
// file first.
func New(opts Options, cat *catalog.Catalog) *Session {
	if opts.Printer == nil {
		opts.Printer = display.NewPrinter(opts.Out)
	}
	if len(opts.Categories) == 0 {
		opts.Categories = card.Categories
	}
	if opts.LoadDataset == nil {
		opts.LoadDataset = func(path string) (*catalog.Catalog, error) {
			return catalog.LoadFile(path, catalog.DefaultOptions())
		}
	}
	if opts.LoadDecklist == nil {
		opts.LoadDecklist = deck.ReadFile
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Session{
		opts:    opts,
		scanner: bufio.NewScanner(opts.In),
		catalog: cat,
	}
}

// Run drives the session until the user exits or input ends.
func (s *Session) Run() error {
	if s.catalog == nil {
		cat, ok, err := s.promptDataset()
		if err != nil || !ok {
			return err
		}
		s.catalog = cat
	}

	for {
		option, ok := s.prompt(s.opts.Text)
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(option) {
		case "1":
			err = s.listAll()
		case "2":
			err = s.search()
		case "3":
			err = s.viewDecklist()
		case "4":
			fmt.Fprintln(s.opts.Out, s.opts.Farewell)
			return nil
		default:
			fmt.Fprintln(s.opts.Out, InvalidOption)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// prompt prints text and reads one line. ok is false once input ends.
func (s *Session) prompt(text string) (string, bool) {
	fmt.Fprint(s.opts.Out, text)
	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

// promptDataset asks for a dataset file until one loads.
func (s *Session) promptDataset() (*catalog.Catalog, bool, error) {
	for {
		path, ok := s.prompt(DatasetPrompt)
		if !ok {
			return nil, false, nil
		}
		cat, err := s.opts.LoadDataset(strings.TrimSpace(path))
		if err == nil {
			return cat, true, nil
		}
		if errors.Is(err, errors.ErrFileNotFound) {
			fmt.Fprintln(s.opts.Out, FileNotFound)
			continue
		}
		if errors.Is(err, errors.ErrMalformedRecord) {
			s.opts.Logger.Warn("dataset rejected", "path", path, "error", err)
			fmt.Fprintf(s.opts.Out, "\n%v\n", err)
			continue
		}
		return nil, false, err
	}
}

func (s *Session) listAll() error {
	cards := s.catalog.Cards()
	p := s.opts.Printer

	p.DatasetSize(len(cards))
	p.Table(cards, s.opts.PreviewLimit)
	s.printStats(cards)
	return nil
}

func (s *Session) search() error {
	query, ok := s.prompt(QueryPrompt)
	if !ok {
		return io.EOF
	}

	for {
		input, ok := s.prompt(CategoryPrompt)
		if !ok {
			return io.EOF
		}
		name := strings.ToLower(input)

		category, err := card.ParseCategoryIn(name, s.opts.Categories)
		if err != nil {
			if errors.Retryable(err) {
				fmt.Fprintln(s.opts.Out, InvalidCategory)
				continue
			}
			return err
		}

		results, err := search.Search(s.catalog.Cards(), query, category)
		if err != nil {
			return err
		}

		s.opts.Printer.SearchHeader(len(results), query, name)
		if len(results) > 0 {
			s.opts.Printer.Table(results, 0)
			s.printStats(results)
		}
		return nil
	}
}

func (s *Session) viewDecklist() error {
	for {
		path, ok := s.prompt(DecklistPrompt)
		if !ok {
			return io.EOF
		}

		ids, err := s.opts.LoadDecklist(strings.TrimSpace(path))
		if errors.Is(err, errors.ErrFileNotFound) {
			fmt.Fprintln(s.opts.Out, FileNotFound)
			continue
		}
		if err != nil {
			return err
		}

		result := s.catalog.Match(ids)
		s.opts.Logger.Debug("decklist matched",
			"ids", len(ids), "cards", len(result.Cards), "unmatched", len(result.Unmatched))

		fmt.Fprintln(s.opts.Out, "\nSearch results")
		s.opts.Printer.Table(result.Cards, 0)
		s.printStats(result.Cards)
		if s.opts.ShowUnmatched {
			s.opts.Printer.Unmatched(result.Unmatched)
		}
		return nil
	}
}

// printStats prints statistics, or a notice when there are no cards.
func (s *Session) printStats(cards []*card.Card) {
	summary, err := stats.Compute(cards)
	if errors.Is(err, errors.ErrEmptyDataset) {
		fmt.Fprintln(s.opts.Out, NoStatistics)
		return
	}
	s.opts.Printer.Stats(summary)
}
