package deck

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/errors"
)

// Decklist is an ordered list of card ids as read from a decklist file.
// Repeated ids stand for multiple copies of the same card.
type Decklist []string

// Result is the outcome of resolving a decklist against a set of cards.
type Result struct {
	// Cards holds every matched card, one entry per matching id occurrence,
	// in canonical order.
	Cards []*card.Card

	// Unmatched lists ids that matched no card, in order of first
	// appearance. It is informational only.
	Unmatched []string
}

// Index maps card ids to the cards carrying them.
type Index map[string][]*card.Card

// NewIndex builds an id index over cards. Cards sharing an id are kept in
// the order they appear in cards.
func NewIndex(cards []*card.Card) Index {
	idx := make(Index, len(cards))
	for _, c := range cards {
		idx[c.ID] = append(idx[c.ID], c)
	}
	return idx
}

// Lookup returns all cards with the given id.
func (idx Index) Lookup(id string) []*card.Card {
	return idx[id]
}

// Match resolves ids against the index. For each id, in list order, every
// card with that id is appended; ids without a card are skipped and
// reported in Result.Unmatched. The matched cards are then sorted into
// canonical order, so decklist order does not survive.
func (idx Index) Match(ids Decklist) Result {
	var result Result
	seen := make(map[string]bool)

	for _, id := range ids {
		matches := idx[id]
		if len(matches) == 0 {
			if !seen[id] {
				seen[id] = true
				result.Unmatched = append(result.Unmatched, id)
			}
			continue
		}
		result.Cards = append(result.Cards, matches...)
	}

	card.SortCanonical(result.Cards)
	return result
}

// Match resolves ids against records. It is a convenience for callers that
// don't keep an Index around.
func Match(ids Decklist, records []*card.Card) Result {
	return NewIndex(records).Match(ids)
}

// Read reads a decklist: one id per line, in file order. Blank lines and
// YDK section markers (lines starting with '#' or '!') are skipped.
func Read(r io.Reader) (Decklist, error) {
	var ids Decklist

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || isSectionMarker(line) {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading decklist: %w", err)
	}

	return ids, nil
}

// ReadFile reads a decklist from path.
func ReadFile(path string) (Decklist, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewFileNotFound(path)
		}
		return nil, fmt.Errorf("error opening decklist: %w", err)
	}
	defer file.Close()

	return Read(file)
}

// isSectionMarker reports whether line is a YDK header such as "#main",
// "#extra", "!side" or "#created by ...".
func isSectionMarker(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!")
}
