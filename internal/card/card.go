package card

import (
	"cmp"
	"slices"
	"strings"
)

// Card represents a single trading card record from a dataset.
// Cards are created once at ingestion and never modified afterwards.
type Card struct {
	ID          string  // Unique key within a dataset (e.g., 89631139)
	Name        string  // Full card name
	Type        string  // Card frame type (e.g., Normal Monster, Spell Card)
	Description string  // Card text
	Race        string  // Monster race or spell/trap subtype
	Archetype   string  // Archetype, may be empty
	Price       float64 // Market price, never negative
}

// Compare orders cards canonically: ascending by price, then by name
// (exact, case-sensitive byte order). The id breaks remaining ties so
// that the order is total.
func Compare(a, b *Card) int {
	if c := cmp.Compare(a.Price, b.Price); c != 0 {
		return c
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}

// CompareName orders cards by name only.
func CompareName(a, b *Card) int {
	return strings.Compare(a.Name, b.Name)
}

// SortCanonical sorts cards in place into canonical order.
func SortCanonical(cards []*Card) {
	slices.SortStableFunc(cards, Compare)
}

// IsCanonical reports whether cards are already in canonical order.
func IsCanonical(cards []*Card) bool {
	return slices.IsSortedFunc(cards, Compare)
}
