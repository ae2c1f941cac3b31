package card

import (
	"strconv"
	"strings"

	"github.com/arcanaland/duelist/internal/errors"
)

// Category selects one of the searchable card fields.
type Category int

const (
	CategoryID Category = iota
	CategoryName
	CategoryType
	CategoryDescription
	CategoryRace
	CategoryArchetype
	CategoryPrice
)

// Categories lists every category in dataset column order.
var Categories = []Category{
	CategoryID,
	CategoryName,
	CategoryType,
	CategoryDescription,
	CategoryRace,
	CategoryArchetype,
	CategoryPrice,
}

var categoryNames = map[Category]string{
	CategoryID:          "id",
	CategoryName:        "name",
	CategoryType:        "type",
	CategoryDescription: "description",
	CategoryRace:        "race",
	CategoryArchetype:   "archetype",
	CategoryPrice:       "price",
}

// Dataset header labels are accepted as category names too.
var categoryAliases = map[string]Category{
	"desc":       CategoryDescription,
	"card price": CategoryPrice,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Value returns the searchable text of the field c selects.
// Prices are rendered with the shortest representation that round-trips.
func (c Category) Value(card *Card) string {
	switch c {
	case CategoryID:
		return card.ID
	case CategoryName:
		return card.Name
	case CategoryType:
		return card.Type
	case CategoryDescription:
		return card.Description
	case CategoryRace:
		return card.Race
	case CategoryArchetype:
		return card.Archetype
	case CategoryPrice:
		return strconv.FormatFloat(card.Price, 'f', -1, 64)
	default:
		return ""
	}
}

// CategoryNames returns the canonical names of the given categories.
func CategoryNames(categories []Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.String())
	}
	return names
}

// ParseCategory resolves a user-supplied category name. Matching ignores case
// and surrounding whitespace and accepts the legacy aliases "desc" and "card price".
func ParseCategory(s string) (Category, error) {
	return ParseCategoryIn(s, Categories)
}

// ParseCategoryIn is like ParseCategory but only accepts categories in allowed.
func ParseCategoryIn(s string, allowed []Category) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))

	var found Category = -1
	for c, name := range categoryNames {
		if name == key {
			found = c
			break
		}
	}
	if found < 0 {
		if alias, ok := categoryAliases[key]; ok {
			found = alias
		}
	}

	for _, c := range allowed {
		if found >= 0 && c == found {
			return c, nil
		}
	}
	return -1, errors.NewInvalidCategory(s, CategoryNames(allowed))
}
