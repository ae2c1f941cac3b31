package search

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/errors"
)

func records() []*card.Card {
	cards := []*card.Card{
		{ID: "1", Name: "Dark Magician", Type: "Normal Monster", Race: "Spellcaster", Archetype: "Dark Magician", Price: 2},
		{ID: "2", Name: "Dark Magician Girl", Type: "Effect Monster", Race: "Spellcaster", Archetype: "Dark Magician", Price: 3.5},
		{ID: "3", Name: "Blue-Eyes White Dragon", Type: "Normal Monster", Race: "Dragon", Archetype: "Blue-Eyes", Price: 1.5},
		{ID: "4", Name: "Dark Hole", Type: "Spell Card", Race: "Normal", Price: 0.75},
		{ID: "5", Name: "dark ruler no more", Type: "Spell Card", Race: "Normal", Price: 12.25},
	}
	card.SortCanonical(cards)
	return cards
}

func names(cards []*card.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Name)
	}
	return out
}

func TestSearch_Name(t *testing.T) {
	got, err := Search(records(), "Dark", card.CategoryName)
	require.NoError(t, err)

	assert.Equal(t, []string{"Dark Hole", "Dark Magician", "Dark Magician Girl"}, names(got))
}

func TestSearch_CaseSensitive(t *testing.T) {
	got, err := Search(records(), "dark", card.CategoryName)
	require.NoError(t, err)

	assert.Equal(t, []string{"dark ruler no more"}, names(got))
}

func TestSearch_Price(t *testing.T) {
	got, err := Search(records(), ".5", card.CategoryPrice)
	require.NoError(t, err)

	assert.Equal(t, []string{"Blue-Eyes White Dragon", "Dark Magician Girl"}, names(got))
}

func TestSearch_NoMatches(t *testing.T) {
	got, err := Search(records(), "Exodia", card.CategoryName)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_EmptyQueryMatchesAll(t *testing.T) {
	all := records()
	got, err := Search(all, "", card.CategoryArchetype)
	require.NoError(t, err)
	assert.Len(t, got, len(all))
}

func TestSearch_InvalidCategory(t *testing.T) {
	_, err := Search(records(), "Dark", card.Category(99))

	assert.True(t, errors.Is(err, errors.ErrInvalidCategory))
}

// Every result contains the query and every record that contains it is
// returned, in input order.
func TestSearch_SoundAndComplete(t *testing.T) {
	all := records()
	queries := []string{"", "a", "Dark", "Monster", "Spell", "1", ".", "zzz"}

	for _, category := range card.Categories {
		for _, q := range queries {
			got, err := Search(all, q, category)
			require.NoError(t, err)

			var want []*card.Card
			for _, c := range all {
				if strings.Contains(category.Value(c), q) {
					want = append(want, c)
				}
			}
			assert.Equal(t, want, got, "category=%s query=%q", category, q)

			for _, c := range got {
				assert.Contains(t, category.Value(c), q)
			}
			assert.True(t, slices.IsSortedFunc(got, card.Compare))
		}
	}
}

func TestSearchBy(t *testing.T) {
	got, err := SearchBy(records(), "Spellcaster", "RACE")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = SearchBy(records(), "x", "colour")
	assert.True(t, errors.Is(err, errors.ErrInvalidCategory))
}
