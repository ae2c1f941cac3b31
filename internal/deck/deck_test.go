package deck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/errors"
)

func testCards() []*card.Card {
	return []*card.Card{
		{ID: "1", Name: "Kuriboh", Price: 0.25},
		{ID: "2", Name: "Dark Magician", Price: 2},
		{ID: "3", Name: "Pot of Greed", Price: 2},
		{ID: "4", Name: "Exodia the Forbidden One", Price: 40},
	}
}

func ids(cards []*card.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestMatch_CanonicalOrder(t *testing.T) {
	result := Match(Decklist{"4", "3", "1", "2"}, testCards())

	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(result.Cards))
	assert.Empty(t, result.Unmatched)
}

func TestMatch_Multiplicity(t *testing.T) {
	result := Match(Decklist{"2", "1", "2", "2"}, testCards())

	count := 0
	for _, c := range result.Cards {
		if c.ID == "2" {
			count++
		}
	}
	assert.Equal(t, 3, count)
	assert.Len(t, result.Cards, 4)
}

func TestMatch_SharesCardPointers(t *testing.T) {
	cards := testCards()
	result := Match(Decklist{"2", "2"}, cards)

	require.Len(t, result.Cards, 2)
	assert.Same(t, cards[1], result.Cards[0])
	assert.Same(t, cards[1], result.Cards[1])
}

func TestMatch_UnmatchedSkipped(t *testing.T) {
	result := Match(Decklist{"999", "1", "999", "abc"}, testCards())

	assert.Equal(t, []string{"1"}, ids(result.Cards))
	assert.Equal(t, []string{"999", "abc"}, result.Unmatched)
}

func TestMatch_DuplicateIDsInStore(t *testing.T) {
	cards := []*card.Card{
		{ID: "7", Name: "Copy B", Price: 1},
		{ID: "7", Name: "Copy A", Price: 1},
	}

	result := Match(Decklist{"7", "7"}, cards)

	require.Len(t, result.Cards, 4)
	assert.Equal(t, "Copy A", result.Cards[0].Name)
	assert.Equal(t, "Copy A", result.Cards[1].Name)
	assert.Equal(t, "Copy B", result.Cards[2].Name)
}

func TestMatch_Empty(t *testing.T) {
	result := Match(nil, testCards())

	assert.Empty(t, result.Cards)
	assert.Empty(t, result.Unmatched)
}

func TestIndex_Lookup(t *testing.T) {
	idx := NewIndex(testCards())

	require.Len(t, idx.Lookup("3"), 1)
	assert.Equal(t, "Pot of Greed", idx.Lookup("3")[0].Name)
	assert.Nil(t, idx.Lookup("missing"))
}

func TestRead(t *testing.T) {
	input := "#created by player\n#main\n89631139\n  46986414 \n\n89631139\n#extra\n!side\n55144522\n"

	got, err := Read(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, Decklist{"89631139", "46986414", "89631139", "55144522"}, got)
}

func TestRead_WindowsLineEndings(t *testing.T) {
	got, err := Read(strings.NewReader("1\r\n2\r\n"))

	require.NoError(t, err)
	assert.Equal(t, Decklist{"1", "2"}, got)
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.ydk"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrFileNotFound))
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.ydk")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n1\n"), 0644))

	got, err := ReadFile(path)

	require.NoError(t, err)
	assert.Equal(t, Decklist{"1", "2", "1"}, got)
}
