package menu

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	colorize "github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/catalog"
	"github.com/arcanaland/duelist/internal/logging"
)

const dataset = `id,name,type,desc,race,archetype,card price
46986414,Dark Magician,Normal Monster,"The ultimate wizard.",Spellcaster,Dark Magician,2.00
38033121,Dark Magician Girl,Effect Monster,"Gains ATK.",Spellcaster,Dark Magician,3.50
89631139,Blue-Eyes White Dragon,Normal Monster,"A powerful engine of destruction.",Dragon,Blue-Eyes,1.50
55144522,Pot of Greed,Spell Card,"Draw 2 cards.",Normal,,2.00
`

func TestMain(m *testing.M) {
	colorize.NoColor = true
	os.Exit(m.Run())
}

type fixture struct {
	dir     string
	dataset string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.csv")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0644))
	return fixture{dir: dir, dataset: path}
}

func (f fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, input string, mutate func(*Options)) string {
	t.Helper()
	var out bytes.Buffer
	opts := Options{
		In:           strings.NewReader(input),
		Out:          &out,
		Text:         "\nMENU: ",
		Farewell:     "\nbye",
		PreviewLimit: 50,
		Logger:       logging.Discard(),
	}
	if mutate != nil {
		mutate(&opts)
	}
	require.NoError(t, New(opts, nil).Run())
	return out.String()
}

func TestRun_RetriesMissingDataset(t *testing.T) {
	f := newFixture(t)

	out := run(t, "missing.csv\n"+f.dataset+"\n4\n", nil)

	assert.Equal(t, 1, strings.Count(out, FileNotFound))
	assert.Equal(t, 2, strings.Count(out, DatasetPrompt))
	assert.True(t, strings.HasSuffix(out, "\nbye\n"))
}

func TestRun_RetriesMalformedDataset(t *testing.T) {
	f := newFixture(t)
	bad := f.write(t, "bad.csv", "id,name,type,desc,race,archetype,card price\n1,A,t,d,r,a,free\n")

	out := run(t, bad+"\n"+f.dataset+"\n4\n", nil)

	assert.Contains(t, out, "MALFORMED_RECORD")
	assert.Contains(t, out, "\nbye")
}

func TestRun_ListAll(t *testing.T) {
	f := newFixture(t)

	out := run(t, f.dataset+"\n1\n4\n", nil)

	assert.Contains(t, out, "There are 4 cards in the dataset.")
	assert.Contains(t, out, "Totals")
	assert.Contains(t, out, "9.00")
	assert.Contains(t, out, "The price of the least expensive card(s) is 1.50\n\tBlue-Eyes White Dragon")
	assert.Contains(t, out, "The price of the most expensive card(s) is 3.50\n\tDark Magician Girl")
	// Even count: the upper of 2.00 and 2.00
	assert.Contains(t, out, "The price of the median card(s) is 2.00\n\tDark Magician\n\tPot of Greed")
}

func TestRun_ListAllPreviewLimit(t *testing.T) {
	f := newFixture(t)

	out := run(t, f.dataset+"\n1\n4\n", func(o *Options) { o.PreviewLimit = 1 })

	assert.Contains(t, out, "There are 4 cards in the dataset.")
	assert.NotContains(t, out, "Pot of Greed       ")
	// Statistics still cover the whole dataset
	assert.Contains(t, out, "most expensive card(s) is 3.50")
}

func TestRun_Search(t *testing.T) {
	f := newFixture(t)

	out := run(t, f.dataset+"\n2\nDark\ncolour\nNAME\n4\n", nil)

	assert.Equal(t, 1, strings.Count(out, InvalidCategory))
	assert.Contains(t, out, "There are 2 cards with 'Dark' in the 'name' category.")
	assert.Contains(t, out, "least expensive card(s) is 2.00\n\tDark Magician\n")
}

func TestRun_SearchNoResults(t *testing.T) {
	f := newFixture(t)

	out := run(t, f.dataset+"\n2\nExodia\nname\n4\n", nil)

	assert.Contains(t, out, "There are no cards with 'Exodia' in the 'name' category.")
	assert.NotContains(t, out, "least expensive")
}

func TestRun_SearchRestrictedCategories(t *testing.T) {
	f := newFixture(t)

	out := run(t, f.dataset+"\n2\n1\nid\nprice\n4\n", func(o *Options) {
		o.Categories = []card.Category{card.CategoryName, card.CategoryPrice}
	})

	assert.Equal(t, 1, strings.Count(out, InvalidCategory))
	assert.Contains(t, out, "There are 1 cards with '1' in the 'price' category.")
}

func TestRun_Decklist(t *testing.T) {
	f := newFixture(t)
	decklist := f.write(t, "deck.ydk", "#main\n55144522\n89631139\n55144522\n00000000\n")

	out := run(t, f.dataset+"\n3\nnope.ydk\n"+decklist+"\n4\n", func(o *Options) { o.ShowUnmatched = true })

	assert.Equal(t, 1, strings.Count(out, FileNotFound))
	assert.Contains(t, out, "Search results")
	// Two table rows for the two copies; the rest are tie lists
	assert.Equal(t, 2, strings.Count(out, "Pot of Greed")-strings.Count(out, "\tPot of Greed"))
	assert.Contains(t, out, "1 decklist id(s) not found in the dataset: 00000000")
	assert.Contains(t, out, "most expensive card(s) is 2.00\n\tPot of Greed\n\tPot of Greed\n")
}

func TestRun_EmptyDecklist(t *testing.T) {
	f := newFixture(t)
	decklist := f.write(t, "empty.ydk", "#main\n99999999\n")

	out := run(t, f.dataset+"\n3\n"+decklist+"\n4\n", nil)

	assert.Contains(t, out, NoStatistics)
	assert.NotContains(t, out, "not found in the dataset")
}

func TestRun_InvalidOption(t *testing.T) {
	f := newFixture(t)

	out := run(t, f.dataset+"\n9\n\n4\n", nil)

	assert.Equal(t, 2, strings.Count(out, InvalidOption))
	assert.Equal(t, 3, strings.Count(out, "MENU: "))
}

func TestRun_EndOfInput(t *testing.T) {
	f := newFixture(t)

	out := run(t, f.dataset+"\n2\nDark\n", nil)

	assert.NotContains(t, out, "bye")
}

func TestRun_PreloadedCatalog(t *testing.T) {
	cat, err := catalog.Parse([][]string{{"1", "Solo", "t", "d", "r", "a", "4"}}, catalog.DefaultOptions())
	require.NoError(t, err)

	var out bytes.Buffer
	s := New(Options{In: strings.NewReader("1\n4\n"), Out: &out, Text: "?", Farewell: "bye", Logger: logging.Discard()}, cat)
	require.NoError(t, s.Run())

	assert.NotContains(t, out.String(), DatasetPrompt)
	assert.Contains(t, out.String(), "There are 1 cards in the dataset.")
	assert.Contains(t, out.String(), "median card(s) is 4.00\n\tSolo")
}
