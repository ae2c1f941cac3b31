package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/errors"
)

func priced(prices ...float64) []*card.Card {
	cards := make([]*card.Card, len(prices))
	for i, p := range prices {
		cards[i] = &card.Card{ID: string(rune('a' + i)), Name: string(rune('A' + i)), Price: p}
	}
	return cards
}

func names(cards []*card.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Name)
	}
	return out
}

func TestCompute_WorkedExample(t *testing.T) {
	records := []*card.Card{
		{ID: "3", Name: "C", Price: 10.0},
		{ID: "2", Name: "B", Price: 5.0},
		{ID: "1", Name: "A", Price: 5.0},
	}

	s, err := Compute(records)
	require.NoError(t, err)

	assert.Equal(t, 5.0, s.MinPrice)
	assert.Equal(t, []string{"A", "B"}, names(s.MinTies))
	assert.Equal(t, 10.0, s.MaxPrice)
	assert.Equal(t, []string{"C"}, names(s.MaxTies))
	assert.Equal(t, 5.0, s.MedianPrice)
	assert.Equal(t, []string{"A", "B"}, names(s.MedianTies))
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, 20.0, s.Total)
}

func TestCompute_EvenMedianTakesUpper(t *testing.T) {
	s, err := Compute(priced(4, 1, 3, 2))
	require.NoError(t, err)

	assert.Equal(t, 3.0, s.MedianPrice)
	assert.Equal(t, []string{"C"}, names(s.MedianTies))
}

func TestCompute_Empty(t *testing.T) {
	s, err := Compute(nil)

	assert.Nil(t, s)
	assert.True(t, errors.Is(err, errors.ErrEmptyDataset))
}

func TestCompute_SingleRecord(t *testing.T) {
	s, err := Compute(priced(7.5))
	require.NoError(t, err)

	assert.Equal(t, 7.5, s.MinPrice)
	assert.Equal(t, 7.5, s.MaxPrice)
	assert.Equal(t, 7.5, s.MedianPrice)
	assert.Len(t, s.MinTies, 1)
	assert.Len(t, s.MaxTies, 1)
	assert.Len(t, s.MedianTies, 1)
}

// Prices far outside any placeholder range still produce the right extremes.
func TestCompute_LargeAndZeroPrices(t *testing.T) {
	s, err := Compute(priced(5_000_000, 0, 2_000_000))
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.MinPrice)
	assert.Equal(t, 5_000_000.0, s.MaxPrice)
	assert.Equal(t, 2_000_000.0, s.MedianPrice)
}

func TestCompute_TiesSortedByName(t *testing.T) {
	records := []*card.Card{
		{ID: "1", Name: "zeta", Price: 1},
		{ID: "2", Name: "Alpha", Price: 1},
		{ID: "3", Name: "Mu", Price: 1},
	}

	s, err := Compute(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha", "Mu", "zeta"}, names(s.MinTies))
	assert.Equal(t, names(s.MinTies), names(s.MaxTies))
	assert.Equal(t, names(s.MinTies), names(s.MedianTies))
}

func TestCompute_ExactEquality(t *testing.T) {
	a, b := 0.1, 0.2
	records := []*card.Card{
		{ID: "1", Name: "A", Price: a + b},
		{ID: "2", Name: "B", Price: 0.3},
	}

	s, err := Compute(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, names(s.MinTies))
	assert.Equal(t, []string{"A"}, names(s.MaxTies))
}

func TestCompute_DoesNotReorderInput(t *testing.T) {
	records := priced(3, 1, 2)
	_, err := Compute(records)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, names(records))
}

func TestCompute_MedianBetweenExtremes(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		n := rng.Intn(20) + 1
		prices := make([]float64, n)
		for j := range prices {
			prices[j] = float64(rng.Intn(50)) / 4
		}

		s, err := Compute(priced(prices...))
		require.NoError(t, err)

		assert.LessOrEqual(t, s.MinPrice, s.MedianPrice)
		assert.LessOrEqual(t, s.MedianPrice, s.MaxPrice)
		assert.NotEmpty(t, s.MedianTies)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
		want   float64
	}{
		{"odd", []float64{10, 5, 5}, 5},
		{"even", []float64{1, 2, 3, 4}, 3},
		{"even equal middle", []float64{2, 2, 9, 1}, 2},
		{"two", []float64{8, 1}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Median(priced(tt.prices...)))
		})
	}
}
