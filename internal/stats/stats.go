package stats

import (
	"slices"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/errors"
)

// Summary holds price statistics for a list of cards. Each tie list holds
// every card whose price equals the statistic exactly, sorted by name.
type Summary struct {
	Count int
	Total float64

	MinPrice float64
	MinTies  []*card.Card

	MaxPrice float64
	MaxTies  []*card.Card

	// MedianPrice is the middle price for an odd count and the larger of
	// the two middle prices for an even count.
	MedianPrice float64
	MedianTies  []*card.Card
}

// Compute calculates price statistics over records. It returns an
// EMPTY_DATASET error when records is empty.
func Compute(records []*card.Card) (*Summary, error) {
	if len(records) == 0 {
		return nil, errors.NewEmptyDataset()
	}

	s := &Summary{
		Count:    len(records),
		MinPrice: records[0].Price,
		MaxPrice: records[0].Price,
	}
	for _, c := range records {
		s.Total += c.Price
		if c.Price < s.MinPrice {
			s.MinPrice = c.Price
		}
		if c.Price > s.MaxPrice {
			s.MaxPrice = c.Price
		}
	}

	s.MedianPrice = Median(records)

	s.MinTies = ties(records, s.MinPrice)
	s.MaxTies = ties(records, s.MaxPrice)
	s.MedianTies = ties(records, s.MedianPrice)

	return s, nil
}

// Median returns the median price of records, taking the upper of the two
// central prices when the count is even. records must not be empty.
func Median(records []*card.Card) float64 {
	prices := make([]float64, len(records))
	for i, c := range records {
		prices[i] = c.Price
	}
	slices.Sort(prices)

	mid := len(prices) / 2
	if len(prices)%2 == 0 {
		return max(prices[mid-1], prices[mid])
	}
	return prices[mid]
}

func ties(records []*card.Card, price float64) []*card.Card {
	var out []*card.Card
	for _, c := range records {
		if c.Price == price {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, card.CompareName)
	return out
}
