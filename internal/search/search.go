package search

import (
	"strings"

	"github.com/arcanaland/duelist/internal/card"
	"github.com/arcanaland/duelist/internal/errors"
)

// Search returns the records whose category field contains query as a
// literal, case-sensitive substring. Relative order is preserved, so a
// canonically ordered input yields a canonically ordered result.
func Search(records []*card.Card, query string, category card.Category) ([]*card.Card, error) {
	if !category.Valid() {
		return nil, errors.NewInvalidCategory(category.String(), card.CategoryNames(card.Categories))
	}

	var results []*card.Card
	for _, c := range records {
		if strings.Contains(category.Value(c), query) {
			results = append(results, c)
		}
	}
	return results, nil
}

// SearchBy is Search with the category given by name.
func SearchBy(records []*card.Card, query, categoryName string) ([]*card.Card, error) {
	category, err := card.ParseCategory(categoryName)
	if err != nil {
		return nil, err
	}
	return Search(records, query, category)
}
