// Package catalog holds the product entities served by the upstream API and
// the derived views the products page renders.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CategoryAll is the selector value that disables category matching.
const CategoryAll = "all"

// Product is a read-only snapshot of an upstream catalog item. Field names
// follow the upstream JSON schema.
type Product struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	DiscountPercentage float64         `json:"discountPercentage"`
	Rating             float64         `json:"rating"`
	Stock              int             `json:"stock"`
	Category           string          `json:"category"`
	Thumbnail          string          `json:"thumbnail"`
}

// OriginalPrice derives the pre-discount price shown struck through on the
// product card. Returns the listed price unchanged when no discount applies.
func (p Product) OriginalPrice() decimal.Decimal {
	if p.DiscountPercentage <= 0 || p.DiscountPercentage >= 100 {
		return p.Price
	}
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(p.DiscountPercentage).Div(decimal.NewFromInt(100)))
	return p.Price.Div(factor).Round(2)
}

// Filter returns the subsequence of products matching the free-text query and
// category selector. The text match is a case-insensitive substring match on
// title and description; the category selector must match exactly unless it is
// empty or CategoryAll. Source order is preserved and the input is never
// mutated.
func Filter(products []Product, query, category string) []Product {
	q := strings.ToLower(query)
	matchAll := category == "" || category == CategoryAll

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if !matchAll && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
