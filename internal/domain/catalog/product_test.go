package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Title: "Essence Mascara", Description: "Lash princess mascara", Category: "beauty"},
		{ID: 2, Title: "Blue T-Shirt", Description: "Comfortable cotton tee", Category: "mens-shirts"},
		{ID: 3, Title: "Powder Canister", Description: "A shirt-pocket sized canister", Category: "beauty"},
		{ID: 4, Title: "Red Lipstick", Description: "Matte finish", Category: "beauty"},
	}
}

func TestFilter(t *testing.T) {
	products := sampleProducts()

	t.Run("empty query returns everything unchanged", func(t *testing.T) {
		got := Filter(products, "", "")
		assert.Equal(t, products, got)
	})

	t.Run("all selector disables category matching", func(t *testing.T) {
		got := Filter(products, "", CategoryAll)
		assert.Len(t, got, 4)
	})

	t.Run("query is case-insensitive over title and description", func(t *testing.T) {
		got := Filter(products, "SHIRT", CategoryAll)
		assert.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("category ANDs with query", func(t *testing.T) {
		got := Filter(products, "shirt", "beauty")
		assert.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("source order preserved", func(t *testing.T) {
		got := Filter(products, "a", CategoryAll)
		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1].ID, got[i].ID)
		}
	})

	t.Run("query is matched verbatim, whitespace included", func(t *testing.T) {
		// "shirt " does not occur in any title or description, so the
		// trailing space is not stripped away.
		got := Filter(products, "shirt ", CategoryAll)
		assert.Empty(t, got)

		got = Filter(products, "cotton tee", CategoryAll)
		assert.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("source slice not mutated", func(t *testing.T) {
		before := sampleProducts()
		Filter(products, "shirt", "beauty")
		assert.Equal(t, before, products)
	})
}

func TestOriginalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount float64
		want     string
	}{
		{"no discount returns listed price", "50", 0, "50"},
		{"20 percent off", "80", 20, "100"},
		{"out of range discount ignored", "80", 100, "80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: decimal.RequireFromString(tt.price), DiscountPercentage: tt.discount}
			assert.True(t, p.OriginalPrice().Equal(decimal.RequireFromString(tt.want)),
				"got %s want %s", p.OriginalPrice(), tt.want)
		})
	}
}
