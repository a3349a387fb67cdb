package commerce

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSummarize(t *testing.T) {
	carts := []Cart{
		{ID: 1, Total: dec("100"), DiscountedTotal: dec("80"), TotalQuantity: 5, UserID: 33},
		{ID: 2, Total: dec("50"), DiscountedTotal: dec("50"), TotalQuantity: 2, UserID: 97},
		{ID: 3, Total: dec("10.555"), DiscountedTotal: dec("10.555"), TotalQuantity: 1, UserID: 33},
	}

	s := Summarize(carts)

	assert.Equal(t, 3, s.TotalCarts)
	assert.True(t, s.TotalRevenue.Equal(dec("140.56")), "got %s", s.TotalRevenue)
	assert.Equal(t, 8, s.TotalItems)
	assert.Equal(t, 2, s.UniqueUsers)
}

func TestSummarizeScenario(t *testing.T) {
	// Two carts, one discounted: revenue must be exact to two decimal places.
	carts := []Cart{
		{ID: 1, Total: dec("100"), DiscountedTotal: dec("80")},
		{ID: 2, Total: dec("50"), DiscountedTotal: dec("50")},
	}

	s := Summarize(carts)
	assert.Equal(t, "130.00", s.TotalRevenue.StringFixed(2))
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalCarts)
	assert.True(t, s.TotalRevenue.IsZero())
	assert.Zero(t, s.UniqueUsers)
}

func TestCartSavings(t *testing.T) {
	t.Run("discounted cart", func(t *testing.T) {
		c := Cart{Total: dec("100"), DiscountedTotal: dec("80")}
		assert.True(t, c.Savings().Equal(dec("20")))
		assert.Equal(t, "20.0", c.SavingsPercent().StringFixed(1))
	})

	t.Run("undiscounted cart", func(t *testing.T) {
		c := Cart{Total: dec("50"), DiscountedTotal: dec("50")}
		assert.True(t, c.Savings().IsZero())
		assert.True(t, c.SavingsPercent().IsZero())
	})

	t.Run("zero total does not divide", func(t *testing.T) {
		c := Cart{}
		assert.True(t, c.SavingsPercent().IsZero())
	})

	t.Run("percent is rounded to one place", func(t *testing.T) {
		c := Cart{Total: dec("3"), DiscountedTotal: dec("2")}
		assert.Equal(t, "33.3", c.SavingsPercent().StringFixed(1))
	})
}
