// Package commerce holds the cart entity and the revenue aggregates the carts
// page renders. Money values are decimals end to end.
package commerce

import "github.com/shopspring/decimal"

// Cart is a read-only snapshot of an upstream order. UserID references an
// identity.User with no referential guarantee.
type Cart struct {
	ID              int             `json:"id"`
	Products        []CartProduct   `json:"products"`
	Total           decimal.Decimal `json:"total"`
	DiscountedTotal decimal.Decimal `json:"discountedTotal"`
	UserID          int             `json:"userId"`
	TotalProducts   int             `json:"totalProducts"`
	TotalQuantity   int             `json:"totalQuantity"`
}

// CartProduct is one line item inside a cart.
type CartProduct struct {
	ID                 int             `json:"id"`
	Title              string          `json:"title"`
	Price              decimal.Decimal `json:"price"`
	Quantity           int             `json:"quantity"`
	Total              decimal.Decimal `json:"total"`
	DiscountPercentage float64         `json:"discountPercentage"`
	DiscountedTotal    decimal.Decimal `json:"discountedTotal"`
	Thumbnail          string          `json:"thumbnail"`
}

// Savings is the absolute discount on the cart.
func (c Cart) Savings() decimal.Decimal {
	return c.Total.Sub(c.DiscountedTotal)
}

// SavingsPercent is the discount as a percentage of the undiscounted total,
// rounded to one decimal place. A zero total yields 0% rather than dividing.
func (c Cart) SavingsPercent() decimal.Decimal {
	if c.Total.IsZero() {
		return decimal.Zero
	}
	return c.Savings().Div(c.Total).Mul(decimal.NewFromInt(100)).Round(1)
}

// Summary are the stats cards shown above the cart list, reduced over the full
// loaded collection.
type Summary struct {
	TotalCarts   int             `json:"total_carts"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalItems   int             `json:"total_items"`
	UniqueUsers  int             `json:"unique_users"`
}

// Summarize computes the cart statistics: revenue is the sum of discounted
// totals rounded to cents, items the sum of quantities, unique users the
// distinct userId count.
func Summarize(carts []Cart) Summary {
	s := Summary{TotalCarts: len(carts), TotalRevenue: decimal.Zero}
	seen := make(map[int]struct{}, len(carts))

	for _, c := range carts {
		s.TotalRevenue = s.TotalRevenue.Add(c.DiscountedTotal)
		s.TotalItems += c.TotalQuantity
		if _, ok := seen[c.UserID]; !ok {
			seen[c.UserID] = struct{}{}
			s.UniqueUsers++
		}
	}
	s.TotalRevenue = s.TotalRevenue.Round(2)
	return s
}
