package model

import "github.com/shopspring/decimal"

// Category classifies a transaction for budgeting.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryHousing        Category = "housing"
	CategoryTransportation Category = "transportation"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryHealthcare     Category = "healthcare"
	CategoryShopping       Category = "shopping"
	CategoryOther          Category = "other"
)

// categories is the fixed enumeration, in display order.
var categories = []Category{
	CategoryFood,
	CategoryHousing,
	CategoryTransportation,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryShopping,
	CategoryOther,
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether c is in the fixed category set.
func ValidCategory(c Category) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Budgets maps each category to its monthly limit. The key set is fixed:
// limits change, keys do not.
type Budgets map[Category]decimal.Decimal

// Clone returns an independent copy of b.
func (b Budgets) Clone() Budgets {
	out := make(Budgets, len(b))
	for c, limit := range b {
		out[c] = limit
	}
	return out
}
