package budget

import (
	"github.com/shopspring/decimal"

	"github.com/budgetbook-dev/budgetbook/internal/model"
)

// DefaultLimits returns the budget table seeded at first run. Values are
// currency-agnostic numeric units.
func DefaultLimits() model.Budgets {
	return model.Budgets{
		model.CategoryFood:           decimal.NewFromInt(300),
		model.CategoryHousing:        decimal.NewFromInt(800),
		model.CategoryTransportation: decimal.NewFromInt(150),
		model.CategoryUtilities:      decimal.NewFromInt(200),
		model.CategoryEntertainment:  decimal.NewFromInt(100),
		model.CategoryHealthcare:     decimal.NewFromInt(150),
		model.CategoryShopping:       decimal.NewFromInt(200),
		model.CategoryOther:          decimal.NewFromInt(100),
	}
}
