// Package summary derives the per-month aggregation view. Aggregate is a
// pure function of its inputs; it never mutates the ledger or the budget
// table and is cheap enough to recompute on every call.
package summary

import (
	"github.com/shopspring/decimal"

	"github.com/budgetbook-dev/budgetbook/internal/model"
	"github.com/budgetbook-dev/budgetbook/internal/period"
)

// Status classifies a category's spend against its limit. Display emphasis
// only; no behavior hangs off it.
type Status string

const (
	StatusNormal  Status = "normal"
	StatusWarning Status = "warning"
	StatusOver    Status = "over-budget"
)

// Thresholds are the percentage bounds for status classification. Both
// comparisons are exclusive: spending at exactly the warning percentage is
// still normal, at exactly the over percentage still warning.
type Thresholds struct {
	Warning decimal.Decimal
	Over    decimal.Decimal
}

// DefaultThresholds returns the standard 75/100 bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Warning: decimal.NewFromInt(75),
		Over:    decimal.NewFromInt(100),
	}
}

// Classify returns the status for a spend percentage.
func (t Thresholds) Classify(percentage decimal.Decimal) Status {
	switch {
	case percentage.GreaterThan(t.Over):
		return StatusOver
	case percentage.GreaterThan(t.Warning):
		return StatusWarning
	default:
		return StatusNormal
	}
}

// CategoryLine is one category's spend against its limit for the month.
type CategoryLine struct {
	Category   model.Category
	Spent      decimal.Decimal
	Limit      decimal.Decimal
	Percentage decimal.Decimal
	Status     Status
}

// Month is the aggregation view for a selected period.
type Month struct {
	Period       period.Period
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	Categories   []CategoryLine
}

// Aggregate computes the view for p from the transactions and budget
// table. Categories appear in the fixed enumeration order. A zero limit
// yields a zero percentage regardless of spend.
func Aggregate(txns []model.Transaction, budgets model.Budgets, p period.Period, thresholds Thresholds) Month {
	income := decimal.Zero
	expense := decimal.Zero
	spent := make(map[model.Category]decimal.Decimal)

	for _, t := range txns {
		if !t.InMonth(p.Month, p.Year) {
			continue
		}
		switch t.Kind {
		case model.KindIncome:
			income = income.Add(t.Amount)
		case model.KindExpense:
			expense = expense.Add(t.Amount)
			spent[t.Category] = spent[t.Category].Add(t.Amount)
		}
	}

	lines := make([]CategoryLine, 0, len(model.Categories()))
	for _, c := range model.Categories() {
		limit := budgets[c]
		categorySpent := spent[c]

		percentage := decimal.Zero
		if limit.IsPositive() {
			percentage = categorySpent.Div(limit).Mul(decimal.NewFromInt(100))
		}

		lines = append(lines, CategoryLine{
			Category:   c,
			Spent:      categorySpent,
			Limit:      limit,
			Percentage: percentage,
			Status:     thresholds.Classify(percentage),
		})
	}

	return Month{
		Period:       p,
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		Categories:   lines,
	}
}
