package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the direction of a transaction.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ValidKind reports whether k is a known transaction kind.
func ValidKind(k Kind) bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single ledger record. Amount is always a non-negative
// magnitude; direction is carried by Kind, never by the sign.
type Transaction struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Kind        Kind            `json:"kind"`
	Date        time.Time       `json:"date"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}

// InMonth reports whether the transaction's date falls in the given month.
func (t Transaction) InMonth(month time.Month, year int) bool {
	return t.Date.Year() == year && t.Date.Month() == month
}
