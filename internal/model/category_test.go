package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidCategory(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory("vacation"))
	assert.False(t, ValidCategory(""))
}

func TestValidKind(t *testing.T) {
	assert.True(t, ValidKind(KindIncome))
	assert.True(t, ValidKind(KindExpense))
	assert.False(t, ValidKind("transfer"))
}

func TestBudgetsClone(t *testing.T) {
	b := Budgets{CategoryFood: decimal.NewFromInt(300)}

	clone := b.Clone()
	clone[CategoryFood] = decimal.NewFromInt(900)

	assert.True(t, b[CategoryFood].Equal(decimal.NewFromInt(300)))
}

func TestInMonth(t *testing.T) {
	txn := Transaction{Date: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)}

	assert.True(t, txn.InMonth(time.March, 2024))
	assert.False(t, txn.InMonth(time.April, 2024))
	assert.False(t, txn.InMonth(time.March, 2023))
}
