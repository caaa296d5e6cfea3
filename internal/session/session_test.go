package session

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetbook-dev/budgetbook/internal/applog"
	"github.com/budgetbook-dev/budgetbook/internal/audit"
	"github.com/budgetbook-dev/budgetbook/internal/config"
	"github.com/budgetbook-dev/budgetbook/internal/ledger"
	"github.com/budgetbook-dev/budgetbook/internal/model"
	"github.com/budgetbook-dev/budgetbook/internal/period"
	"github.com/budgetbook-dev/budgetbook/internal/storage"
	"github.com/budgetbook-dev/budgetbook/internal/summary"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newSession(t *testing.T) *Session {
	t.Helper()
	dir := t.TempDir()
	sess := New(dir, storage.NewFileStore(dir+"/data"), config.Default(), applog.Discard())
	sess.now = func() time.Time { return testNow }
	sess.Load()
	return sess
}

func TestMutationsBeforeLoadAreNoOps(t *testing.T) {
	dir := t.TempDir()
	sess := New(dir, storage.NewFileStore(dir+"/data"), config.Default(), applog.Discard())

	_, ok := sess.AddTransaction("Rent", "800", model.CategoryHousing, model.KindExpense)
	assert.False(t, ok)
	assert.False(t, sess.SetBudget(model.CategoryFood, "500"))
	assert.False(t, sess.DeleteTransaction(1))
	assert.False(t, sess.Loaded())

	sess.Load()
	assert.True(t, sess.Loaded())
	_, ok = sess.AddTransaction("Rent", "800", model.CategoryHousing, model.KindExpense)
	assert.True(t, ok)
}

func TestLoadSelectsCurrentMonth(t *testing.T) {
	sess := newSession(t)
	assert.Equal(t, period.Period{Month: time.March, Year: 2024}, sess.Period())
}

func TestAddAndSummarize(t *testing.T) {
	sess := newSession(t)

	_, ok := sess.AddTransaction("Salary", "2000", model.CategoryOther, model.KindIncome)
	require.True(t, ok)
	_, ok = sess.AddTransaction("Groceries", "500", model.CategoryFood, model.KindExpense)
	require.True(t, ok)

	m := sess.Summary()
	assert.True(t, m.TotalIncome.Equal(dec("2000")))
	assert.True(t, m.TotalExpense.Equal(dec("500")))
	assert.True(t, m.Balance.Equal(dec("1500")))
}

func TestRentScenario(t *testing.T) {
	sess := newSession(t)

	_, ok := sess.AddTransaction("Rent", "800", model.CategoryHousing, model.KindExpense)
	require.True(t, ok)

	m := sess.Summary()
	found := false
	for _, l := range m.Categories {
		if l.Category != model.CategoryHousing {
			continue
		}
		found = true
		assert.True(t, l.Spent.Equal(dec("800")))
		assert.True(t, l.Percentage.Equal(dec("100")))
		assert.Equal(t, summary.StatusWarning, l.Status)
	}
	require.True(t, found)
}

func TestMonthNavigation(t *testing.T) {
	sess := newSession(t)
	sess.SelectMonth(time.January, 2024)

	got := sess.PrevMonth()
	assert.Equal(t, period.Period{Month: time.December, Year: 2023}, got)

	sess.SelectMonth(time.December, 2024)
	got = sess.NextMonth()
	assert.Equal(t, period.Period{Month: time.January, Year: 2025}, got)
}

func TestSummaryFollowsSelectedMonth(t *testing.T) {
	sess := newSession(t)

	_, ok := sess.AddTransaction("Rent", "800", model.CategoryHousing, model.KindExpense)
	require.True(t, ok)

	sess.SelectMonth(time.April, 2024)
	assert.True(t, sess.Summary().TotalExpense.IsZero(), "transaction is dated March")

	sess.SelectMonth(time.March, 2024)
	assert.True(t, sess.Summary().TotalExpense.Equal(dec("800")))
}

func TestSetBudgetReflectedInSummary(t *testing.T) {
	sess := newSession(t)

	require.True(t, sess.SetBudget(model.CategoryFood, "1000"))
	_, ok := sess.AddTransaction("Groceries", "500", model.CategoryFood, model.KindExpense)
	require.True(t, ok)

	for _, l := range sess.Summary().Categories {
		if l.Category == model.CategoryFood {
			assert.True(t, l.Limit.Equal(dec("1000")))
			assert.True(t, l.Percentage.Equal(dec("50")))
		}
	}
}

func TestIntentsAreAudited(t *testing.T) {
	dir := t.TempDir()
	sess := New(dir, storage.NewFileStore(dir+"/data"), config.Default(), applog.Discard())
	sess.now = func() time.Time { return testNow }
	sess.Load()

	txn, ok := sess.AddTransaction("Rent", "800", model.CategoryHousing, model.KindExpense)
	require.True(t, ok)
	require.True(t, sess.SetBudget(model.CategoryFood, "500"))
	require.True(t, sess.DeleteTransaction(txn.ID))

	entries, err := audit.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "add", entries[0].Action)
	assert.Equal(t, txn.ID, entries[0].TransactionID)
	assert.Equal(t, "set-budget", entries[1].Action)
	assert.Equal(t, "remove", entries[2].Action)
}

func TestRejectedIntentsAreNotAudited(t *testing.T) {
	dir := t.TempDir()
	sess := New(dir, storage.NewFileStore(dir+"/data"), config.Default(), applog.Discard())
	sess.Load()

	_, ok := sess.AddTransaction("", "800", model.CategoryHousing, model.KindExpense)
	assert.False(t, ok)

	entries, err := audit.Read(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStatePersistsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewFileStore(dir + "/data")

	first := New(dir, store, config.Default(), applog.Discard())
	first.now = func() time.Time { return testNow }
	first.Load()
	txn, ok := first.AddTransaction("Rent", "800", model.CategoryHousing, model.KindExpense)
	require.True(t, ok)
	require.True(t, first.SetBudget(model.CategoryFood, "450"))

	second := New(dir, store, config.Default(), applog.Discard())
	second.now = func() time.Time { return testNow }
	second.Load()

	got, found := second.Transaction(txn.ID)
	require.True(t, found)
	assert.Equal(t, "Rent", got.Description)
	assert.True(t, second.Budgets()[model.CategoryFood].Equal(dec("450")))
}

func TestUpdateTransactionIntent(t *testing.T) {
	sess := newSession(t)
	txn, ok := sess.AddTransaction("Rent", "800", model.CategoryHousing, model.KindExpense)
	require.True(t, ok)

	amount := "825"
	require.True(t, sess.UpdateTransaction(txn.ID, ledger.UpdateFields{Amount: &amount}))

	got, found := sess.Transaction(txn.ID)
	require.True(t, found)
	assert.True(t, got.Amount.Equal(dec("825")))
	require.NotNil(t, got.UpdatedAt)
}
