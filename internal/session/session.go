// Package session ties the ledger, budget table, and month selection into
// the single process-wide owner of application state. It exposes the
// intent surface the presentation layer dispatches into.
package session

import (
	"fmt"
	"time"

	"github.com/budgetbook-dev/budgetbook/internal/applog"
	"github.com/budgetbook-dev/budgetbook/internal/audit"
	"github.com/budgetbook-dev/budgetbook/internal/budget"
	"github.com/budgetbook-dev/budgetbook/internal/config"
	"github.com/budgetbook-dev/budgetbook/internal/ledger"
	"github.com/budgetbook-dev/budgetbook/internal/model"
	"github.com/budgetbook-dev/budgetbook/internal/period"
	"github.com/budgetbook-dev/budgetbook/internal/storage"
	"github.com/budgetbook-dev/budgetbook/internal/summary"
)

// Session owns the ledger, budget table, and selected month for one
// logical user. Mutating intents are no-ops until Load has run, so seed
// defaults can never overwrite persisted state.
type Session struct {
	dataDir    string
	log        *applog.Logger
	ledger     *ledger.Service
	budgets    *budget.Service
	thresholds summary.Thresholds
	selected   period.Period
	loaded     bool
	now        func() time.Time
}

// New creates a Session over the given store. Call Load before dispatching
// intents.
func New(dataDir string, store storage.Store, cfg *config.Config, log *applog.Logger) *Session {
	return &Session{
		dataDir:    dataDir,
		log:        log.WithComponent("session"),
		ledger:     ledger.NewService(store, log),
		budgets:    budget.NewService(store, cfg.BudgetDefaults(), log),
		thresholds: cfg.SummaryThresholds(),
		now:        time.Now,
	}
}

// Load reads persisted state and selects the current month. Absent or
// corrupt blobs fall back to an empty ledger and default limits.
func (s *Session) Load() {
	s.ledger.Load()
	s.budgets.Load()
	s.selected = period.Current(s.now())
	s.loaded = true
}

// Loaded reports whether Load has run.
func (s *Session) Loaded() bool {
	return s.loaded
}

// AddTransaction records a transaction dated now. Returns the stored
// record and whether the intent took effect.
func (s *Session) AddTransaction(description, amount string, category model.Category, kind model.Kind) (model.Transaction, bool) {
	return s.AddTransactionAt(time.Time{}, description, amount, category, kind)
}

// AddTransactionAt records a transaction with an explicit date. Used by
// the CSV importer; a zero date means now.
func (s *Session) AddTransactionAt(date time.Time, description, amount string, category model.Category, kind model.Kind) (model.Transaction, bool) {
	if !s.loaded {
		return model.Transaction{}, false
	}
	txn, ok := s.ledger.Add(ledger.AddParams{
		Description: description,
		Amount:      amount,
		Category:    category,
		Kind:        kind,
		Date:        date,
	})
	if ok {
		s.audit("add", txn.ID, fmt.Sprintf("%s %s %s", txn.Kind, txn.Amount, txn.Description))
	}
	return txn, ok
}

// UpdateTransaction merges fields into an existing transaction.
func (s *Session) UpdateTransaction(txnID int64, fields ledger.UpdateFields) bool {
	if !s.loaded {
		return false
	}
	ok := s.ledger.Update(txnID, fields)
	if ok {
		s.audit("update", txnID, "")
	}
	return ok
}

// DeleteTransaction removes a transaction. Deleting an absent ID is a
// no-op.
func (s *Session) DeleteTransaction(txnID int64) bool {
	if !s.loaded {
		return false
	}
	ok := s.ledger.Remove(txnID)
	if ok {
		s.audit("remove", txnID, "")
	}
	return ok
}

// SetBudget updates a category's monthly limit.
func (s *Session) SetBudget(category model.Category, value string) bool {
	if !s.loaded {
		return false
	}
	ok := s.budgets.SetLimit(category, value)
	if ok {
		s.audit("set-budget", 0, fmt.Sprintf("%s=%s", category, s.budgets.Limit(category)))
	}
	return ok
}

// SelectMonth jumps the selection to an arbitrary month.
func (s *Session) SelectMonth(month time.Month, year int) {
	s.selected = period.Period{Month: month, Year: year}
}

// PrevMonth steps the selection back one month, wrapping across years.
func (s *Session) PrevMonth() period.Period {
	s.selected = s.selected.Prev()
	return s.selected
}

// NextMonth steps the selection forward one month, wrapping across years.
func (s *Session) NextMonth() period.Period {
	s.selected = s.selected.Next()
	return s.selected
}

// Period returns the selected month.
func (s *Session) Period() period.Period {
	return s.selected
}

// Transactions returns all transactions in display order.
func (s *Session) Transactions() []model.Transaction {
	return s.ledger.Transactions()
}

// Transaction returns a single transaction by ID.
func (s *Session) Transaction(txnID int64) (model.Transaction, bool) {
	return s.ledger.Get(txnID)
}

// Budgets returns a copy of the budget table.
func (s *Session) Budgets() model.Budgets {
	return s.budgets.Limits()
}

// Summary computes the aggregation view for the selected month.
func (s *Session) Summary() summary.Month {
	return summary.Aggregate(s.ledger.Transactions(), s.budgets.Limits(), s.selected, s.thresholds)
}

// audit appends one entry to the audit trail. Best-effort: failures are
// logged and never surfaced.
func (s *Session) audit(action string, txnID int64, details string) {
	entry := audit.Entry{
		Timestamp:     s.now(),
		Action:        action,
		TransactionID: txnID,
		Details:       details,
	}
	if err := audit.Append(s.dataDir, []audit.Entry{entry}); err != nil {
		s.log.Warn("writing audit log failed", "error", err)
	}
}
