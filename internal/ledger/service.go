// Package ledger maintains the in-memory transaction collection and writes
// it through to the blob store after every successful mutation.
package ledger

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetbook-dev/budgetbook/internal/applog"
	"github.com/budgetbook-dev/budgetbook/internal/id"
	"github.com/budgetbook-dev/budgetbook/internal/model"
	"github.com/budgetbook-dev/budgetbook/internal/storage"
)

// Service owns the transaction collection for a session.
type Service struct {
	store  storage.Store
	log    *applog.Logger
	txns   []model.Transaction
	lastID int64
	now    func() time.Time
}

// NewService creates a ledger Service. Call Load before mutating.
func NewService(store storage.Store, log *applog.Logger) *Service {
	return &Service{
		store: store,
		log:   log.WithComponent("ledger"),
		now:   time.Now,
	}
}

// Load reads the persisted collection from the store. An absent or corrupt
// blob falls back to an empty ledger.
func (s *Service) Load() {
	s.txns = nil
	s.lastID = 0

	data, ok, err := s.store.Get(storage.KeyExpenses)
	if err != nil {
		s.log.Warn("loading transactions failed, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	var txns []model.Transaction
	if err := json.Unmarshal(data, &txns); err != nil {
		s.log.Warn("transactions blob is corrupt, starting empty", "error", err)
		return
	}

	s.txns = txns
	for _, t := range txns {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
}

// AddParams holds the raw fields of an add intent. Amount arrives as text
// and is validated here, mirroring the form input it comes from.
type AddParams struct {
	Description string
	Amount      string
	Category    model.Category
	Kind        model.Kind
	Date        time.Time // zero = now
}

// Add appends a transaction. The description must be non-empty after
// trimming and the amount must parse to a non-negative number; invalid
// input makes the call a silent no-op. Returns the stored record and
// whether the add took effect.
func (s *Service) Add(p AddParams) (model.Transaction, bool) {
	desc := strings.TrimSpace(p.Description)
	if desc == "" {
		return model.Transaction{}, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(p.Amount))
	if err != nil || amount.IsNegative() {
		return model.Transaction{}, false
	}
	if !model.ValidCategory(p.Category) || !model.ValidKind(p.Kind) {
		return model.Transaction{}, false
	}

	date := p.Date
	if date.IsZero() {
		date = s.now()
	}

	txn := model.Transaction{
		ID:          id.Next(s.lastID, date),
		Description: desc,
		Amount:      amount,
		Category:    p.Category,
		Kind:        p.Kind,
		Date:        date,
	}
	s.txns = append(s.txns, txn)
	s.lastID = txn.ID
	s.persist()
	return txn, true
}

// Remove deletes the transaction with the given ID. Removing an absent ID
// is a no-op; the call is idempotent. Returns whether a record was removed.
func (s *Service) Remove(txnID int64) bool {
	for i, t := range s.txns {
		if t.ID == txnID {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			s.persist()
			return true
		}
	}
	return false
}

// UpdateFields holds the fields of an update intent. Nil fields are left
// unchanged on the record.
type UpdateFields struct {
	Description *string
	Amount      *string
	Category    *model.Category
	Kind        *model.Kind
}

// Update merges fields into the record with the given ID. A provided field
// that fails validation makes the whole call a silent no-op, as does an
// absent ID. On success UpdatedAt is set. Returns whether the update took
// effect.
func (s *Service) Update(txnID int64, fields UpdateFields) bool {
	i := s.index(txnID)
	if i < 0 {
		return false
	}
	txn := s.txns[i]

	if fields.Description != nil {
		desc := strings.TrimSpace(*fields.Description)
		if desc == "" {
			return false
		}
		txn.Description = desc
	}
	if fields.Amount != nil {
		amount, err := decimal.NewFromString(strings.TrimSpace(*fields.Amount))
		if err != nil || amount.IsNegative() {
			return false
		}
		txn.Amount = amount
	}
	if fields.Category != nil {
		if !model.ValidCategory(*fields.Category) {
			return false
		}
		txn.Category = *fields.Category
	}
	if fields.Kind != nil {
		if !model.ValidKind(*fields.Kind) {
			return false
		}
		txn.Kind = *fields.Kind
	}

	updated := s.now()
	txn.UpdatedAt = &updated
	s.txns[i] = txn
	s.persist()
	return true
}

// Get returns the transaction with the given ID.
func (s *Service) Get(txnID int64) (model.Transaction, bool) {
	i := s.index(txnID)
	if i < 0 {
		return model.Transaction{}, false
	}
	return s.txns[i], true
}

// Transactions returns a copy of the collection in display order: date
// descending, newest-created first on equal dates.
func (s *Service) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Len returns the number of transactions.
func (s *Service) Len() int {
	return len(s.txns)
}

func (s *Service) index(txnID int64) int {
	for i, t := range s.txns {
		if t.ID == txnID {
			return i
		}
	}
	return -1
}

// persist writes the full collection to the store. Failures are logged and
// swallowed; in-memory state remains the source of truth.
func (s *Service) persist() {
	data, err := json.MarshalIndent(s.txns, "", "  ")
	if err != nil {
		s.log.Warn("marshaling transactions failed", "error", err)
		return
	}
	if err := s.store.Put(storage.KeyExpenses, data); err != nil {
		s.log.Warn("persisting transactions failed", "error", err)
	}
}
