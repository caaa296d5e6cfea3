// Package budget maintains the per-category monthly limits.
package budget

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/budgetbook-dev/budgetbook/internal/applog"
	"github.com/budgetbook-dev/budgetbook/internal/model"
	"github.com/budgetbook-dev/budgetbook/internal/storage"
)

// Service owns the budget table. The category key set is fixed; only limit
// values change. Every successful update is written through to the store.
type Service struct {
	store    storage.Store
	log      *applog.Logger
	defaults model.Budgets
	limits   model.Budgets
}

// NewService creates a budget Service seeded with the given default limits.
func NewService(store storage.Store, defaults model.Budgets, log *applog.Logger) *Service {
	return &Service{
		store:    store,
		log:      log.WithComponent("budget"),
		defaults: defaults.Clone(),
		limits:   defaults.Clone(),
	}
}

// Load reads persisted limits from the store. An absent or corrupt blob
// falls back to the defaults; limits for categories missing from the blob
// are filled from the defaults, unknown categories are dropped.
func (s *Service) Load() {
	s.limits = s.defaults.Clone()

	data, ok, err := s.store.Get(storage.KeyBudgets)
	if err != nil {
		s.log.Warn("loading budgets failed, using defaults", "error", err)
		return
	}
	if !ok {
		return
	}

	var persisted map[model.Category]decimal.Decimal
	if err := json.Unmarshal(data, &persisted); err != nil {
		s.log.Warn("budgets blob is corrupt, using defaults", "error", err)
		return
	}

	for c, limit := range persisted {
		if model.ValidCategory(c) && !limit.IsNegative() {
			s.limits[c] = limit
		}
	}
}

// Limits returns a copy of the current budget table.
func (s *Service) Limits() model.Budgets {
	return s.limits.Clone()
}

// Limit returns the monthly limit for a category.
func (s *Service) Limit(c model.Category) decimal.Decimal {
	return s.limits[c]
}

// SetLimit updates the limit for a category. The value must parse to a
// non-negative number and the category must be in the fixed set; anything
// else is silently rejected. Returns whether the update took effect.
func (s *Service) SetLimit(c model.Category, value string) bool {
	if !model.ValidCategory(c) {
		return false
	}
	limit, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || limit.IsNegative() {
		return false
	}

	s.limits[c] = limit
	s.persist()
	return true
}

// persist writes the full budget table to the store. Failures are logged
// and swallowed; in-memory limits remain the source of truth.
func (s *Service) persist() {
	data, err := json.MarshalIndent(s.limits, "", "  ")
	if err != nil {
		s.log.Warn("marshaling budgets failed", "error", err)
		return
	}
	if err := s.store.Put(storage.KeyBudgets, data); err != nil {
		s.log.Warn("persisting budgets failed", "error", err)
	}
}
