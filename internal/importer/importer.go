// Package importer reads transaction CSV files into the ledger.
package importer

import (
	"io"
	"strings"
	"time"

	"github.com/budgetbook-dev/budgetbook/internal/model"
	"github.com/budgetbook-dev/budgetbook/internal/session"
)

// Row is one parsed CSV line. Amount stays textual so imported rows pass
// through the same validation gate as interactive adds.
type Row struct {
	Date        time.Time
	Description string
	Amount      string
	Category    model.Category
	Kind        model.Kind
}

// Parser converts a CSV file into Rows.
type Parser interface {
	Parse(r io.Reader) ([]Row, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&SimpleParser{})
	return r
}

// Import parses r and dispatches each row as an add intent. Rows rejected
// by the ledger's validation gate are skipped, not fatal. Returns counts
// of added and skipped rows.
func Import(sess *session.Session, p Parser, r io.Reader) (added, skipped int, err error) {
	rows, err := p.Parse(r)
	if err != nil {
		return 0, 0, err
	}

	for _, row := range rows {
		if _, ok := sess.AddTransactionAt(row.Date, row.Description, row.Amount, row.Category, row.Kind); ok {
			added++
		} else {
			skipped++
		}
	}
	return added, skipped, nil
}
