package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/budgetbook-dev/budgetbook/internal/model"
)

// SimpleParser parses the plain budgetbook CSV format:
// date,description,amount,category,kind with ISO dates.
type SimpleParser struct{}

const (
	simpleDateFormat = "2006-01-02"
	simpleNumFields  = 5
	simpleColDate    = 0
	simpleColDesc    = 1
	simpleColAmount  = 2
	simpleColCat     = 3
	simpleColKind    = 4
)

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads a simple CSV and returns Rows. Malformed CSV structure or an
// unparseable date is an error; semantic validation of the remaining
// fields is left to the add gate.
func (p *SimpleParser) Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = simpleNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading simple CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip the first row only when it is a header (its date column does
	// not parse as a date), so a headerless file keeps its first row.
	start := 0
	if _, err := time.Parse(simpleDateFormat, records[0][simpleColDate]); err != nil {
		start = 1
	}

	var rows []Row
	for i, rec := range records[start:] {
		row, err := parseSimpleRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+start+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseSimpleRow(rec []string) (Row, error) {
	date, err := time.Parse(simpleDateFormat, rec[simpleColDate])
	if err != nil {
		return Row{}, fmt.Errorf("parsing date %q: %w", rec[simpleColDate], err)
	}

	return Row{
		Date:        date,
		Description: rec[simpleColDesc],
		Amount:      rec[simpleColAmount],
		Category:    model.Category(rec[simpleColCat]),
		Kind:        model.Kind(rec[simpleColKind]),
	}, nil
}
