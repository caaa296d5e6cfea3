// Package period models the month selection.
package period

import (
	"fmt"
	"time"
)

// Period is a selected (month, year). The zero value is not valid; use
// Current or construct both fields explicitly.
type Period struct {
	Month time.Month
	Year  int
}

// Current returns the period containing now.
func Current(now time.Time) Period {
	return Period{Month: now.Month(), Year: now.Year()}
}

// Prev returns the preceding month, wrapping from January into December of
// the previous year. There are no bounds beyond calendar wraparound.
func (p Period) Prev() Period {
	if p.Month == time.January {
		return Period{Month: time.December, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

// Next returns the following month, wrapping from December into January of
// the next year.
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Month: time.January, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return t.Year() == p.Year && t.Month() == p.Month
}

// String formats the period as "2024-03".
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}
