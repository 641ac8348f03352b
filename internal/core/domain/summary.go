package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Summary aggregates transaction amounts per type.
// Balance is always Income - Expense - Investor.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Investor decimal.Decimal `json:"investor"`
	Balance  decimal.Decimal `json:"balance"`
}

// Simulation is the outcome of a hypothetical expense against the current balance.
type Simulation struct {
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	SimulatedBalance decimal.Decimal `json:"simulatedBalance"`
	Alert            bool            `json:"alert"`
}

// Month is a calendar month used to scope aggregation.
type Month struct {
	Year  int
	Month time.Month
}

const monthLayout = "2006-01"

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (*Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", s, err)
	}
	return &Month{Year: t.Year(), Month: t.Month()}, nil
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Period is the bucket size for a breakdown.
type Period string

const (
	PeriodDay     Period = "day"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// IsValid reports whether p is a known period.
func (p Period) IsValid() bool {
	switch p {
	case PeriodDay, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

// PeriodTotals holds per-type totals for one breakdown bucket.
type PeriodTotals struct {
	Period   string          `json:"period"`
	Income   decimal.Decimal `json:"income"`
	Expense  decimal.Decimal `json:"expense"`
	Investor decimal.Decimal `json:"investor"`
}
