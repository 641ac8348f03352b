package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PivotCurrency is the currency every rate is expressed against.
const PivotCurrency = "THB"

// ExchangeRate is the value of one unit of CurrencyCode in THB.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"`
	RateToTHB    decimal.Decimal `json:"rateToTHB"`
	CurrencyName string          `json:"currencyName"`
}

// RateTable indexes rates by upper-case currency code.
type RateTable map[string]decimal.Decimal

// NewRateTable builds a RateTable from a list of rates.
func NewRateTable(rates []ExchangeRate) RateTable {
	table := make(RateTable, len(rates))
	for _, r := range rates {
		table[strings.ToUpper(r.CurrencyCode)] = r.RateToTHB
	}
	return table
}

// Rate looks up a usable (positive) rate for code.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	rate, ok := t[strings.ToUpper(code)]
	if !ok || !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}
