package models

import "github.com/shopspring/decimal"

// ExchangeRate is a row of the exchange_rates table: the value of one unit of CurrencyCode in THB.
type ExchangeRate struct {
	CurrencyCode string          `db:"currency_code"`
	RateToTHB    decimal.Decimal `db:"rate_to_thb"`
	CurrencyName string          `db:"currency_name"`
}
