package domain

import "github.com/shopspring/decimal"

// DefaultCoinIDs are the coins quoted when the caller does not ask for specific ones.
var DefaultCoinIDs = []string{"bitcoin", "ethereum", "binancecoin"}

// CoinQuote is a market price for one coin in THB and USD.
type CoinQuote struct {
	CoinID       string          `json:"coinID"`
	THB          decimal.Decimal `json:"thb"`
	USD          decimal.Decimal `json:"usd"`
	THBChange24h decimal.Decimal `json:"thb24hChange"`
	USDChange24h decimal.Decimal `json:"usd24hChange"`
}
