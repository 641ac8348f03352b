package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CryptoQuotesParams are the query parameters of the quotes endpoint.
type CryptoQuotesParams struct {
	IDs string `form:"ids"`
}

// CoinQuoteResponse mirrors the market provider's per-coin shape.
type CoinQuoteResponse struct {
	THB          decimal.Decimal `json:"thb" swaggertype:"string"`
	USD          decimal.Decimal `json:"usd" swaggertype:"string"`
	THBChange24h decimal.Decimal `json:"thb_24h_change" swaggertype:"string"`
	USDChange24h decimal.Decimal `json:"usd_24h_change" swaggertype:"string"`
}

// ToCoinQuotesResponse keys quotes by coin id.
func ToCoinQuotesResponse(quotes []domain.CoinQuote) map[string]CoinQuoteResponse {
	out := make(map[string]CoinQuoteResponse, len(quotes))
	for _, q := range quotes {
		out[q.CoinID] = CoinQuoteResponse{
			THB:          q.THB,
			USD:          q.USD,
			THBChange24h: q.THBChange24h,
			USDChange24h: q.USDChange24h,
		}
	}
	return out
}
