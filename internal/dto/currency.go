package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse is one row of the THB rate table.
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currency_code"`
	RateToTHB    decimal.Decimal `json:"rate_to_thb" swaggertype:"string"`
	CurrencyName string          `json:"currency_name,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(rate domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode: rate.CurrencyCode,
		RateToTHB:    rate.RateToTHB,
		CurrencyName: rate.CurrencyName,
	}
}

// ToListExchangeRateResponse converts the rate table to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToExchangeRateResponse(rate)
	}
	return responses
}
