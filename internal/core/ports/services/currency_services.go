package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// CurrencySvcFacade exposes the THB rate table
type CurrencySvcFacade interface {
	// ListExchangeRates retrieves every known currency with its rate to THB.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}
