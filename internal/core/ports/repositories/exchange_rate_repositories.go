package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ExchangeRateReader defines read operations for the THB rate table
type ExchangeRateReader interface {
	// ListExchangeRates retrieves the full rate table.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// FindExchangeRate retrieves the rate of a single currency.
	FindExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade is the rate table surface used by services.
// The table is seeded by migrations and is read-only at runtime.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
}
