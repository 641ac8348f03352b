package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(rateRepo portsrepo.ExchangeRateRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{rateRepo: rateRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// ListExchangeRates returns the rate table ordered by currency code.
func (s *currencyService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].CurrencyCode < rates[j].CurrencyCode })
	return rates, nil
}
