package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// CryptoSvcFacade serves market quotes for the investor view
type CryptoSvcFacade interface {
	// GetQuotes returns THB and USD prices for coinIDs, or the default coins when empty.
	GetQuotes(ctx context.Context, coinIDs []string) ([]domain.CoinQuote, error)
}
