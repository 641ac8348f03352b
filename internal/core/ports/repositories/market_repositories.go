package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// MarketQuoteReader fetches live coin prices from a market data provider.
type MarketQuoteReader interface {
	FetchQuotes(ctx context.Context, coinIDs []string) ([]domain.CoinQuote, error)
}

// QuoteCache stores recently fetched quotes.
type QuoteCache interface {
	// GetQuotes returns the cached quotes for key and whether they were present.
	GetQuotes(ctx context.Context, key string) ([]domain.CoinQuote, bool, error)

	// SetQuotes caches quotes under key for ttl.
	SetQuotes(ctx context.Context, key string, quotes []domain.CoinQuote, ttl time.Duration) error
}
