package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
)

const quoteCacheKeyPrefix = "crypto:quotes:"

type cryptoService struct {
	BaseService
	quotes   portsrepo.MarketQuoteReader
	cache    portsrepo.QuoteCache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
}

// CryptoServiceOption is a functional option for configuring the crypto service
type CryptoServiceOption func(*cryptoService)

// WithQuoteCache caches upstream quotes for ttl. A nil cache disables caching.
func WithQuoteCache(cache portsrepo.QuoteCache, ttl time.Duration) CryptoServiceOption {
	return func(s *cryptoService) {
		s.cache = cache
		s.cacheTTL = ttl
	}
}

// WithCryptoMetrics records cache hits and misses on m
func WithCryptoMetrics(m *metrics.Metrics) CryptoServiceOption {
	return func(s *cryptoService) {
		s.metrics = m
	}
}

// NewCryptoService creates a new crypto quote service
func NewCryptoService(quotes portsrepo.MarketQuoteReader, options ...CryptoServiceOption) portssvc.CryptoSvcFacade {
	svc := &cryptoService{quotes: quotes}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CryptoSvcFacade = (*cryptoService)(nil)

// normalizeCoinIDs lowercases, dedupes and sorts ids so equal requests share a cache entry.
func normalizeCoinIDs(coinIDs []string) []string {
	seen := make(map[string]struct{}, len(coinIDs))
	out := make([]string, 0, len(coinIDs))
	for _, id := range coinIDs {
		id = strings.ToLower(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		out = append(out, domain.DefaultCoinIDs...)
	}
	sort.Strings(out)
	return out
}

func (s *cryptoService) GetQuotes(ctx context.Context, coinIDs []string) ([]domain.CoinQuote, error) {
	ids := normalizeCoinIDs(coinIDs)
	key := quoteCacheKeyPrefix + strings.Join(ids, ",")

	if s.cache != nil {
		cached, ok, err := s.cache.GetQuotes(ctx, key)
		switch {
		case err != nil:
			s.LogWarn(ctx, "Quote cache read failed", slog.String("error", err.Error()))
		case ok:
			s.metrics.IncQuoteLookup(metrics.CacheHit)
			return cached, nil
		}
		s.metrics.IncQuoteLookup(metrics.CacheMiss)
	}

	quotes, err := s.quotes.FetchQuotes(ctx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch market quotes", slog.String("ids", strings.Join(ids, ",")))
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetQuotes(ctx, key, quotes, s.cacheTTL); err != nil {
			s.LogWarn(ctx, "Quote cache write failed", slog.String("error", err.Error()))
		}
	}
	return quotes, nil
}
