package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleQuotes() []domain.CoinQuote {
	return []domain.CoinQuote{
		{CoinID: "bitcoin", THB: decimal.NewFromInt(2100000), USD: decimal.NewFromInt(62000)},
	}
}

func TestCryptoService_DefaultsAndCachesQuotes(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockMarketQuoteReader)
	cache := new(MockQuoteCache)
	m, err := metrics.New("crypto_test")
	require.NoError(t, err)

	key := "crypto:quotes:binancecoin,bitcoin,ethereum"
	cache.On("GetQuotes", ctx, key).Return(nil, false, nil).Once()
	upstream.On("FetchQuotes", ctx, []string{"binancecoin", "bitcoin", "ethereum"}).Return(sampleQuotes(), nil).Once()
	cache.On("SetQuotes", ctx, key, sampleQuotes(), 5*time.Minute).Return(nil).Once()

	svc := services.NewCryptoService(upstream, services.WithQuoteCache(cache, 5*time.Minute), services.WithCryptoMetrics(m))
	quotes, err := svc.GetQuotes(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, quotes, 1)

	cache.On("GetQuotes", ctx, key).Return(sampleQuotes(), true, nil).Once()
	_, err = svc.GetQuotes(ctx, []string{" Ethereum", "bitcoin", "binancecoin", "bitcoin"})
	require.NoError(t, err)

	upstream.AssertNumberOfCalls(t, "FetchQuotes", 1)
	cache.AssertExpectations(t)
}

func TestCryptoService_CacheFailureFallsBackToUpstream(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockMarketQuoteReader)
	cache := new(MockQuoteCache)

	cache.On("GetQuotes", ctx, "crypto:quotes:bitcoin").Return(nil, false, errors.New("redis down")).Once()
	upstream.On("FetchQuotes", ctx, []string{"bitcoin"}).Return(sampleQuotes(), nil).Once()
	cache.On("SetQuotes", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

	quotes, err := services.NewCryptoService(upstream, services.WithQuoteCache(cache, time.Minute)).GetQuotes(ctx, []string{"BITCOIN"})
	require.NoError(t, err)
	assert.Equal(t, "bitcoin", quotes[0].CoinID)
}

func TestCryptoService_UpstreamError(t *testing.T) {
	ctx := context.Background()
	upstream := new(MockMarketQuoteReader)
	upstream.On("FetchQuotes", ctx, []string{"bitcoin"}).Return(nil, apperrors.ErrUpstream).Once()

	_, err := services.NewCryptoService(upstream).GetQuotes(ctx, []string{"bitcoin"})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
