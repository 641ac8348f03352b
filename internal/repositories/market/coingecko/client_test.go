package coingecko_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/repositories/market/coingecko"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin,ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "thb,usd", r.URL.Query().Get("vs_currencies"))
		assert.Equal(t, "true", r.URL.Query().Get("include_24hr_change"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"ethereum": {"thb": 120000.5, "usd": 3400, "thb_24h_change": 1.5, "usd_24h_change": 1.4},
			"bitcoin": {"thb": 2150000, "usd": 62000, "thb_24h_change": -0.75, "usd_24h_change": -0.8}
		}`))
	}))
	defer srv.Close()

	client := coingecko.NewClient(srv.URL+"/api/v3/", time.Second)
	quotes, err := client.FetchQuotes(context.Background(), []string{"bitcoin", "ethereum"})
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "bitcoin", quotes[0].CoinID)
	assert.True(t, quotes[0].THB.Equal(decimal.NewFromInt(2150000)))
	assert.True(t, quotes[0].THBChange24h.Equal(decimal.RequireFromString("-0.75")))
	assert.True(t, quotes[1].THB.Equal(decimal.RequireFromString("120000.5")))
}

func TestFetchQuotes_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := coingecko.NewClient(srv.URL, time.Second).FetchQuotes(context.Background(), []string{"bitcoin"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Contains(t, err.Error(), "429")
}

func TestFetchQuotes_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := coingecko.NewClient(srv.URL, 20*time.Millisecond).FetchQuotes(context.Background(), []string{"bitcoin"})
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}
