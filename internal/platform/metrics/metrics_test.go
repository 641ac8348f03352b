package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsAndExposes(t *testing.T) {
	m, err := metrics.New("test")
	require.NoError(t, err)

	m.IncGoalsCompleted()
	m.IncGoalsCompleted()
	m.IncConversion("USD", "THB")
	m.IncQuoteLookup(metrics.CacheHit)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/transactions", http.StatusOK, 15*time.Millisecond)

	count, err := testutil.GatherAndCount(m.Registry(), "test_ledger_savings_goals_completed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "test_ledger_savings_goals_completed_total 2")
	assert.Contains(t, body, `test_ledger_currency_conversions_total{from="USD",to="THB"} 1`)
	assert.Contains(t, body, `test_http_requests_total{method="GET",route="/api/v1/transactions",status="200"} 1`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncGoalsCompleted()
		m.IncConversion("USD", "THB")
		m.IncQuoteLookup(metrics.CacheMiss)
		m.ObserveHTTPRequest(http.MethodGet, "/", http.StatusOK, time.Second)
	})
}
