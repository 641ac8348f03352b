package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const (
	simplePricePath = "/simple/price"
	maxErrorBody    = 512
)

// Client fetches spot prices from the CoinGecko public API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a CoinGecko client rooted at baseURL (e.g. https://api.coingecko.com/api/v3).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

var _ portsrepo.MarketQuoteReader = (*Client)(nil)

// priceEntry is one coin in a /simple/price response.
type priceEntry struct {
	THB          decimal.Decimal `json:"thb"`
	USD          decimal.Decimal `json:"usd"`
	THBChange24h decimal.Decimal `json:"thb_24h_change"`
	USDChange24h decimal.Decimal `json:"usd_24h_change"`
}

// FetchQuotes returns quotes ordered by coin id. Ids unknown to CoinGecko are omitted.
func (c *Client) FetchQuotes(ctx context.Context, coinIDs []string) ([]domain.CoinQuote, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(coinIDs, ","))
	q.Set("vs_currencies", "thb,usd")
	q.Set("include_24hr_change", "true")
	endpoint := c.baseURL + simplePricePath + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coingecko request failed: %w: %w", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("coingecko returned status %d: %s: %w", resp.StatusCode, strings.TrimSpace(string(body)), apperrors.ErrUpstream)
	}

	var payload map[string]priceEntry
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode coingecko response: %w: %w", apperrors.ErrUpstream, err)
	}

	quotes := make([]domain.CoinQuote, 0, len(payload))
	for id, p := range payload {
		quotes = append(quotes, domain.CoinQuote{
			CoinID:       id,
			THB:          p.THB,
			USD:          p.USD,
			THBChange24h: p.THBChange24h,
			USDChange24h: p.USDChange24h,
		})
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].CoinID < quotes[j].CoinID })
	return quotes, nil
}
