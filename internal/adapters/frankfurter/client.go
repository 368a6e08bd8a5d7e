// Package frankfurter fetches historical exchange rates from the Frankfurter
// API (https://www.frankfurter.app). The API needs no key.
package frankfurter

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

	"github.com/SscSPs/fx_rates_app/internal/apperrors"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
)

// DefaultBaseURL is the public Frankfurter endpoint.
const DefaultBaseURL = "https://api.frankfurter.app"

// DefaultTimeout bounds each range request.
const DefaultTimeout = 15 * time.Second

// maxErrorBody caps how much of an error response is echoed into the error.
const maxErrorBody = 512

// Client implements sources.RateFetcher against the Frankfurter time series endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ sources.RateFetcher = (*Client)(nil)

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL and a
// non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// timeSeriesResponse is the JSON body of GET /{start}..{end}.
type timeSeriesResponse struct {
	Amount    float64                       `json:"amount"`
	Base      string                        `json:"base"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Rates     map[string]map[string]float64 `json:"rates"`
}

// FetchRange returns the rate of one unit of base in target for every date
// the provider publishes within [start, end], ascending by date. Dates
// without a target quote are skipped.
func (c *Client) FetchRange(ctx context.Context, base, target string, start, end time.Time) ([]domain.RawRate, error) {
	q := url.Values{}
	q.Set("from", base)
	q.Set("to", target)
	reqURL := fmt.Sprintf("%s/%s..%s?%s", c.baseURL, domain.FormatDate(start), domain.FormatDate(end), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("failed to fetch rates", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	var apiResp timeSeriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, apperrors.NewUpstreamError("failed to decode response", err)
	}

	out := make([]domain.RawRate, 0, len(apiResp.Rates))
	for day, quotes := range apiResp.Rates {
		val, ok := quotes[target]
		if !ok {
			continue
		}
		d, err := domain.ParseDate(day)
		if err != nil {
			return nil, apperrors.NewUpstreamError(fmt.Sprintf("unexpected date %q in response", day), err)
		}
		out = append(out, domain.RawRate{Date: d, Value: val})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
