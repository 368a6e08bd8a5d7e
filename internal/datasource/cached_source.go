package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/cache"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
)

// CachedSource puts a read-through cache in front of another source's
// history reads. Latest and pair reads go straight through.
type CachedSource struct {
	sources.RateSource
	cache cache.RateCache
	ttl   time.Duration
}

var _ sources.RateSource = (*CachedSource)(nil)

// NewCachedSource wraps inner with c.
func NewCachedSource(inner sources.RateSource, c cache.RateCache, ttl time.Duration) *CachedSource {
	return &CachedSource{RateSource: inner, cache: c, ttl: ttl}
}

// cachedPoint is the cache encoding of a domain.RatePoint.
type cachedPoint struct {
	Date string  `json:"d"`
	Rate float64 `json:"r"`
}

func historyKey(pair string, start, end time.Time) string {
	return fmt.Sprintf("%s:%s:%s", pair, domain.FormatDate(start), domain.FormatDate(end))
}

// FetchHistory serves from the cache when possible. Cache failures are
// logged and fall back to the inner source.
func (c *CachedSource) FetchHistory(ctx context.Context, pair string, start, end time.Time) ([]domain.RatePoint, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	key := historyKey(pair, start, end)

	if raw, ok, err := c.cache.Get(ctx, key); err != nil {
		logger.Warn("History cache read failed", "key", key, "error", err)
	} else if ok {
		if points, err := decodePoints(raw); err == nil {
			return points, nil
		}
		logger.Warn("Discarding undecodable history cache entry", "key", key)
	}

	points, err := c.RateSource.FetchHistory(ctx, pair, start, end)
	if err != nil {
		return nil, err
	}

	if raw, err := encodePoints(points); err == nil {
		if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
			logger.Warn("History cache write failed", "key", key, "error", err)
		}
	}
	return points, nil
}

// Unwrap returns the wrapped source.
func (c *CachedSource) Unwrap() sources.RateSource {
	return c.RateSource
}

func encodePoints(points []domain.RatePoint) ([]byte, error) {
	out := make([]cachedPoint, len(points))
	for i, p := range points {
		out[i] = cachedPoint{Date: domain.FormatDate(p.Date), Rate: p.Rate}
	}
	return json.Marshal(out)
}

func decodePoints(raw []byte) ([]domain.RatePoint, error) {
	var in []cachedPoint
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	points := make([]domain.RatePoint, 0, len(in))
	for _, p := range in {
		d, err := domain.ParseDate(p.Date)
		if err != nil {
			return nil, err
		}
		points = append(points, domain.RatePoint{Date: d, Rate: p.Rate})
	}
	return points, nil
}
