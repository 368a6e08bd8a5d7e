package sources

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// RateSource is where the query service reads rates from. The mock and the
// store-backed variants are selected once at start-up.
type RateSource interface {
	// FetchHistory returns the rates of pair in [start, end], ascending by date.
	FetchHistory(ctx context.Context, pair string, start, end time.Time) ([]domain.RatePoint, error)

	// FetchLatest returns the most recent rate of pair, or apperrors.ErrNotFound.
	FetchLatest(ctx context.Context, pair string) (*domain.RateFact, error)

	// ListPairs returns the pair definitions to advertise.
	ListPairs(ctx context.Context) ([]domain.Pair, error)
}

// Forecaster is implemented by sources that produce their own forward series.
// Sources without it get the flat carry-forward of FetchLatest.
type Forecaster interface {
	Forecast(ctx context.Context, pair string, horizon int, today time.Time) ([]domain.ForecastPoint, error)
}

// RateFetcher pulls raw rates from the external FX provider. base and target
// are the provider's own codes; one unit of base is quoted in target.
type RateFetcher interface {
	FetchRange(ctx context.Context, base, target string, start, end time.Time) ([]domain.RawRate, error)
}

// AsForecaster returns the Forecaster behind src, looking through wrappers
// that expose Unwrap() RateSource.
func AsForecaster(src RateSource) (Forecaster, bool) {
	for src != nil {
		if f, ok := src.(Forecaster); ok {
			return f, true
		}
		u, ok := src.(interface{ Unwrap() RateSource })
		if !ok {
			return nil, false
		}
		src = u.Unwrap()
	}
	return nil, false
}
