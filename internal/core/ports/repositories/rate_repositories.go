package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// RateReader defines read operations for rate facts
type RateReader interface {
	// FindRatesInRange returns the facts of pair with date in [start, end], ascending by date.
	FindRatesInRange(ctx context.Context, pair string, start, end time.Time) ([]domain.RatePoint, error)

	// FindLatestRate returns the most recent fact of pair, or apperrors.ErrNotFound.
	FindLatestRate(ctx context.Context, pair string) (*domain.RateFact, error)
}

// RateWriter defines write operations for rate facts
type RateWriter interface {
	// UpsertRates inserts or replaces facts keyed by (pair, date) and returns
	// the number of rows inserted or changed.
	UpsertRates(ctx context.Context, facts []domain.RateFact) (int64, error)
}

// RateReporter defines whole-store scans used by maintenance commands
type RateReporter interface {
	// StreamRates calls fn for every fact ordered by pair then date.
	StreamRates(ctx context.Context, fn func(domain.RateFact) error) error

	// Coverage summarises stored facts per pair.
	Coverage(ctx context.Context) ([]domain.PairCoverage, error)
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
	RateReporter
}
