package services

import (
	"context"
	"io"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// HistorySvc serves historical rate queries
type HistorySvc interface {
	// GetHistory validates the YYYY-MM-DD range and returns the rates of pair within it.
	GetHistory(ctx context.Context, pair, start, end string) (*domain.History, error)
}

// PredictSvc serves forward projections
type PredictSvc interface {
	// Predict returns horizon daily values starting tomorrow.
	Predict(ctx context.Context, pair string, horizon int) (*domain.Prediction, error)
}

// QuerySvcFacade combines the read-side query interfaces
type QuerySvcFacade interface {
	HistorySvc
	PredictSvc
}

// PairSvcFacade lists and seeds pair definitions
type PairSvcFacade interface {
	// ListPairs returns the active vocabulary and the advertised pairs.
	ListPairs(ctx context.Context) (*domain.PairCatalog, error)

	// SeedPairs upserts the default pair definitions and returns how many were written.
	SeedPairs(ctx context.Context) (int, error)
}

// IngestionSvcFacade populates the rate store from the external provider
type IngestionSvcFacade interface {
	// IngestPair fetches, rescales and upserts one pair over [start, end].
	IngestPair(ctx context.Context, pair string, start, end time.Time) (int64, error)

	// IngestAll runs IngestPair for every ordered pair of the vocabulary, one year chunk at a time.
	IngestAll(ctx context.Context, span domain.DateSpan) (*domain.IngestReport, error)
}

// MaintenanceSvcFacade exposes whole-store reports
type MaintenanceSvcFacade interface {
	// ExportCSV writes every rate fact to w and returns the number of rows written.
	ExportCSV(ctx context.Context, w io.Writer) (int64, error)

	// Coverage returns per-pair counts, date bounds and missing weekdays.
	Coverage(ctx context.Context) ([]domain.PairCoverage, error)
}
