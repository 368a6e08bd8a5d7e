package repositories

import (
	"context"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
)

// PairReader defines read operations for pair definitions
type PairReader interface {
	// ListActivePairs returns the pairs flagged active, ordered by id.
	ListActivePairs(ctx context.Context) ([]domain.Pair, error)
}

// PairWriter defines write operations for pair definitions
type PairWriter interface {
	// UpsertPairs inserts or updates pairs by id in one transaction.
	UpsertPairs(ctx context.Context, pairs []domain.Pair) (int, error)
}

// PairRepositoryFacade combines all pair-related repository interfaces
type PairRepositoryFacade interface {
	PairReader
	PairWriter
}
