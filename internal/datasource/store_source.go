package datasource

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
)

// StoreSource reads from the persisted rate store.
type StoreSource struct {
	rates portsrepo.RateReader
	pairs portsrepo.PairReader
}

var _ sources.RateSource = (*StoreSource)(nil)

// NewStoreSource creates a StoreSource.
func NewStoreSource(rates portsrepo.RateReader, pairs portsrepo.PairReader) *StoreSource {
	return &StoreSource{rates: rates, pairs: pairs}
}

func (s *StoreSource) FetchHistory(ctx context.Context, pair string, start, end time.Time) ([]domain.RatePoint, error) {
	points, err := s.rates.FindRatesInRange(ctx, pair, start, end)
	if err != nil {
		return nil, err
	}
	if points == nil {
		points = []domain.RatePoint{}
	}
	return points, nil
}

func (s *StoreSource) FetchLatest(ctx context.Context, pair string) (*domain.RateFact, error) {
	return s.rates.FindLatestRate(ctx, pair)
}

func (s *StoreSource) ListPairs(ctx context.Context) ([]domain.Pair, error) {
	pairs, err := s.pairs.ListActivePairs(ctx)
	if err != nil {
		return nil, err
	}
	if pairs == nil {
		pairs = []domain.Pair{}
	}
	return pairs, nil
}
