package services_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchHistory(ctx context.Context, pair string, start, end time.Time) ([]domain.RatePoint, error) {
	args := m.Called(ctx, pair, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RatePoint), args.Error(1)
}

func (m *MockRateSource) FetchLatest(ctx context.Context, pair string) (*domain.RateFact, error) {
	args := m.Called(ctx, pair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateFact), args.Error(1)
}

func (m *MockRateSource) ListPairs(ctx context.Context) ([]domain.Pair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pair), args.Error(1)
}

// --- Mock RateFetcher ---
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchRange(ctx context.Context, base, target string, start, end time.Time) ([]domain.RawRate, error) {
	args := m.Called(ctx, base, target, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawRate), args.Error(1)
}

// --- Mock PairWriter ---
type MockPairWriter struct {
	mock.Mock
}

func (m *MockPairWriter) UpsertPairs(ctx context.Context, pairs []domain.Pair) (int, error) {
	args := m.Called(ctx, pairs)
	return args.Int(0), args.Error(1)
}

// --- Mock RateReporter ---
type MockRateReporter struct {
	mock.Mock
	Facts []domain.RateFact
}

func (m *MockRateReporter) StreamRates(ctx context.Context, fn func(domain.RateFact) error) error {
	args := m.Called(ctx)
	for _, f := range m.Facts {
		if err := fn(f); err != nil {
			return err
		}
	}
	return args.Error(0)
}

func (m *MockRateReporter) Coverage(ctx context.Context) ([]domain.PairCoverage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PairCoverage), args.Error(1)
}

// fakeRateStore keeps facts keyed by (pair, date) and counts inserted or
// changed rows the way the SQL upsert does.
type fakeRateStore struct {
	mu    sync.Mutex
	facts map[string]map[time.Time]float64
	calls int
}

func newFakeRateStore() *fakeRateStore {
	return &fakeRateStore{facts: make(map[string]map[time.Time]float64)}
}

func (f *fakeRateStore) UpsertRates(_ context.Context, facts []domain.RateFact) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	var n int64
	for _, fact := range facts {
		byDate, ok := f.facts[fact.Pair]
		if !ok {
			byDate = make(map[time.Time]float64)
			f.facts[fact.Pair] = byDate
		}
		if old, ok := byDate[fact.Date]; ok && old == fact.Rate {
			continue
		}
		byDate[fact.Date] = fact.Rate
		n++
	}
	return n, nil
}

func (f *fakeRateStore) points(pair string) []domain.RatePoint {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.RatePoint, 0, len(f.facts[pair]))
	for d, r := range f.facts[pair] {
		out = append(out, domain.RatePoint{Date: d, Rate: r})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
