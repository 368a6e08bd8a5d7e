// Package datasource provides the RateSource implementations the query
// service reads from: synthetic curves, the PostgreSQL store, and a cached
// wrapper around either.
package datasource

import (
	"context"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/core/mockgen"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
)

// MockSource serves deterministic synthetic rates. It never fails.
type MockSource struct {
	gen   *mockgen.Generator
	vocab *domain.Vocabulary
	home  string
	now   func() time.Time
}

var (
	_ sources.RateSource = (*MockSource)(nil)
	_ sources.Forecaster = (*MockSource)(nil)
)

// NewMockSource creates a MockSource quoting against home.
func NewMockSource(vocab *domain.Vocabulary, home string) *MockSource {
	return &MockSource{
		gen:   mockgen.NewGenerator(vocab, home),
		vocab: vocab,
		home:  home,
		now:   domain.Today,
	}
}

func (m *MockSource) FetchHistory(_ context.Context, pair string, start, end time.Time) ([]domain.RatePoint, error) {
	return m.gen.History(pair, start, end), nil
}

// FetchLatest returns today's point of the history curve.
func (m *MockSource) FetchLatest(_ context.Context, pair string) (*domain.RateFact, error) {
	today := m.now()
	points := m.gen.History(pair, today, today)
	return &domain.RateFact{Pair: pair, Date: today, Rate: points[0].Rate}, nil
}

func (m *MockSource) ListPairs(_ context.Context) ([]domain.Pair, error) {
	return domain.ExamplePairs(m.vocab, m.home), nil
}

func (m *MockSource) Forecast(_ context.Context, pair string, horizon int, today time.Time) ([]domain.ForecastPoint, error) {
	return m.gen.Predict(pair, horizon, today), nil
}
