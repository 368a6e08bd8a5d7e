// Package mockgen produces deterministic synthetic rate curves used when the
// service runs without a live store.
package mockgen

import (
	"math"
	"strings"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	seedModulus      = 37
	homeBaseValue    = 1200.0
	foreignBaseValue = 1.0
	amplitude        = 40.0
	periodDays       = 30.0
	historyTrend     = 0.1
	predictTrend     = 0.12
	predictShift     = 5
	denominatedScale = 0.1
)

// Generator builds synthetic history and prediction series.
type Generator struct {
	vocab *domain.Vocabulary
	home  string
}

// NewGenerator creates a Generator. home is the local quote currency code.
func NewGenerator(vocab *domain.Vocabulary, home string) *Generator {
	return &Generator{vocab: vocab, home: home}
}

// PairSeed is the sum of the pair's code points modulo 37.
func PairSeed(pair string) int {
	sum := 0
	for _, r := range pair {
		sum += int(r)
	}
	return sum % seedModulus
}

// BaseValue anchors the curve: 1200 for pairs quoted in the home currency, 1 otherwise.
func (g *Generator) BaseValue(pair string) float64 {
	if strings.HasSuffix(pair, domain.PairSeparator+g.home) {
		return homeBaseValue
	}
	return foreignBaseValue
}

// History returns one point per calendar day in [start, end], ascending.
// It returns an empty slice when start is after end.
func (g *Generator) History(pair string, start, end time.Time) []domain.RatePoint {
	start, end = domain.Truncate(start), domain.Truncate(end)
	if start.After(end) {
		return []domain.RatePoint{}
	}
	days := domain.DaysBetween(start, end) + 1
	seed := PairSeed(pair)
	base := g.BaseValue(pair)
	scaled := g.denominated(pair)

	points := make([]domain.RatePoint, 0, days)
	for i := 0; i < days; i++ {
		val := curve(base, i+seed, historyTrend*float64(i))
		points = append(points, domain.RatePoint{
			Date: start.AddDate(0, 0, i),
			Rate: finish(val, scaled),
		})
	}
	return points
}

// Predict returns horizon points dated from the day after today.
func (g *Generator) Predict(pair string, horizon int, today time.Time) []domain.ForecastPoint {
	today = domain.Truncate(today)
	seed := PairSeed(pair)
	base := g.BaseValue(pair)
	scaled := g.denominated(pair)

	points := make([]domain.ForecastPoint, 0, max(horizon, 0))
	for i := 1; i <= horizon; i++ {
		idx := i + predictShift
		val := curve(base, idx+seed, predictTrend*float64(idx))
		points = append(points, domain.ForecastPoint{
			Date:  today.AddDate(0, 0, i),
			Value: finish(val, scaled),
		})
	}
	return points
}

// denominated reports whether the pair's base is a multi-unit code quoted in
// the home currency; such curves are scaled down to stay readable.
func (g *Generator) denominated(pair string) bool {
	base, target, err := domain.SplitPair(pair)
	if err != nil {
		return false
	}
	return g.vocab.Factor(base) > 1 && target == g.home
}

func curve(base float64, phase int, trend float64) float64 {
	return base + amplitude*math.Sin(2*math.Pi*float64(phase)/periodDays) + trend
}

func finish(val float64, scaled bool) float64 {
	if scaled {
		val *= denominatedScale
	}
	rounded, _ := decimal.NewFromFloat(val).Round(4).Float64()
	return rounded
}
