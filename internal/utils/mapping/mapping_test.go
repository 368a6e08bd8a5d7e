package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/models"
	"github.com/SscSPs/fx_rates_app/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
)

func TestToModelRate_TruncatesToDate(t *testing.T) {
	ts := time.Date(2025, 3, 4, 17, 30, 0, 0, time.UTC)

	m := mapping.ToModelRate(domain.RateFact{Pair: "USD_KRW", Date: ts, Rate: 1450})

	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), m.RateDate)
	assert.Equal(t, "USD_KRW", m.Pair)
}

func TestToDomainRatePoints(t *testing.T) {
	loc := time.FixedZone("KST", 9*3600)
	rows := []models.RatePoint{
		{RateDate: time.Date(2025, 1, 2, 0, 0, 0, 0, loc), Rate: 1.5},
		{RateDate: time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC), Rate: 1.6},
	}

	points := mapping.ToDomainRatePoints(rows)

	assert.Len(t, points, 2)
	assert.Equal(t, "2025-01-02", domain.FormatDate(points[0].Date))
	assert.Equal(t, time.UTC, points[0].Date.Location())
	assert.Equal(t, 1.6, points[1].Rate)
}

func TestPairMappingRoundTrip(t *testing.T) {
	p := domain.Pair{ID: "JPY100_KRW", Base: "JPY100", Target: "KRW", Unit: 100, Active: true}

	assert.Equal(t, p, mapping.ToDomainPair(mapping.ToModelPair(p)))
}
