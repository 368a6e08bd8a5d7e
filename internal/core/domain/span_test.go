package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestYearChunks(t *testing.T) {
	chunks := domain.YearChunks(mustDate(t, "2020-06-15"), mustDate(t, "2022-02-01"))

	got := make([]string, len(chunks))
	for i, c := range chunks {
		got[i] = c.String()
	}
	assert.Equal(t, []string{
		"2020-06-15..2020-12-31",
		"2021-01-01..2021-12-31",
		"2022-01-01..2022-02-01",
	}, got)
}

func TestYearChunks_SingleDayAndInverted(t *testing.T) {
	d := mustDate(t, "2024-12-31")
	chunks := domain.YearChunks(d, d)
	require.Len(t, chunks, 1)
	assert.Equal(t, "2024-12-31..2024-12-31", chunks[0].String())

	assert.Empty(t, domain.YearChunks(mustDate(t, "2025-01-02"), mustDate(t, "2025-01-01")))
}

func TestTenYearSpan(t *testing.T) {
	span := domain.TenYearSpan(mustDate(t, "2025-09-01"))
	assert.Equal(t, "2015-09-01..2025-09-01", span.String())
}

func TestTenYearSpan_LeapDayFallsBackToFixedDays(t *testing.T) {
	end := mustDate(t, "2024-02-29")
	span := domain.TenYearSpan(end)

	assert.Equal(t, end.AddDate(0, 0, -3650), span.Start)
	assert.Equal(t, "2014-03-03", domain.FormatDate(span.Start))
	assert.Equal(t, end, span.End)
}

func TestYearsBack(t *testing.T) {
	_, ok := domain.YearsBack(mustDate(t, "2024-02-29"), 1)
	assert.False(t, ok)

	d, ok := domain.YearsBack(mustDate(t, "2024-02-29"), 4)
	assert.True(t, ok)
	assert.Equal(t, "2020-02-29", domain.FormatDate(d))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 9, domain.DaysBetween(mustDate(t, "2025-01-01"), mustDate(t, "2025-01-10")))
	assert.Equal(t, -9, domain.DaysBetween(mustDate(t, "2025-01-10"), mustDate(t, "2025-01-01")))
	// Time of day is ignored.
	late := mustDate(t, "2025-01-01").Add(23 * time.Hour)
	assert.Equal(t, 1, domain.DaysBetween(late, mustDate(t, "2025-01-02")))
}

func TestRatePoint_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(domain.History{
		Pair: "USD_KRW",
		Data: []domain.RatePoint{{Date: mustDate(t, "2025-01-02"), Rate: 1450.5}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pair":"USD_KRW","data":[{"date":"2025-01-02","rate":1450.5}]}`, string(b))

	b, err = json.Marshal(domain.ForecastPoint{Date: mustDate(t, "2025-01-03"), Value: 1.25})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-01-03","value":1.25}`, string(b))
}
