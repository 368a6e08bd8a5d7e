package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_ExportCSV(t *testing.T) {
	ctx := context.Background()
	reporter := &MockRateReporter{Facts: []domain.RateFact{
		{Pair: "JPY100_KRW", Date: day("2024-01-02"), Rate: 912.34},
		{Pair: "USD_KRW", Date: day("2024-01-02"), Rate: 1300.5},
	}}
	reporter.On("StreamRates", ctx).Return(nil).Once()

	var buf bytes.Buffer
	n, err := services.NewMaintenanceService(reporter).ExportCSV(ctx, &buf)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "\ufeffpair,date,rate\nJPY100_KRW,2024-01-02,912.34\nUSD_KRW,2024-01-02,1300.5\n", buf.String())
}

func TestMaintenanceService_ExportCSVStreamError(t *testing.T) {
	ctx := context.Background()
	reporter := &MockRateReporter{}
	reporter.On("StreamRates", ctx).Return(errors.New("cursor closed")).Once()

	_, err := services.NewMaintenanceService(reporter).ExportCSV(ctx, &bytes.Buffer{})
	assert.ErrorContains(t, err, "cursor closed")
}

func TestMaintenanceService_Coverage(t *testing.T) {
	ctx := context.Background()
	want := []domain.PairCoverage{{Pair: "USD_KRW", Count: 10, FirstDate: day("2024-01-01"), LastDate: day("2024-01-12"), MissingWeekdays: 0}}
	reporter := &MockRateReporter{}
	reporter.On("Coverage", ctx).Return(want, nil).Once()

	got, err := services.NewMaintenanceService(reporter).Coverage(ctx)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
