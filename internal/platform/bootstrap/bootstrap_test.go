package bootstrap_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SscSPs/fx_rates_app/internal/platform/bootstrap"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuild_MockMode(t *testing.T) {
	cfg := &config.Config{Mock: true, Currencies: []string{"USD", "KRW"}, HomeCurrency: "KRW"}

	rt, err := bootstrap.Build(context.Background(), cfg, quietLogger(), bootstrap.Options{})
	require.NoError(t, err)
	defer rt.Close()

	assert.Nil(t, rt.Pool)
	assert.NotNil(t, rt.Services.Query)
	assert.NotNil(t, rt.Services.Pairs)
	assert.Nil(t, rt.Services.Ingestion)
	assert.Nil(t, rt.Services.Maintenance)

	cat, err := rt.Services.Pairs.ListPairs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"USD", "KRW"}, cat.Currencies)
	assert.Len(t, cat.Pairs, 4)
}

func TestBuild_RequireStoreWithoutURL(t *testing.T) {
	cfg := &config.Config{Mock: true, Currencies: []string{"USD", "KRW"}, HomeCurrency: "KRW"}

	_, err := bootstrap.Build(context.Background(), cfg, quietLogger(), bootstrap.Options{RequireStore: true})
	assert.Error(t, err)
}
