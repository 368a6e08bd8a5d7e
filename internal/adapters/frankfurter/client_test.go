package frankfurter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fx_rates_app/internal/adapters/frankfurter"
	"github.com/SscSPs/fx_rates_app/internal/apperrors"
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

func TestFetchRange_ParsesAndSorts(t *testing.T) {
	var gotPath, gotFrom, gotTo string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"amount": 1.0, "base": "JPY", "start_date": "2024-01-02", "end_date": "2024-01-04",
			"rates": {
				"2024-01-04": {"KRW": 9.05},
				"2024-01-02": {"KRW": 9.21},
				"2024-01-03": {"USD": 0.0069}
			}
		}`))
	}))
	defer srv.Close()

	c := frankfurter.NewClient(srv.URL+"/", time.Second)
	rates, err := c.FetchRange(context.Background(), "JPY", "KRW", mustDate(t, "2024-01-02"), mustDate(t, "2024-01-04"))

	require.NoError(t, err)
	assert.Equal(t, "/2024-01-02..2024-01-04", gotPath)
	assert.Equal(t, "JPY", gotFrom)
	assert.Equal(t, "KRW", gotTo)
	require.Len(t, rates, 2)
	assert.Equal(t, mustDate(t, "2024-01-02"), rates[0].Date)
	assert.Equal(t, 9.21, rates[0].Value)
	assert.Equal(t, mustDate(t, "2024-01-04"), rates[1].Date)
}

func TestFetchRange_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := frankfurter.NewClient(srv.URL, time.Second)
	_, err := c.FetchRange(context.Background(), "XXX", "KRW", mustDate(t, "2024-01-02"), mustDate(t, "2024-01-04"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchRange_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := frankfurter.NewClient(srv.URL, time.Second)
	_, err := c.FetchRange(context.Background(), "USD", "KRW", mustDate(t, "2024-01-02"), mustDate(t, "2024-01-04"))

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestFetchRange_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"rates":{}}`))
	}))
	defer srv.Close()

	c := frankfurter.NewClient(srv.URL, 20*time.Millisecond)
	_, err := c.FetchRange(context.Background(), "USD", "KRW", mustDate(t, "2024-01-02"), mustDate(t, "2024-01-04"))

	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestFetchRange_EmptyRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":1,"base":"USD","rates":{}}`))
	}))
	defer srv.Close()

	c := frankfurter.NewClient(srv.URL, time.Second)
	rates, err := c.FetchRange(context.Background(), "USD", "KRW", mustDate(t, "2024-01-06"), mustDate(t, "2024-01-07"))

	require.NoError(t, err)
	assert.Empty(t, rates)
}
