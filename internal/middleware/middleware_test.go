package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var fromCtx *slog.Logger
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		fromCtx = middleware.GetLoggerFromCtx(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	_, err := uuid.Parse(rr.Header().Get(middleware.RequestIDHeader))
	assert.NoError(t, err)
	require.NotNil(t, fromCtx)
	assert.NotSame(t, slog.Default(), fromCtx)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
	assert.Contains(t, buf.String(), `"path":"/ping"`)
	assert.Contains(t, buf.String(), `"status":204`)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	assert.Same(t, l, middleware.GetLoggerFromCtx(middleware.WithLogger(context.Background(), l)))
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS([]string{"https://fx.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://fx.example.com")
	r.ServeHTTP(rr, req)
	assert.Equal(t, "https://fx.example.com", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCORS_Wildcard(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORS([]string{"*"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(rr, req)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
