package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/fx_rates_app/internal/handlers"
	"github.com/SscSPs/fx_rates_app/internal/middleware"
	"github.com/SscSPs/fx_rates_app/internal/platform/bootstrap"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title FX Rates API
// @version 1.0
// @description Historical and projected currency pair rates.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rt, err := bootstrap.Build(context.Background(), cfg, logger, bootstrap.Options{Migrate: true})
	if err != nil {
		logger.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer rt.Close()

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.AllowedOrigins))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, rt.Services, middleware.RateLimit(rateLimiter))

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("mock", cfg.Mock))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		rt.Close()
		os.Exit(1)
	}
}
