// Package bootstrap wires configuration, the store and the services together
// for the server and the CLI.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fx_rates_app/internal/adapters/frankfurter"
	"github.com/SscSPs/fx_rates_app/internal/cache"
	"github.com/SscSPs/fx_rates_app/internal/core/domain"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/core/ports/sources"
	"github.com/SscSPs/fx_rates_app/internal/core/services"
	"github.com/SscSPs/fx_rates_app/internal/datasource"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/SscSPs/fx_rates_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fx_rates_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Options controls what Build sets up.
type Options struct {
	// RequireStore connects to the database even when cfg.Mock is set.
	RequireStore bool
	// Migrate applies pending schema migrations after connecting.
	Migrate bool
}

// Runtime is a fully wired application.
type Runtime struct {
	Config   *config.Config
	Services *portssvc.ServiceContainer
	Pool     *pgxpool.Pool

	redis *cache.RedisCache
}

// Build connects what cfg asks for and returns the wired services. The caller
// must Close the runtime.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*Runtime, error) {
	rt := &Runtime{Config: cfg}
	vocab := domain.NewVocabulary(domain.DefaultCatalog, cfg.Currencies)

	live := !cfg.Mock || opts.RequireStore
	if !live {
		logger.Info("Using mock rate source")
		rt.Services = services.NewServiceContainer(cfg, services.Dependencies{
			Source: datasource.NewMockSource(vocab, cfg.HomeCurrency),
		})
		return rt, nil
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("PGSQL_URL is required for this operation")
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.EnableDBCheck)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	rt.Pool = pool
	logger.Info("Database connection pool established.")

	if opts.Migrate {
		if _, err := database.RunMigrations(cfg.DatabaseURL, cfg.DatabaseName, cfg.MigrationsPath, logger); err != nil {
			rt.Close()
			return nil, err
		}
	}

	repos := pgsql.NewRepositoryProvider(pool)
	var source sources.RateSource = datasource.NewStoreSource(repos.RateRepo, repos.PairRepo)

	if hc := rt.historyCache(ctx, logger); hc != nil {
		source = datasource.NewCachedSource(source, hc, cfg.HistoryCacheTTL)
	}

	rt.Services = services.NewServiceContainer(cfg, services.Dependencies{
		Source:  source,
		Fetcher: frankfurter.NewClient(cfg.FXAPIBaseURL, cfg.FXAPITimeout),
		Repos:   &repos,
	})
	return rt, nil
}

// historyCache picks Redis when REDIS_URL is set and reachable, otherwise an
// in-process cache. A non-positive HISTORY_CACHE_TTL disables caching.
func (r *Runtime) historyCache(ctx context.Context, logger *slog.Logger) cache.RateCache {
	ttl := r.Config.HistoryCacheTTL
	if ttl <= 0 {
		logger.Info("History cache disabled")
		return nil
	}
	if r.Config.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, r.Config.RedisURL, logger)
		if err == nil {
			r.redis = rc
			logger.Info("History cache enabled", slog.String("backend", "redis"), slog.Duration("ttl", ttl))
			return rc
		}
		logger.Warn("Redis unavailable, falling back to in-process history cache", slog.String("error", err.Error()))
	}
	logger.Info("History cache enabled", slog.String("backend", "memory"), slog.Duration("ttl", ttl))
	return cache.NewMemoryCache()
}

// Close releases the pool and the cache connection.
func (r *Runtime) Close() {
	if r.redis != nil {
		_ = r.redis.Close()
	}
	if r.Pool != nil {
		database.ClosePgxPool(r.Pool)
	}
}

