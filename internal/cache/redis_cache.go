package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key written by RedisCache.
const KeyPrefix = "fx:history:"

// RedisCache implements RateCache using Redis.
type RedisCache struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

var _ RateCache = (*RedisCache)(nil)

// NewRedisCache parses a redis:// URL and connects. The connection is pinged
// once so a bad URL fails at start-up.
func NewRedisCache(ctx context.Context, redisURL string, logger *slog.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisCache{client: client, prefix: KeyPrefix, logger: logger}, nil
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

// Get returns (nil, false, nil) on a miss.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return nil, false, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return nil, false, err
	}
	r.logger.Debug("Redis cache hit", "key", key)
	return val, true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
