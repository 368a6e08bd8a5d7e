package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Mock           bool
	DatabaseURL    string `validate:"required_if=Mock false"`
	DatabaseName   string
	Port           string `validate:"required,numeric"`
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string `validate:"required"`
	AllowedOrigins []string

	// External rate provider
	FXAPIBaseURL string        `validate:"required,url"`
	FXAPITimeout time.Duration `validate:"gt=0"`

	// Currency vocabulary
	Currencies   []string `validate:"min=2,dive,required,uppercase"`
	HomeCurrency string   `validate:"required,uppercase"`

	// Optional history cache
	RedisURL        string `validate:"omitempty,url"`
	HistoryCacheTTL time.Duration

	RateLimit string `validate:"required"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("MOCK", true)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("DB_NAME", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("FX_API_BASE_URL", "https://api.frankfurter.app")
	v.SetDefault("FX_API_TIMEOUT", "15s")
	v.SetDefault("CURRENCIES", "USD,EUR,CNY,JPY100,ISK,RUB,KRW")
	v.SetDefault("HOME_CURRENCY", "KRW")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("HISTORY_CACHE_TTL", "10m")
	v.SetDefault("RATE_LIMIT", "120-M")

	v.AutomaticEnv()

	cfg := &Config{
		Mock:           v.GetBool("MOCK"),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		DatabaseName:   v.GetString("DB_NAME"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		AllowedOrigins: splitList(v.GetString("ALLOWED_ORIGINS")),
		FXAPIBaseURL:   strings.TrimRight(v.GetString("FX_API_BASE_URL"), "/"),
		Currencies:     splitList(strings.ToUpper(v.GetString("CURRENCIES"))),
		HomeCurrency:   strings.ToUpper(strings.TrimSpace(v.GetString("HOME_CURRENCY"))),
		RedisURL:       v.GetString("REDIS_URL"),
		RateLimit:      v.GetString("RATE_LIMIT"),
	}

	cfg.FXAPITimeout = durationOr(v.GetString("FX_API_TIMEOUT"), 15*time.Second, "FX_API_TIMEOUT")
	cfg.HistoryCacheTTL = durationOr(v.GetString("HISTORY_CACHE_TTL"), 10*time.Minute, "HISTORY_CACHE_TTL")

	if cfg.Mock {
		log.Println("Info: MOCK mode enabled, serving synthetic rates.")
	} else if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// splitList splits a comma separated value, trimming blanks.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func durationOr(raw string, fallback time.Duration, key string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
