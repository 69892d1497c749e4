// Package config loads service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is read once at startup and treated as immutable.
type Config struct {
	Port           string
	StorageBackend string // memory | sqlite | postgres
	DatabaseURL    string
	SQLitePath     string

	PlacesAPIKey  string
	PlacesBaseURL string // override for tests/staging; empty means the provider default
	RatesBaseURL  string
	FlightsSeed   int64

	RateLimitRPS   float64
	RateLimitBurst int

	ProviderTimeout time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the environment. Only the selected storage backend's settings
// are required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		StorageBackend:  getenv("STORAGE_BACKEND", "memory"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      getenv("SQLITE_PATH", "planner.db"),
		PlacesAPIKey:    os.Getenv("PLACES_API_KEY"),
		PlacesBaseURL:   os.Getenv("PLACES_BASE_URL"),
		RatesBaseURL:    os.Getenv("RATES_BASE_URL"),
		RateLimitRPS:    2,
		RateLimitBurst:  60,
		ProviderTimeout: 10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}

	switch cfg.StorageBackend {
	case "memory", "sqlite":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		cfg.RateLimitRPS = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", v)
		}
		cfg.RateLimitBurst = n
	}
	if v := os.Getenv("PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT %q", v)
		}
		cfg.ProviderTimeout = d
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q", v)
		}
		cfg.ShutdownTimeout = d
	}
	if v := os.Getenv("FLIGHTS_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid FLIGHTS_SEED %q", v)
		}
		cfg.FlightsSeed = n
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
