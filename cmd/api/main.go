package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/roamplan/travel-planner-api/internal/adapters/httpapi"
	memkvstore "github.com/roamplan/travel-planner-api/internal/adapters/memory/kvstore"
	"github.com/roamplan/travel-planner-api/internal/adapters/postgres"
	pgkvstore "github.com/roamplan/travel-planner-api/internal/adapters/postgres/kvstore"
	sqlitekvstore "github.com/roamplan/travel-planner-api/internal/adapters/sqlite/kvstore"
	"github.com/roamplan/travel-planner-api/internal/app/budget"
	"github.com/roamplan/travel-planner-api/internal/app/planner"
	"github.com/roamplan/travel-planner-api/internal/app/searches"
	"github.com/roamplan/travel-planner-api/internal/app/session"
	"github.com/roamplan/travel-planner-api/internal/clients/flights"
	"github.com/roamplan/travel-planner-api/internal/clients/places"
	"github.com/roamplan/travel-planner-api/internal/clients/rates"
	"github.com/roamplan/travel-planner-api/internal/platform/config"
	"github.com/roamplan/travel-planner-api/internal/platform/httpclient"
	"github.com/roamplan/travel-planner-api/internal/platform/metrics"
	kvstoreport "github.com/roamplan/travel-planner-api/internal/ports/out/kvstore"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid config", "err", err)
		os.Exit(1)
	}

	var (
		kv      kvstoreport.Store
		cleanup func()
	)
	switch cfg.StorageBackend {
	case "postgres":
		pool, err := postgres.NewPool(context.Background(), cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			logger.Error("postgres setup failed", "err", err)
			os.Exit(1)
		}
		cleanup = pool.Close
		store := pgkvstore.NewStore(pool)
		if err := store.Migrate(context.Background()); err != nil {
			logger.Error("postgres migration failed", "err", err)
			os.Exit(1)
		}
		kv = store
	case "sqlite":
		store, err := sqlitekvstore.NewStore(cfg.SQLitePath)
		if err != nil {
			logger.Error("sqlite setup failed", "path", cfg.SQLitePath, "err", err)
			os.Exit(1)
		}
		cleanup = func() { _ = store.Close() }
		kv = store
	default:
		kv = memkvstore.NewStore()
	}
	if cleanup != nil {
		defer cleanup()
	}

	outbound := httpclient.NewSafeClient(cfg.ProviderTimeout)
	placesCli := places.NewClient(outbound, cfg.PlacesAPIKey, logger)
	if cfg.PlacesBaseURL != "" {
		placesCli.BaseURL = cfg.PlacesBaseURL
	}
	ratesCli := rates.NewClient(outbound)
	if cfg.RatesBaseURL != "" {
		ratesCli.BaseURL = cfg.RatesBaseURL
	}

	api := httpapi.NewServer(
		session.NewService(kv, logger),
		planner.NewService(kv, logger),
		budget.NewService(kv, logger),
		searches.NewService(kv, logger),
		placesCli,
		flights.NewClient(cfg.FlightsSeed),
		ratesCli,
	)

	limiter := httpapi.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	defer limiter.Stop()

	handler := httpapi.NewRouter(api, httpapi.RouterOptions{
		Logger:      logger,
		Metrics:     metrics.NewCollector(),
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("api listening", "port", cfg.Port, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
