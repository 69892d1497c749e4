package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/roamplan/travel-planner-api/internal/platform/metrics"
)

// RouterOptions carries the optional middleware wiring. Nil fields are
// skipped, which keeps handler tests free of metrics and rate-limit setup.
type RouterOptions struct {
	Logger      *slog.Logger
	Metrics     *metrics.Collector
	RateLimiter *RateLimiter
}

// NewRouter constructs the API HTTP router. This is intentionally a thin
// adapter: handlers decode and encode, services own the behavior.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if opts.Logger != nil {
		r.Use(NewLoggingMiddleware(opts.Logger))
	}
	if opts.Metrics != nil {
		r.Use(NewMetricsMiddleware(opts.Metrics))
	}
	if opts.RateLimiter != nil {
		r.Use(opts.RateLimiter.Middleware)
	}

	// Health endpoint is deliberately unversioned (used for infra checks).
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		// No session required.
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/logout", s.handleLogout)
		r.Get("/visa", s.handleVisa)
		r.Get("/rates", s.handleRates)

		r.Group(func(r chi.Router) {
			r.Use(s.RequireUser)

			r.Get("/auth/me", s.handleMe)

			r.Get("/itinerary", s.handleListItinerary)
			r.Post("/itinerary", s.handleAddItem)
			r.Delete("/itinerary/{id}", s.handleDeleteItem)

			r.Get("/events", s.handleListEvents)
			r.Put("/events", s.handleReplaceEvents)
			r.Post("/events", s.handleAddEvent)
			r.Delete("/events/{id}", s.handleDeleteEvent)

			r.Get("/budget", s.handleGetBudget)
			r.Put("/budget", s.handleReplaceBudget)
			r.Post("/budget/expenses", s.handleAddExpense)
			r.Get("/budget/summary", s.handleBudgetSummary)

			r.Get("/searches", s.handleListSearches)
			r.Post("/searches", s.handleAddSearch)
			r.Delete("/searches/{term}", s.handleDeleteSearch)

			r.Get("/places", s.handlePlaces)
			r.Get("/geocode", s.handleGeocode)
			r.Get("/flights", s.handleFlights)
		})
	})

	return r
}
