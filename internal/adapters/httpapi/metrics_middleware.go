package httpapi

import (
	"net/http"
	"time"

	"github.com/roamplan/travel-planner-api/internal/platform/metrics"
)

// NewMetricsMiddleware records request counts and latency on the collector.
func NewMetricsMiddleware(c *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			c.RecordRequest(rec.status, time.Since(start))
		})
	}
}
