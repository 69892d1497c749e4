// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records HTTP-level metrics against its own registry, so tests
// can run collectors side by side without global registration conflicts.
type Collector struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "planner_http_requests_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "planner_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(c.requests, c.latency)
	return c
}

func (c *Collector) RecordRequest(statusCode int, duration time.Duration) {
	c.requests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.latency.Observe(duration.Seconds())
}

// Handler serves this collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
