// Package metrics exposes Prometheus collectors for the save path.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "monthbook/internal/errors"
)

// Save outcomes, used as the outcome label.
const (
	OutcomeOK              = "ok"
	OutcomeNoop            = "noop"
	OutcomeInvalid         = "invalid"
	OutcomeReadOnly        = "read_only"
	OutcomeUnknownCategory = "unknown_category"
	OutcomeConflict        = "conflict"
	OutcomeError           = "error"
)

// Metrics holds the collectors and the registry they are registered with.
type Metrics struct {
	registry       *prometheus.Registry
	saveRequests   *prometheus.CounterVec
	saveOperations prometheus.Histogram
	httpDuration   *prometheus.HistogramVec
}

// New creates the collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		saveRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "monthbook",
			Name:      "save_requests_total",
			Help:      "Save requests by outcome.",
		}, []string{"outcome"}),
		saveOperations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "monthbook",
			Name:      "save_operations",
			Help:      "Operations per committed save.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "monthbook",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}

	m.registry.MustRegister(
		m.saveRequests,
		m.saveOperations,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSave records one save request. ops is only observed for
// committed saves.
func (m *Metrics) ObserveSave(outcome string, ops int) {
	if m == nil {
		return
	}
	m.saveRequests.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.saveOperations.Observe(float64(ops))
	}
}

// OutcomeFor maps a save error to its outcome label.
func OutcomeFor(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, apperrors.ErrInvalidInput):
		return OutcomeInvalid
	case errors.Is(err, apperrors.ErrReadOnlyMonth):
		return OutcomeReadOnly
	case errors.Is(err, apperrors.ErrUnknownCategory):
		return OutcomeUnknownCategory
	case errors.Is(err, apperrors.ErrVersionConflict):
		return OutcomeConflict
	default:
		return OutcomeError
	}
}

// Middleware times every request. Unmatched routes share one label value.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
