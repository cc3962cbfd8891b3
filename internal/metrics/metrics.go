// Package metrics exposes Prometheus collectors for page renders and HTTP
// traffic.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render outcomes.
const (
	OutcomePage     = "page"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

var (
	// RendersTotal counts shell renders by outcome.
	RendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frame_renders_total",
		Help: "Total number of shell renders by outcome",
	}, []string{"outcome"})

	// RenderDuration tracks the time spent rendering a document.
	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "frame_render_duration_seconds",
		Help:    "Time spent rendering the shell for a path",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})

	// HTTPRequestsTotal counts served requests by method and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "frame_http_requests_total",
		Help: "Total number of HTTP requests by method and status code",
	}, []string{"method", "code"})

	// HTTPRequestDuration tracks request latency by method.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "frame_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)

// ObserveRender records one render.
func ObserveRender(outcome string, d time.Duration) {
	RendersTotal.WithLabelValues(outcome).Inc()
	RenderDuration.Observe(d.Seconds())
}

// ObserveRequest records one HTTP request.
func ObserveRequest(method string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(d.Seconds())
}
