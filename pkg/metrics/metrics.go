// Package metrics exports layout and HTTP instrumentation to Prometheus.
//
// A [Registry] owns its own prometheus.Registry, so tests and embedded uses
// never collide with the global default registerer. Install it into the
// observability hooks to start collecting:
//
//	reg := metrics.NewRegistry()
//	reg.Install()
//	http.Handle("/metrics", reg.Handler())
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/nodescape/pkg/errors"
	"github.com/matzehuels/nodescape/pkg/observability"
)

const namespace = "nodescape"

// Registry holds all nodescape metrics.
type Registry struct {
	registry *prometheus.Registry

	// Layout metrics
	LayoutsTotal    *prometheus.CounterVec
	LayoutDuration  *prometheus.HistogramVec
	LayoutNodes     *prometheus.HistogramVec
	LayoutsInFlight prometheus.Gauge

	// Solver metrics
	SolverIterations *prometheus.HistogramVec
	SolverConverged  *prometheus.CounterVec
	EdgesDropped     prometheus.Counter

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initLayoutMetrics()
	r.initHTTPMetrics()
	return r
}

func (r *Registry) initLayoutMetrics() {
	f := promauto.With(r.registry)

	r.LayoutsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layouts_total",
			Help:      "Total number of layout runs",
		},
		[]string{"mode", "status"},
	)
	r.LayoutDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_duration_seconds",
			Help:      "Layout run duration in seconds",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 15, 60, 300},
		},
		[]string{"mode"},
	)
	r.LayoutNodes = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "layout_nodes",
			Help:      "Number of nodes per layout run",
			Buckets:   prometheus.ExponentialBuckets(10, 10, 7),
		},
		[]string{"mode"},
	)
	r.LayoutsInFlight = f.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "layouts_in_flight",
			Help:      "Current number of layout runs",
		},
	)
	r.SolverIterations = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solver_iterations",
			Help:      "Iterations per force-directed solve",
			Buckets:   []float64{10, 50, 100, 200, 400, 500, 700},
		},
		[]string{"strategy"},
	)
	r.SolverConverged = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solver_runs_total",
			Help:      "Force-directed solves by outcome",
		},
		[]string{"strategy", "converged"},
	)
	r.EdgesDropped = f.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_dropped_total",
			Help:      "Edges dropped because an endpoint was unknown",
		},
	)
}

func (r *Registry) initHTTPMetrics() {
	f := promauto.With(r.registry)

	r.HTTPRequestsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	r.HTTPRequestDuration = f.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
}

// Prometheus returns the underlying Prometheus registry.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Install registers r as the process-wide layout and HTTP hooks.
func (r *Registry) Install() {
	observability.SetLayoutHooks(LayoutHooks{r})
	observability.SetHTTPHooks(HTTPHooks{r})
}

// =============================================================================
// Hook Implementations
// =============================================================================

// LayoutHooks records layout events into a Registry.
type LayoutHooks struct{ r *Registry }

func (h LayoutHooks) OnLayoutStart(_ context.Context, mode string, nodeCount int) {
	h.r.LayoutsInFlight.Inc()
	h.r.LayoutNodes.WithLabelValues(mode).Observe(float64(nodeCount))
}

func (h LayoutHooks) OnLayoutComplete(_ context.Context, mode string, d time.Duration, err error) {
	h.r.LayoutsInFlight.Dec()
	h.r.LayoutsTotal.WithLabelValues(mode, status(err)).Inc()
	h.r.LayoutDuration.WithLabelValues(mode).Observe(d.Seconds())
}

func (h LayoutHooks) OnSolveComplete(_ context.Context, strategy string, iterations int, converged bool) {
	h.r.SolverIterations.WithLabelValues(strategy).Observe(float64(iterations))
	h.r.SolverConverged.WithLabelValues(strategy, strconv.FormatBool(converged)).Inc()
}

func (h LayoutHooks) OnEdgesDropped(_ context.Context, count int) {
	h.r.EdgesDropped.Add(float64(count))
}

// HTTPHooks records served requests into a Registry.
type HTTPHooks struct{ r *Registry }

func (h HTTPHooks) OnResponse(_ context.Context, method, route string, code int, d time.Duration) {
	h.r.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(code)).Inc()
	h.r.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// status labels a finished run: "ok", "canceled", or "error".
func status(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errors.ErrCodeCanceled):
		return "canceled"
	default:
		return "error"
	}
}
