// Package observability bundles the Prometheus metrics for the HTTP API
// and the evaluation engine.
package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and holds the API metrics and provides helpers to
// wire them into HTTP handlers.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
	Evaluations   *prometheus.CounterVec
}

// NewCollector registers the API metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "habplanner_http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, path, and status code.",
	}, []string{"method", "path", "code"})
	requests, err := registerCounterVec(reg, requests, "habplanner_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "habplanner_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "path"})
	durations, err = registerHistogramVec(reg, durations, "habplanner_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	evaluations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "habplanner_evaluations_total",
		Help: "Total number of layout evaluations, labeled by kind (validate, score).",
	}, []string{"kind"})
	evaluations, err = registerCounterVec(reg, evaluations, "habplanner_evaluations_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		HTTPRequests:  requests,
		HTTPDurations: durations,
		Evaluations:   evaluations,
	}, nil
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument records request counts and durations for every request the
// wrapped handler serves.
func (c *Collector) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if c == nil {
			return
		}
		if c.HTTPRequests != nil {
			c.HTTPRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		}
		if c.HTTPDurations != nil {
			c.HTTPDurations.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		}
	})
}

// RecordEvaluation counts one run of the named evaluation kind.
func (c *Collector) RecordEvaluation(kind string) {
	if c == nil || c.Evaluations == nil {
		return
	}
	c.Evaluations.WithLabelValues(kind).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
