// Package metrics holds the Prometheus collectors exported by pockit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Chat metrics
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pockit_submissions_total",
			Help: "Chat submissions by outcome",
		},
		[]string{"outcome"}, // "success" or "failed"
	)

	ClassifierErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pockit_classifier_errors_total",
			Help: "Failed classifications by error kind",
		},
		[]string{"kind"},
	)

	ClassifierLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pockit_classifier_latency_seconds",
			Help:    "Remote classifier round-trip latency",
			Buckets: []float64{.25, .5, 1, 2, 4, 8, 16, 32, 64},
		},
	)

	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pockit_dispatch_total",
			Help: "Classifier replies by extracted payload",
		},
		[]string{"payload"}, // "milestone", "transaction" or "none"
	)

	RecorderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pockit_recorder_errors_total",
			Help: "Failed record writes by payload",
		},
		[]string{"payload"},
	)

	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pockit_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pockit_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 30},
		},
		[]string{"method", "path"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pockit_active_sessions",
			Help: "Chat sessions held by the HTTP API",
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pockit_sessions_evicted_total",
			Help: "Idle chat sessions evicted to make room",
		},
	)
)
