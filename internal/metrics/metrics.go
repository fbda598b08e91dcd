// Package metrics provides Prometheus instrumentation for pathlens.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cleaning pipeline metrics.
var (
	CleanRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathlens_clean_requests_total",
		Help: "Total number of cleaning requests by outcome (ok, miss).",
	}, []string{"outcome"})

	DiffFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathlens_diff_fallbacks_total",
		Help: "Total number of diff-prefix fallback attempts.",
	})

	ProbeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathlens_probe_duration_seconds",
		Help:    "Filesystem existence probe duration in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)

// Scanner metrics.
var (
	ScannedLines = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pathlens_scanned_lines_total",
		Help: "Total number of output lines scanned for path tokens.",
	})
)
