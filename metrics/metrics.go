// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus instruments for growth runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for SearchesTotal.
const (
	OutcomeFound        = "found"
	OutcomeTimeout      = "timeout"
	OutcomeNotConnected = "not_connected"
	OutcomeError        = "error"
)

// Recorder groups the instruments of one growth run.
type Recorder struct {
	SearchesTotal  *prometheus.CounterVec
	Iterations     prometheus.Counter
	Resets         prometheus.Counter
	PathsFound     prometheus.Counter
	MagicPaths     prometheus.Counter
	CurrentOrder   prometheus.Gauge
	SearchDuration prometheus.Histogram
}

// NewRecorder registers the instruments on reg. A nil reg falls back to
// prometheus.DefaultRegisterer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Recorder{
		SearchesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "squaresum_searches_total",
			Help: "Searches per graph order, labelled by outcome.",
		}, []string{"outcome"}),
		Iterations: f.NewCounter(prometheus.CounterOpts{
			Name: "squaresum_search_iterations_total",
			Help: "Rotation search loop iterations across all searches.",
		}),
		Resets: f.NewCounter(prometheus.CounterOpts{
			Name: "squaresum_search_resets_total",
			Help: "Abandoned walks across all searches.",
		}),
		PathsFound: f.NewCounter(prometheus.CounterOpts{
			Name: "squaresum_paths_found_total",
			Help: "Distinct Hamiltonian paths reported.",
		}),
		MagicPaths: f.NewCounter(prometheus.CounterOpts{
			Name: "squaresum_magic_paths_total",
			Help: "Reported paths that extend to the next order at an end.",
		}),
		CurrentOrder: f.NewGauge(prometheus.GaugeOpts{
			Name: "squaresum_current_order",
			Help: "Graph order currently being searched.",
		}),
		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "squaresum_search_duration_seconds",
			Help:    "Wall time per graph order.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}

// Observe records one per-order result. outcome is one of the Outcome*
// constants; paths and magic are the counts reported for the order.
func (r *Recorder) Observe(outcome string, iterations, resets, paths, magic int, seconds float64) {
	if r == nil {
		return
	}
	r.SearchesTotal.WithLabelValues(outcome).Inc()
	r.Iterations.Add(float64(iterations))
	r.Resets.Add(float64(resets))
	r.PathsFound.Add(float64(paths))
	r.MagicPaths.Add(float64(magic))
	r.SearchDuration.Observe(seconds)
}

// SetOrder updates the current-order gauge.
func (r *Recorder) SetOrder(n int) {
	if r == nil {
		return
	}
	r.CurrentOrder.Set(float64(n))
}
