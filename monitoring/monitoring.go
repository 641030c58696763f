// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry wraps a prometheus registry preloaded with runtime collectors.
type Registry struct {
	*prometheus.Registry
}

// NewRegistry creates a registry with the go and process collectors.
func NewRegistry() *Registry {
	registry := &Registry{Registry: prometheus.NewRegistry()}
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return registry
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r, promhttp.HandlerOpts{Registry: r})
}

// TallyMonitor holds the metrics recorded per tally.
type TallyMonitor struct {
	// How long scoring and ordering took, per method.
	TallyDuration *prometheus.HistogramVec
	// Tallies by method and outcome ("ok" or "error").
	Tallies *prometheus.CounterVec
	// Ballots per tallied poll.
	Ballots prometheus.Histogram
	// Majorities skipped by the ranked pairs lock, per method.
	SkippedMajorities *prometheus.HistogramVec
}

// NewTallyMonitor creates the tally metrics and registers them.
func NewTallyMonitor(registry prometheus.Registerer) *TallyMonitor {
	tallyDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quickly_tally_duration_seconds",
		Help:    "Duration of a tally",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"method"})
	tallies := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickly_tally_total",
		Help: "Number of tallies by method and outcome",
	}, []string{"method", "outcome"})
	ballots := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quickly_tally_ballots",
		Help:    "Ballots per tallied poll",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
	skipped := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quickly_tally_skipped_majorities",
		Help:    "Majorities skipped because they would close a cycle",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	}, []string{"method"})
	registry.MustRegister(tallyDuration, tallies, ballots, skipped)
	return &TallyMonitor{
		TallyDuration:     tallyDuration,
		Tallies:           tallies,
		Ballots:           ballots,
		SkippedMajorities: skipped,
	}
}

// Observe records one tally that started at start.
// A nil monitor records nothing.
func (m *TallyMonitor) Observe(method string, start time.Time, ballots int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.Tallies.WithLabelValues(method, "error").Inc()
		return
	}
	m.Tallies.WithLabelValues(method, "ok").Inc()
	m.TallyDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	m.Ballots.Observe(float64(ballots))
}

// ObserveSkipped records how many majorities a graph left out.
func (m *TallyMonitor) ObserveSkipped(method string, skipped int) {
	if m == nil {
		return
	}
	m.SkippedMajorities.WithLabelValues(method).Observe(float64(skipped))
}
