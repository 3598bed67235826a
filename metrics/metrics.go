// Package metrics instruments search applications with Prometheus
// collectors kept in a private registry. Batch runs export the registry in
// the node-exporter textfile format at exit.
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pids"

// Recorder holds the collectors of one process. A nil *Recorder is a valid
// no-op, so callers can run with metrics disabled.
type Recorder struct {
	registry *prometheus.Registry

	runs       *prometheus.CounterVec   // by strategy and outcome (feasible/infeasible)
	iterations *prometheus.CounterVec   // by strategy
	accepted   *prometheus.CounterVec   // by strategy
	resets     *prometheus.CounterVec   // by strategy
	duration   *prometheus.HistogramVec // by strategy
	bestSize   *prometheus.GaugeVec     // by strategy

	mu      sync.Mutex
	bestSet map[string]bool // strategies whose bestSize gauge holds a real value
}

// New creates a Recorder with all collectors registered.
func New() (*Recorder, error) {
	m := &Recorder{
		registry: prometheus.NewRegistry(),
		bestSet:  make(map[string]bool),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_total",
			Help:      "Completed search applications",
		}, []string{"strategy", "outcome"}),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Search iterations or committed moves",
		}, []string{"strategy"}),
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "accepted_moves_total",
			Help:      "Moves kept by the search",
		}, []string{"strategy"}),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tabu",
			Name:      "memory_resets_total",
			Help:      "Tabu memory clears caused by the iteration ceiling",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "application_duration_seconds",
			Help:      "Measured time of one application",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"strategy"}),
		bestSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_solution_size",
			Help:      "Smallest solution size seen so far",
		}, []string{"strategy"}),
	}

	for _, c := range []prometheus.Collector{m.runs, m.iterations, m.accepted, m.resets, m.duration, m.bestSize} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return m, nil
}

// Run describes one finished application.
type Run struct {
	Strategy   string
	Feasible   bool
	Size       int
	Iterations int64
	Accepted   int64
	Resets     int
	Duration   time.Duration
}

// Observe records r. The best-size gauge only ever moves down per strategy.
func (m *Recorder) Observe(r Run) {
	if m == nil {
		return
	}
	outcome := "infeasible"
	if r.Feasible {
		outcome = "feasible"
	}
	m.runs.WithLabelValues(r.Strategy, outcome).Inc()
	m.iterations.WithLabelValues(r.Strategy).Add(float64(r.Iterations))
	m.accepted.WithLabelValues(r.Strategy).Add(float64(r.Accepted))
	m.resets.WithLabelValues(r.Strategy).Add(float64(r.Resets))
	m.duration.WithLabelValues(r.Strategy).Observe(r.Duration.Seconds())

	if r.Feasible {
		m.mu.Lock()
		g := m.bestSize.WithLabelValues(r.Strategy)
		if !m.bestSet[r.Strategy] || float64(r.Size) < gaugeValue(g) {
			g.Set(float64(r.Size))
			m.bestSet[r.Strategy] = true
		}
		m.mu.Unlock()
	}
}

// Gatherer exposes the private registry.
func (m *Recorder) Gatherer() prometheus.Gatherer {
	if m == nil {
		return prometheus.NewRegistry()
	}

	return m.registry
}

// WriteTextfile writes all collected metrics to path in the text exposition
// format. An empty path or a nil Recorder is a no-op.
func (m *Recorder) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
