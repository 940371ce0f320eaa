package mip

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects solver counters. Create with NewMetrics and attach with
// WithMetrics; one Metrics value may be shared by many solvers.
type Metrics struct {
	solves   *prometheus.CounterVec
	nodes    prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics builds the collectors and registers them on reg.
// A nil reg leaves them unregistered (useful in tests).
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graphy",
			Subsystem: "mip",
			Name:      "solves_total",
			Help:      "Integer program solves by terminal status.",
		}, []string{"status"}),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "graphy",
			Subsystem: "mip",
			Name:      "nodes_total",
			Help:      "Branch-and-bound nodes explored.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "graphy",
			Subsystem: "mip",
			Name:      "solve_seconds",
			Help:      "Wall time of one solve.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.solves, m.nodes, m.duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Solves returns the counter of solves that ended with status st.
func (m *Metrics) Solves(st Status) prometheus.Counter {
	return m.solves.WithLabelValues(st.String())
}

// Nodes returns the explored-node counter.
func (m *Metrics) Nodes() prometheus.Counter { return m.nodes }

func (m *Metrics) observe(sol *Solution) {
	m.solves.WithLabelValues(sol.Status.String()).Inc()
	m.nodes.Add(float64(sol.Nodes))
	m.duration.Observe(sol.Elapsed.Seconds())
}
