package dataset

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of moletrap_instances_total.
const (
	OutcomeGenerated  = "generated"
	OutcomeAdmissible = "admissible"
	OutcomeSolved     = "solved"
	OutcomeFailed     = "failed"
)

// Metrics records generation progress. A nil *Metrics is a valid no-op.
type Metrics struct {
	instances     *prometheus.CounterVec
	solveDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		instances: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "moletrap",
			Name:      "instances_total",
			Help:      "Instances processed by the generator, by outcome.",
		}, []string{"outcome"}),
		solveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "moletrap",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of optimizer-backed solves.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

func (m *Metrics) count(outcome string) {
	if m == nil {
		return
	}
	m.instances.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeSolve(d time.Duration) {
	if m == nil {
		return
	}
	m.solveDuration.Observe(d.Seconds())
}
