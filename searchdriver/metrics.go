// SPDX-License-Identifier: MIT
package searchdriver

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metrics holds the Prometheus collectors a Run invocation updates. Each
// Run owns a private prometheus.Registry rather than registering against
// the global default — this package may be driven many times in one
// process (tests, a long-lived CLI session) and promauto's global
// registration would panic on the second call.
type metrics struct {
	configurationsEvaluated *prometheus.CounterVec
	candidatesAccepted      prometheus.Counter
	workerDuration          *prometheus.HistogramVec
	bestObjective           prometheus.Gauge
}

// newMetrics builds a fresh collector set registered against its own
// registry, following cancel.NewMetrics's namespace/subsystem convention.
func newMetrics() (*metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	m := &metrics{
		configurationsEvaluated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sqsgen",
				Subsystem: "search",
				Name:      "configurations_evaluated_total",
				Help:      "Total candidate configurations scored, by worker id",
			},
			[]string{"worker"},
		),
		candidatesAccepted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "sqsgen",
				Subsystem: "search",
				Name:      "candidates_accepted_total",
				Help:      "Total candidates pushed into the shared result buffer",
			},
		),
		workerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sqsgen",
				Subsystem: "search",
				Name:      "worker_duration_seconds",
				Help:      "Wall-clock duration of a worker's assigned rank range",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"worker"},
		),
		bestObjective: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "sqsgen",
				Subsystem: "search",
				Name:      "best_objective",
				Help:      "Lowest objective value observed by the shared result buffer",
			},
		),
	}

	reg.MustRegister(m.configurationsEvaluated, m.candidatesAccepted, m.workerDuration, m.bestObjective)

	return m, reg
}
