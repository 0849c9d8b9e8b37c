package records

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// mutations is a singleton for the counter vec.
	mutations *prometheus.CounterVec //nolint:gochecknoglobals
)

func newMutationCounter() *prometheus.CounterVec {
	if mutations == nil {
		mutations = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "record_mutations_total",
				Help: "Number of record mutations, differentiated by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		)
	}

	return mutations
}

func countMutation(operation string, ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}

	newMutationCounter().WithLabelValues(operation, outcome).Inc()
}
