package executor

import (
	"github.com/katalvlaran/querk/event"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query metrics. Registered on the default registry; cmd/querk serves them.
var (
	queriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "querk_queries_total",
		Help: "Next-event queries evaluated, by executor and outcome (event|none)",
	}, []string{"executor", "outcome"})

	batchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "querk_batch_duration_seconds",
		Help:    "Time to evaluate one batch of nodes",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"executor"})

	mismatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "querk_crosscheck_mismatches_total",
		Help: "Nodes on which two executors disagreed",
	})
)

// observe records one finished batch.
func observe(name string, results []event.Result, seconds float64) {
	var found int
	for _, r := range results {
		if r.Ok() {
			found++
		}
	}
	queriesTotal.WithLabelValues(name, "event").Add(float64(found))
	queriesTotal.WithLabelValues(name, "none").Add(float64(len(results) - found))
	batchDuration.WithLabelValues(name).Observe(seconds)
}
