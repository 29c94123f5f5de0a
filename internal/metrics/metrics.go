// Package metrics exposes the optimizer's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TasksTotal counts completed tasks by terminal status (SUCCESS/FAILURE).
var TasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "timetable",
	Subsystem: "tasks",
	Name:      "total",
	Help:      "Total optimization tasks by terminal status.",
}, []string{"status"})

// TasksProcessing gauges the number of tasks currently running the
// candidate/compile/sample/decode pipeline.
var TasksProcessing = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "timetable",
	Subsystem: "tasks",
	Name:      "processing",
	Help:      "Number of tasks currently in PROCESSING.",
})

// SamplerBatchSeconds observes the wall-clock duration of one task's whole
// sampler run (every batch of that task together); the batches inside a
// run are not timed separately.
var SamplerBatchSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "timetable",
	Subsystem: "sampler",
	Name:      "batch_seconds",
	Help:      "Wall-clock duration of one task's sampler run (all batches).",
	Buckets:   prometheus.DefBuckets,
})

// TaskFinished records a terminal status transition.
func TaskFinished(status string) {
	TasksTotal.WithLabelValues(status).Inc()
}

// TaskProcessingStarted increments the in-flight PROCESSING gauge.
func TaskProcessingStarted() {
	TasksProcessing.Inc()
}

// TaskProcessingFinished decrements the in-flight PROCESSING gauge.
func TaskProcessingFinished() {
	TasksProcessing.Dec()
}

// SamplerBatchDuration observes one sampler run's wall-clock duration in
// seconds.
func SamplerBatchDuration(seconds float64) {
	SamplerBatchSeconds.Observe(seconds)
}
