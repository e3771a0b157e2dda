// Package metrics records Prometheus telemetry for scoring calls.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds the kernel's collectors. A nil *Recorder is valid and records nothing.
type Recorder struct {
	calls    *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
	vectors  prometheus.Counter
	batches  prometheus.Counter
}

// NewRecorder creates the collectors and registers them with reg. A nil reg
// leaves them unregistered, which is what tests want.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vecscan_search_calls_total",
			Help: "Total number of scoring calls, by metric",
		}, []string{"metric"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vecscan_search_errors_total",
			Help: "Scoring calls aborted by a decode or dimension error, by metric",
		}, []string{"metric"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vecscan_search_duration_seconds",
			Help:    "Time taken to score a whole collection",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"metric"}),
		vectors: factory.NewCounter(prometheus.CounterOpts{
			Name: "vecscan_scored_vectors_total",
			Help: "Total number of collection vectors scored",
		}),
		batches: factory.NewCounter(prometheus.CounterOpts{
			Name: "vecscan_batches_total",
			Help: "Total number of scratch-matrix batches scored",
		}),
	}
}

// Observe records one scoring call over n vectors. Vectors are only counted
// for calls that succeed.
func (r *Recorder) Observe(metric string, n, batches int, d time.Duration, err error) {
	if r == nil {
		return
	}
	r.calls.WithLabelValues(metric).Inc()
	r.duration.WithLabelValues(metric).Observe(d.Seconds())
	r.batches.Add(float64(batches))
	if err != nil {
		r.errors.WithLabelValues(metric).Inc()
		return
	}
	r.vectors.Add(float64(n))
}
