// Package metrics instruments the codec with Prometheus counters and
// histograms: how many messages are packed/parsed, how long it takes, and
// how often each fails, broken down by operation and record type the way
// the teacher's gRPC middleware breaks its metrics down by method.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Operations counts codec calls by op ("pack"/"parse") and outcome
	// ("ok"/"error").
	Operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dnswire_operations_total", Help: "Total codec pack/parse operations"},
		[]string{"op", "outcome"},
	)

	// Durations records how long each pack/parse call took.
	Durations = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "dnswire_operation_duration_seconds", Help: "Codec operation duration", Buckets: prometheus.DefBuckets},
		[]string{"op"},
	)

	// RecordsByType counts resource records packed or parsed, broken down
	// by their RDATA type, so a caller can see which record shapes a
	// workload actually exercises.
	RecordsByType = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dnswire_records_total", Help: "Resource records packed or parsed, by type"},
		[]string{"type"},
	)

	// CompressionPointers counts name-compression back-pointers emitted
	// while packing, a rough proxy for how much compression is paying off.
	CompressionPointers = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "dnswire_compression_pointers_total", Help: "Name compression pointers emitted while packing"},
		[]string{},
	)
)

func init() {
	prometheus.MustRegister(Operations, Durations, RecordsByType, CompressionPointers)
}

// Observe records the outcome and duration of a pack or parse call. Callers
// wrap a single codec invocation:
//
//	defer metrics.Observe("parse", time.Now(), &err)
func Observe(op string, start time.Time, err *error) {
	outcome := "ok"
	if err != nil && *err != nil {
		outcome = "error"
	}
	Operations.WithLabelValues(op, outcome).Inc()
	Durations.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
