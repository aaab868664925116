package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	kvOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "kv",
		Name:      "operations_total",
		Help:      "Key-value store operations by driver, operation and result.",
	}, []string{"driver", "op", "result"})
	kvDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fittrack",
		Subsystem: "kv",
		Name:      "operation_duration_seconds",
		Help:      "Latency of key-value store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"driver", "op"})
	workoutMutations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "workouts",
		Name:      "mutations_total",
		Help:      "Committed workout store mutations by operation.",
	}, []string{"op"})
)

func init() {
	prometheus.MustRegister(kvOperations, kvDuration, workoutMutations)
}

// ObserveKVOperation records one key-value call. A nil err counts as "ok";
// missing keys are reported by the caller as "miss".
func ObserveKVOperation(driver, op, result string, took time.Duration) {
	kvOperations.WithLabelValues(driver, op, result).Inc()
	kvDuration.WithLabelValues(driver, op).Observe(took.Seconds())
}

// RecordWorkoutMutation counts a committed add or delete.
func RecordWorkoutMutation(op string) {
	workoutMutations.WithLabelValues(op).Inc()
}
