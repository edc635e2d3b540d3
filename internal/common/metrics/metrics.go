// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	WorkerJobsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "worker_jobs_active",
			Help: "Number of active jobs per worker",
		},
		[]string{"task_type"},
	)
)

var (
	IntentsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_intents_classified_total",
			Help: "Utterances that matched an intent, by classifier profile",
		},
		[]string{"profile", "intent"},
	)

	IntentsUnmatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_intents_unmatched_total",
			Help: "Utterances that matched no intent keyword",
		},
		[]string{"profile"},
	)

	DeepLinksBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_deeplinks_built_total",
			Help: "Deep links generated, by target service and device platform",
		},
		[]string{"service", "platform"},
	)

	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "concierge_fallbacks_total",
			Help: "Web fallback timers by outcome (fired, suppressed, cancelled)",
		},
		[]string{"outcome"},
	)
)

// Fallback outcomes.
const (
	FallbackFired      = "fired"
	FallbackSuppressed = "suppressed"
	FallbackCancelled  = "cancelled"
)

// RecordClassification counts a classifier result. An empty intent counts
// as unmatched.
func RecordClassification(profile, intent string) {
	if intent == "" {
		IntentsUnmatched.WithLabelValues(profile).Inc()
		return
	}
	IntentsClassified.WithLabelValues(profile, intent).Inc()
}
