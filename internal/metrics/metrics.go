package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// ProcessRequests counts processing requests by outcome and upload
	// format (file extension).
	ProcessRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audio_process_requests_total",
			Help: "Total audio processing requests by outcome and upload format",
		},
		[]string{"outcome", "format"},
	)

	// ProcessDuration tracks wall-clock time of the full pipeline.
	ProcessDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "audio_process_duration_seconds",
			Help:    "Time spent processing one upload end to end",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"format"},
	)

	// SummaryFallbacks counts summarizations that degraded to the
	// first-k-sentences path.
	SummaryFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "summary_fallbacks_total",
			Help: "Summarizations that fell back to first-k sentence selection",
		},
	)
)

func init() {
	prometheus.MustRegister(ProcessRequests, ProcessDuration, SummaryFallbacks)
}
