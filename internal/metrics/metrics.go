package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport_error"
	OutcomeMalformed = "malformed_reply"
)

var (
	AssistantRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "healthai_assistant_requests_total",
			Help: "Total number of queries dispatched to the assistant, by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	AssistantRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "healthai_assistant_request_duration_seconds",
			Help:    "Duration of assistant round trips in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	AnalyticsRecordsSummarized = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "healthai_analytics_records_summarized",
			Help:    "Number of health records included in analytics queries",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10, 20},
		},
	)
)
