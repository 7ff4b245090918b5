package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teaching_engine_ai_requests_total",
			Help: "Total number of requests to the generation backend.",
		},
		[]string{"backend", "stage", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "teaching_engine_ai_request_duration_seconds",
			Help:    "Histogram of generation backend request durations.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "stage"},
	)
	aiTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teaching_engine_ai_tokens_total",
			Help: "Total tokens consumed by the generation backend, by kind.",
		},
		[]string{"backend", "kind"},
	)
)
