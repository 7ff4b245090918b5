package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	topicsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "teaching_server_topic_requests_total",
			Help: "Total number of topic requests, partitioned by outcome.",
		},
		[]string{"outcome"},
	)
	processingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "teaching_server_topic_processing_duration_seconds",
			Help:    "End-to-end processing duration of accepted topic requests.",
			Buckets: prometheus.DefBuckets,
		},
	)
)
