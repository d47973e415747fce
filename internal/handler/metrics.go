package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	webhookEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "webhook",
			Name:      "events_total",
			Help:      "Total number of webhook deliveries by event type and outcome.",
		},
		[]string{"type", "outcome"},
	)

	webhookRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "webhook",
			Name:      "rejected_total",
			Help:      "Total number of deliveries rejected before verification passed.",
		},
	)

	webhookProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "webhook",
			Name:      "processing_duration_seconds",
			Help:      "Histogram of verified event processing durations in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "checkout",
			Name:      "sessions_total",
			Help:      "Total number of checkout session attempts by outcome.",
		},
		[]string{"outcome"},
	)
)
