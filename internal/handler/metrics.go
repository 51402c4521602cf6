package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace_connector",
			Subsystem: "kafka_consumer",
			Name:      "orders_processed_total",
			Help:      "Total number of order submissions handed to the marketplace, by result status",
		},
		[]string{"status"},
	)

	ordersDLQ = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace_connector",
			Subsystem: "kafka_consumer",
			Name:      "orders_dlq_total",
			Help:      "Total number of order messages written to DLQ",
		},
		[]string{"reason"},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace_connector",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	orderProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "marketplace_connector",
			Subsystem: "kafka_consumer",
			Name:      "order_processing_duration_seconds",
			Help:      "Histogram of order message processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	ordersInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "marketplace_connector",
			Subsystem: "kafka_consumer",
			Name:      "orders_in_progress",
			Help:      "Number of order messages currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		ordersProcessed,
		ordersDLQ,
		commitErrors,
		orderProcessingDuration,
		ordersInProgress,
	)
}
