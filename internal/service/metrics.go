package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clientCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_connector",
		Subsystem: "client",
		Name:      "calls_total",
		Help:      "Total number of marketplace client calls by outcome.",
	}, []string{"operation", "outcome"})

	clientCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "marketplace_connector",
		Subsystem: "client",
		Name:      "call_duration_seconds",
		Help:      "Marketplace client call latencies in seconds, retries included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	businessFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_connector",
		Subsystem: "client",
		Name:      "business_failures_total",
		Help:      "Errors reported by the marketplace inside FAILED results.",
	}, []string{"operation", "code"})

	resultCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_connector",
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Order result cache lookups.",
	}, []string{"result"})
)
