package stub

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stubOrders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_connector",
		Subsystem: "stub",
		Name:      "orders_total",
		Help:      "Orders handled by the simulator by outcome (created, replayed, simulated_failure).",
	}, []string{"result"})

	stubListingObservations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_connector",
		Subsystem: "stub",
		Name:      "listing_observations_total",
		Help:      "Listing observations served by the simulator by reported status.",
	}, []string{"status"})
)
