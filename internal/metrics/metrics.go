package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Settlement metrics - committed launchpad activity
var (
	CampaignsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "launchpad_campaigns_created_total",
		Help: "Total number of campaigns created and funded",
	})

	Purchases = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchpad_purchases_total",
			Help: "Total number of settled purchases by sale asset",
		},
		[]string{"sale_asset"},
	)

	TokensSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchpad_tokens_sold_total",
			Help: "Sale asset units released to buyers",
		},
		[]string{"sale_asset"},
	)

	Withdrawals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchpad_withdrawals_total",
			Help: "Total number of non-empty withdrawals by sale asset",
		},
		[]string{"sale_asset"},
	)
)

// Failure metrics - rejected or rolled back operations
var (
	OperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchpad_operation_errors_total",
			Help: "Failed operations by operation and error code",
		},
		[]string{"operation", "code"},
	)
)

// Performance metrics
var (
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "launchpad_operation_duration_seconds",
			Help:    "Time taken to serve an operation, including lock wait",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)
