package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ListingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealbridge_listings_created_total",
		Help: "Total number of listings successfully created.",
	})

	ListingsClaimedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealbridge_listings_claimed_total",
		Help: "Total number of successful claims.",
	})

	ListingsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealbridge_listings_completed_total",
		Help: "Total number of listings completed (picked up).",
	})

	ListingsExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealbridge_listings_expired_total",
		Help: "Total number of listings expired by the TTL sweep.",
	})

	FallbacksTriggeredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mealbridge_fallbacks_triggered_total",
		Help: "Total number of listings auto-routed to a checkpoint, by checkpoint type.",
	},
		[]string{"checkpoint_type"},
	)

	UsersAutoBannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealbridge_users_auto_banned_total",
		Help: "Total number of donors banned by the moderation sweep.",
	})

	SweepErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mealbridge_sweep_errors_total",
		Help: "Total number of per-listing errors encountered during scheduler sweeps.",
	},
		[]string{"pass"},
	)

	SweepDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mealbridge_sweep_duration_seconds",
		Help:    "Wall-clock duration of a full scheduler tick.",
		Buckets: prometheus.DefBuckets,
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mealbridge_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ListingCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mealbridge_listing_cache_items",
		Help: "Current number of items in the active-listing cache.",
	})
)
