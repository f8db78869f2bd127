// Package metrics defines and registers all custom Prometheus metrics for the
// carrier gateway. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on import via
// promauto and served by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "carrier_gateway"

// ── Carrier exchange metrics ──────────────────────────────────────────────────

// CarrierRequestsTotal counts round trips to the carrier API.
// Labels:
//   - operation: "rate", "tracking" or "address_validation"
//   - outcome: "success", "failure" (carrier said no), "bad_response",
//     "transport_error" or "invalid_configuration"
var CarrierRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carrier_requests_total",
		Help:      "Total number of carrier API requests, by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

// CarrierRequestDuration measures the transport round trip, retries included.
// Label:
//   - operation: the carrier operation
var CarrierRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "carrier_request_duration_seconds",
		Help:      "Duration of carrier API round trips including retries.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)

// CarrierRetriesTotal counts transport attempts that were retried.
var CarrierRetriesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "carrier_retries_total",
		Help:      "Total number of carrier transport attempts that were retried.",
	},
)

// ── Result metrics ────────────────────────────────────────────────────────────

// RatesReturned observes how many estimates a rate reply produced.
var RatesReturned = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "rates_returned",
		Help:      "Number of rate estimates returned per rate request.",
		Buckets:   []float64{0, 1, 2, 4, 8, 16},
	},
)

// TrackingCacheTotal counts tracking cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var TrackingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_cache_total",
		Help:      "Total number of tracking cache lookups, labelled by result (hit/miss/error).",
	},
	[]string{"result"},
)

// BatchQueueDepth tracks the number of tracking jobs waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var BatchQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "batch_queue_depth",
		Help:      "Current number of tracking jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
