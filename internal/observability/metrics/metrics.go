// Package metrics registers the service's prometheus collectors and
// exposes the scrape handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefix = "paydash_"

var (
	// UpstreamRequests counts calls to the upstream reporting API.
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "upstream_requests_total",
			Help: "Upstream API requests by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	// SnapshotCacheHits counts dataset snapshots served from Redis.
	SnapshotCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: prefix + "snapshot_cache_hits_total",
		Help: "Dataset snapshots served from cache",
	})

	// SnapshotCacheMisses counts dataset fetches that went upstream.
	SnapshotCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: prefix + "snapshot_cache_misses_total",
		Help: "Dataset fetches that bypassed the cache",
	})

	// MalformedAmounts counts payment amounts that failed to parse and
	// were treated as zero.
	MalformedAmounts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: prefix + "malformed_amounts_total",
		Help: "Payment amounts that could not be parsed",
	})
)

func init() {
	prometheus.MustRegister(
		UpstreamRequests,
		SnapshotCacheHits,
		SnapshotCacheMisses,
		MalformedAmounts,
	)
}

// Handler returns the prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
