package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StoreQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridiron_store_queries_total",
			Help: "Total table-query requests against the backing store",
		},
		[]string{"table", "status"},
	)

	StoreQueryLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridiron_store_query_latency_seconds",
			Help:    "Table-query latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)
)
