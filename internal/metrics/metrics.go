// Package metrics registers the Prometheus collectors exposed by the
// service, following the same CounterVec/HistogramVec/Gauge layout the
// rest of the codebase's HTTP middleware expects.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds every collector the service registers. HTTP-level
// collectors are updated by middleware.Metrics; the forest gauges are
// updated directly by the handlers that mutate the forest.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPActiveRequests  prometheus.Gauge

	ForestSize prometheus.Gauge
	TopRootIdx prometheus.Gauge
}

// New constructs and registers all collectors against the default
// registry.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPActiveRequests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_active_requests",
				Help: "Number of in-flight HTTP requests",
			},
		),
		ForestSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "utxo_forest_trees",
				Help: "Number of Indexed Merkle Trees currently retained in the forest",
			},
		),
		TopRootIdx: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "utxo_top_root_idx",
				Help: "Maximum output index reachable from the current top root",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPActiveRequests,
		m.ForestSize,
		m.TopRootIdx,
	)

	return m
}
