package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Queries issued against the measurement store
	SourceLoadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wifi_source_loads_total",
		Help: "Total number of measurement table loads from the store",
	})

	SourceLoadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wifi_source_load_errors_total",
		Help: "Total number of failed measurement table loads",
	})

	SourceLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wifi_source_load_duration_seconds",
		Help:    "Time taken to load and decode the measurement table",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~10s
	})

	SourceRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wifi_source_rows",
		Help: "Number of rows in the most recently loaded measurement table",
	})

	// Memoized table served without querying the store
	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wifi_cache_hits_total",
		Help: "Total number of measurement table requests served from cache",
	})

	RenderPassesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wifi_render_passes_total",
		Help: "Total number of dashboard render passes",
	})

	NoLayersSelectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wifi_no_layers_selected_total",
		Help: "Total number of render passes with every map layer switched off",
	})
)
