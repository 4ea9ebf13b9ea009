package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// cleaning pipeline.
type Metrics struct {
	RunActive     prometheus.Gauge
	RunsCompleted prometheus.Counter
	RunsFailed    prometheus.Counter

	FetchedBytes prometheus.Counter
	RowsLoaded   prometheus.Counter
	RowsWritten  prometheus.Counter

	StageDuration     *prometheus.HistogramVec // label: stage
	SentinelFallbacks *prometheus.CounterVec   // label: column
}

// NewMetrics creates and registers all pipeline metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RunActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "shark_etl",
			Name:      "run_active",
			Help:      "1 while a cleaning run is in progress, 0 otherwise.",
		}),
		RunsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shark_etl",
			Name:      "runs_completed_total",
			Help:      "Total cleaning runs that finished successfully.",
		}),
		RunsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shark_etl",
			Name:      "runs_failed_total",
			Help:      "Total cleaning runs aborted by a fatal error.",
		}),
		FetchedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shark_etl",
			Name:      "fetched_bytes_total",
			Help:      "Total bytes downloaded from the source spreadsheet URL.",
		}),
		RowsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shark_etl",
			Name:      "rows_loaded_total",
			Help:      "Total incident rows loaded from the raw spreadsheet.",
		}),
		RowsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shark_etl",
			Name:      "rows_written_total",
			Help:      "Total incident rows written to the cleaned spreadsheet.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shark_etl",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"stage"}),
		SentinelFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shark_etl",
			Name:      "sentinel_fallbacks_total",
			Help:      "Cells substituted with the Unknown sentinel, by column.",
		}, []string{"column"}),
	}

	prometheus.MustRegister(
		m.RunActive,
		m.RunsCompleted,
		m.RunsFailed,
		m.FetchedBytes,
		m.RowsLoaded,
		m.RowsWritten,
		m.StageDuration,
		m.SentinelFallbacks,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RunActive:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "shark_etl", Name: "run_active"}),
		RunsCompleted:     prometheus.NewCounter(prometheus.CounterOpts{Namespace: "shark_etl", Name: "runs_completed_total"}),
		RunsFailed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "shark_etl", Name: "runs_failed_total"}),
		FetchedBytes:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "shark_etl", Name: "fetched_bytes_total"}),
		RowsLoaded:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "shark_etl", Name: "rows_loaded_total"}),
		RowsWritten:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "shark_etl", Name: "rows_written_total"}),
		StageDuration:     prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "shark_etl", Name: "stage_duration_seconds"}, []string{"stage"}),
		SentinelFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "shark_etl", Name: "sentinel_fallbacks_total"}, []string{"column"}),
	}
}
