package country

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "country_refresh_runs_total",
			Help: "Total number of refresh batches by outcome",
		},
		[]string{"outcome"},
	)

	refreshRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "country_refresh_records_total",
			Help: "Total number of processed country records by result",
		},
		[]string{"result"},
	)

	refreshDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "country_refresh_duration_seconds",
			Help:    "Duration of refresh batches",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
	)
)

const (
	outcomeSuccess           = "success"
	outcomeSourceUnavailable = "source_unavailable"
	outcomeError             = "error"
)
