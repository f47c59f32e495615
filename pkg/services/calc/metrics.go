package calc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK      = "ok"
	outcomeInvalid = "invalid_input"
	outcomeError   = "error"
)

// Metrics are the calculation counters exported on /metrics.
type Metrics struct {
	calculations *prometheus.CounterVec
	warnings     *prometheus.CounterVec
	duration     prometheus.Histogram
}

// NewMetrics registers the calculation collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		calculations: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "livecost_calculations_total",
				Help: "Total number of cost calculations",
			},
			[]string{"outcome"}, // ok, invalid_input, error
		),
		warnings: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "livecost_cost_warnings_total",
				Help: "Total number of threshold warnings raised",
			},
			[]string{"metric"},
		),
		duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "livecost_calculation_duration_seconds",
				Help:    "Time spent computing a breakdown and its report",
				Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
			},
		),
	}
}
