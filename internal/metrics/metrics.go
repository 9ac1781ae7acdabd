// Package metrics provides Prometheus observability for the staffing
// engine: forecast volume and latency plus the latest projected workload.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the application.
var Registry = prometheus.NewRegistry()

// factory registers metrics against Registry directly.
var factory = promauto.With(Registry)

// ForecastsTotal counts forecast computations by source (simulation or
// model) and outcome.
var ForecastsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "centerpointe",
	Name:      "forecasts_total",
	Help:      "Total forecast computations by source and outcome",
}, []string{"source", "outcome"})

// ForecastDuration observes end-to-end forecast latency per source.
var ForecastDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "centerpointe",
	Name:      "forecast_duration_seconds",
	Help:      "Forecast computation latency",
	Buckets:   prometheus.DefBuckets,
}, []string{"source"})

// ModelCallFailures counts per-date model-server failures recovered inside
// batch predictions.
var ModelCallFailures = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "centerpointe",
	Name:      "model_call_failures_total",
	Help:      "Model server calls that failed and were skipped in batch mode",
})

// ProjectedTransactions is the latest projected daily transaction count
// published by the morning report job.
var ProjectedTransactions = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "centerpointe",
	Name:      "projected_daily_transactions",
	Help:      "Most recent projected transaction count for the current day",
})

// ProjectedLaborHours is the latest projected total staffing hours
// published by the morning report job.
var ProjectedLaborHours = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "centerpointe",
	Name:      "projected_daily_labor_hours",
	Help:      "Most recent projected total staffing hours for the current day",
})
