// Package observability holds the Prometheus collectors shared by the HTTP
// layer and the cost services.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "prodcost"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "http", "requests_total"),
		Help: "HTTP requests by method, route pattern and status code",
	}, []string{"method", "route", "status"})
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "http", "request_duration_seconds"),
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
	}, []string{"method", "route"})

	CostCalculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "costing", "calculations_total"),
		Help: "Cost calculations by outcome (changed, unchanged, failed)",
	}, []string{"outcome"})
	CostCalculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "costing", "calculation_duration_seconds"),
		Help:    "Duration of one batch cost calculation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
	})
	TimeAnomalies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "timeacct", "anomalies_total"),
		Help: "Malformed process event sequences seen while pairing, by kind",
	}, []string{"kind"})
)

// Outcome labels of CostCalculations.
const (
	OutcomeChanged   = "changed"
	OutcomeUnchanged = "unchanged"
	OutcomeFailed    = "failed"
)
