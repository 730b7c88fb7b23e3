// Package metric provides Prometheus metrics for the CW20 ledger service.
//
// It exposes metrics in Prometheus format for monitoring operation
// rates, latencies, the ledger total supply, and process health.
package metric

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rupam-04/cw20/internal/core/domain"
)

// Metrics holds all application metrics on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Ledger metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	TotalSupply       prometheus.Gauge

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the metrics registry with process and Go runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cw20",
			Name:      "operations_total",
			Help:      "Total ledger operations by action and result.",
		}, []string{"operation", "result"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cw20",
			Name:      "operation_duration_seconds",
			Help:      "Ledger operation latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		TotalSupply: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cw20",
			Name:      "total_supply",
			Help:      "Current token total supply.",
		}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cw20",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cw20",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.OperationsTotal,
		m.OperationDuration,
		m.TotalSupply,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)
	return m
}

// SetTotalSupply updates the supply gauge. Amounts beyond float64
// precision are approximated; the gauge tracks magnitude, the ledger
// keeps the exact value.
func (m *Metrics) SetTotalSupply(supply domain.Amount) {
	m.TotalSupply.Set(supply.Float64())
}

// RecordOperation counts one ledger operation and its latency.
func (m *Metrics) RecordOperation(operation, result string, seconds float64) {
	m.OperationsTotal.WithLabelValues(operation, result).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordHTTPRequest counts one HTTP request and its latency.
func (m *Metrics) RecordHTTPRequest(route string, status int, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(seconds)
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Gather exposes the underlying registry for tests.
func (m *Metrics) Gather() prometheus.Gatherer {
	return m.registry
}
