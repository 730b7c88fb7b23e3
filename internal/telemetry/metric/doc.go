// Package metric provides Prometheus metrics for the CW20 ledger service.
//
// This package implements metrics collection and exposition:
//
//   - metric.go: Prometheus registry, instruments, and HTTP handler
//
// Metrics include:
//
//   - Operation counters and latency histograms
//   - Total supply gauge
//   - HTTP request counters and latency histograms
//   - Go runtime and process statistics
//
// Metrics are exposed at /metrics in Prometheus format.
package metric
