// Package main provides the entry point for cw20-server.
//
// The server hosts the CW20 token ledger and provides:
//
//   - HTTP API for instantiation, execution, and queries
//   - Embedded persistent storage for ledger state
//   - Prometheus metrics and health endpoints
//
// Usage:
//
//	cw20-server [flags]
//	cw20-server --config /path/to/config.yaml
//
// The server loads configuration, initializes infrastructure components,
// and starts the HTTP listener.
package main
