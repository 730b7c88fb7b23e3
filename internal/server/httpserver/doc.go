// Package httpserver provides the HTTP server for the CW20 ledger service.
//
// This package implements the external API using stdlib net/http:
//
//   - Contract endpoints: /v1/instantiate, /v1/execute
//   - Query endpoints: /v1/token, /v1/balance/{address}, /v1/allowance/{owner}/{spender}
//   - Health endpoints: /health, /ready, /metrics
//
// Features:
//
//   - Middleware chain: Recover, RequestID, RateLimit, Audit
//   - Graceful shutdown with configurable timeout
//   - Prometheus metrics integration
package httpserver
