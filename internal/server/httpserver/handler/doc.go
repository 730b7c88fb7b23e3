// Package handler provides HTTP request handlers for the CW20 ledger service.
//
// This package contains handlers for all HTTP endpoints:
//
//   - contract.go: Instantiate and execute message dispatch
//   - query.go: Balance, allowance, and token info queries
//   - health.go: Health and readiness checks
//
// All handlers follow a consistent pattern:
//
//   - Parse and validate request
//   - Call domain service
//   - Format and return response
//   - Handle errors with appropriate HTTP status codes
package handler
