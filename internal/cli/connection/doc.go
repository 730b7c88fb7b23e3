// Package connection provides HTTP communication for cw20-cli.
//
// This package wraps the ledger server's HTTP API:
//
//   - http.go: HTTP client and response envelope parsing
//
// All server responses share a common envelope (code, message, data);
// ParseResponse unwraps it and turns error envelopes into Go errors
// carrying the server's error code.
package connection
