// Package main provides the entry point for cw20-cli.
//
// The CLI tool provides command-line access to the ledger server for:
//
//   - Token instantiation and metadata queries
//   - Balance and allowance queries
//   - Transfers, approvals, mints, and burns
//   - Owner pause controls
//   - Server health checks
//
// Usage:
//
//	cw20-cli [command] [flags]
//	cw20-cli --caller alice tx transfer bob 25
//	cw20-cli balance alice --output json
//
// The CLI supports both single-command mode and interactive REPL mode.
package main
