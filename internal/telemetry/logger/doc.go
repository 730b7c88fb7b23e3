// Package logger provides structured logging for the CW20 ledger service.
//
// This package wraps log/slog for structured logging:
//
//   - logger.go: handler configuration and initialization
//   - context.go: context-aware logging with request IDs
//
// Features:
//
//   - JSON and text output formats
//   - Log level filtering with runtime adjustment
//   - Context propagation for request correlation
package logger
