// Package handler provides HTTP request handlers for the CW20 ledger service.
//
// This package implements the HTTP API endpoints for contract
// instantiation, execute messages, and state queries.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rupam-04/cw20/internal/core/domain"
	"github.com/rupam-04/cw20/internal/core/service"
	"github.com/rupam-04/cw20/internal/telemetry/metric"
)

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	contractSvc *service.ContractService
	logger      *slog.Logger
	metrics     *metric.Metrics
	mux         *http.ServeMux
}

// New creates a new Handler with the given service. metrics may be nil.
func New(contractSvc *service.ContractService, logger *slog.Logger, metrics *metric.Metrics) *Handler {
	h := &Handler{
		contractSvc: contractSvc,
		logger:      logger,
		metrics:     metrics,
		mux:         http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health endpoints (no auth required)
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /ready", h.handleReady)

	// Contract lifecycle and execute endpoints
	h.mux.HandleFunc("POST /v1/instantiate", h.handleInstantiate)
	h.mux.HandleFunc("POST /v1/execute", h.handleExecute)

	// Query endpoints
	h.mux.HandleFunc("GET /v1/token", h.handleQueryTokenInfo)
	h.mux.HandleFunc("GET /v1/balance/{address}", h.handleQueryBalance)
	h.mux.HandleFunc("GET /v1/allowance/{owner}/{spender}", h.handleQueryAllowance)
}

// writeJSON writes a JSON response with standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	requestID := getRequestID(r)
	response := NewResponse(requestID, data)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with standard envelope format.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	requestID := getRequestID(r)
	response := NewErrorResponse(requestID, code, message, details)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// getRequestID extracts request ID from the header set by middleware.
func getRequestID(r *http.Request) string {
	return r.Header.Get("X-Request-ID")
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		status := errorCodeToHTTPStatus(code)
		h.writeError(w, r, status, code, err.Error(), nil)
		return
	}

	// Generic internal error
	h.logger.Error("internal error", "error", err)
	h.writeError(w, r, http.StatusInternalServerError, "CW-SYS-5000", "internal server error", nil)
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4090"):
		return http.StatusConflict
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	case strings.HasSuffix(code, "-4030"):
		return http.StatusForbidden
	case strings.HasSuffix(code, "-4230"), strings.HasSuffix(code, "-4231"):
		return http.StatusLocked
	case strings.HasSuffix(code, "-4020"), strings.HasSuffix(code, "-4021"):
		return http.StatusUnprocessableEntity
	case strings.HasPrefix(code, "CW-ARG-"):
		return http.StatusBadRequest
	case strings.HasSuffix(code, "-4000"):
		return http.StatusBadRequest
	// Arithmetic overflow and underflow are request problems, not
	// server faults.
	case strings.HasPrefix(code, "CW-LEDG-5"):
		return http.StatusUnprocessableEntity
	case strings.HasPrefix(code, "CW-SYS-5"):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// recordOperation reports one operation to the metrics registry.
func (h *Handler) recordOperation(op string, err error, start time.Time) {
	if h.metrics == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	h.metrics.RecordOperation(op, result, time.Since(start).Seconds())
}
