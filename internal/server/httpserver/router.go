// Package httpserver provides the HTTP server for the CW20 ledger service.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/rupam-04/cw20/internal/core/service"
	"github.com/rupam-04/cw20/internal/server/httpserver/handler"
	"github.com/rupam-04/cw20/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// ContractService handles ledger operations.
	ContractService *service.ContractService

	// Logger for request logging.
	Logger *slog.Logger

	// Metrics is the Prometheus registry; nil disables /metrics and
	// operation instrumentation.
	Metrics *metric.Metrics

	// RateLimitRPS is the per-IP rate limit (requests/second). Zero
	// disables rate limiting.
	RateLimitRPS float64

	// RateLimitBurst is the per-IP burst allowance.
	RateLimitBurst int

	// EnableAudit enables audit logging for all requests.
	EnableAudit bool
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(cfg.ContractService, cfg.Logger, cfg.Metrics)

	// Build middleware chain for the business endpoints.
	// Order: Recover -> RequestID -> RateLimit -> Audit -> Handler
	var businessHandler http.Handler = h

	// Apply middleware in reverse order (last applied = first executed)
	if cfg.EnableAudit {
		businessHandler = Audit(cfg.Logger)(businessHandler)
	}
	if cfg.RateLimitRPS > 0 {
		businessHandler = RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst)(businessHandler)
	}
	businessHandler = RequestID()(businessHandler)
	businessHandler = Recover(cfg.Logger)(businessHandler)

	mux := http.NewServeMux()

	// Health endpoints - never rate limited
	healthHandler := Chain(h, Recover(cfg.Logger), RequestID())
	mux.Handle("GET /health", healthHandler)
	mux.Handle("GET /ready", healthHandler)

	// Metrics endpoint - Prometheus exposition, outside the envelope
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", Chain(cfg.Metrics.Handler(), Recover(cfg.Logger)))
	}

	// Contract endpoints
	mux.Handle("POST /v1/instantiate", businessHandler)
	mux.Handle("POST /v1/execute", businessHandler)

	// Query endpoints
	mux.Handle("GET /v1/token", businessHandler)
	mux.Handle("GET /v1/balance/{address}", businessHandler)
	mux.Handle("GET /v1/allowance/{owner}/{spender}", businessHandler)

	return mux
}
