package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finova/finova/internal/adapter/http/handler"
	"github.com/finova/finova/internal/adapter/http/middleware"
	"github.com/finova/finova/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	JournalHandler   *handler.JournalHandler
	ReportHandler    *handler.ReportHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Chart of accounts
		r.Get("/accounts", cfg.JournalHandler.Accounts)

		// Journal
		r.Route("/journal", func(r chi.Router) {
			r.Post("/", cfg.JournalHandler.Create)
			r.Get("/", cfg.JournalHandler.List)
			r.Put("/{id}", cfg.JournalHandler.Update)
			r.Delete("/{id}", cfg.JournalHandler.Delete)
		})

		// Account ledger view
		r.Get("/ledger/{accountID}", cfg.ReportHandler.Ledger)

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/trial-balance", cfg.ReportHandler.TrialBalance)
			r.Get("/trading-pl", cfg.ReportHandler.TradingPL)
			r.Get("/balance-sheet", cfg.ReportHandler.BalanceSheet)
			r.Get("/profit-trend", cfg.ReportHandler.ProfitTrend)
			r.Get("/dashboard", cfg.ReportHandler.Dashboard)
		})
	})

	return r
}
