// Package api wires the HTTP surface: router, middleware, handlers.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dvergara/Household-Finance-Backend/internal/api/handlers"
	custommiddleware "github.com/dvergara/Household-Finance-Backend/internal/api/middleware"
	"github.com/dvergara/Household-Finance-Backend/internal/config"
	"github.com/dvergara/Household-Finance-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	reportService *service.ReportService,
	purchaseService *service.PurchaseService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(reportService)
			r.Get("/", transactionHandler.List)
			r.Get("/facets", transactionHandler.Facets)
			r.Get("/summary", transactionHandler.Summary)
		})

		r.Route("/vacations", func(r chi.Router) {
			vacationHandler := handlers.NewVacationHandler(reportService)
			r.Get("/", vacationHandler.List)
		})

		r.Route("/purchases", func(r chi.Router) {
			purchaseHandler := handlers.NewPurchaseHandler(reportService, purchaseService)
			r.Get("/", purchaseHandler.List)
			r.Post("/", purchaseHandler.Create)
			r.Get("/facets", purchaseHandler.Facets)
			r.Get("/summary", purchaseHandler.Summary)
			r.Get("/export", purchaseHandler.Export)
			r.Post("/{purchaseId}/status", purchaseHandler.ToggleStatus)
			r.Delete("/{purchaseId}", purchaseHandler.Delete)
		})
	})

	return r
}
