package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tradevault/Trade-Journal-Backend/internal/api/handlers"
	custommiddleware "github.com/tradevault/Trade-Journal-Backend/internal/api/middleware"
	"github.com/tradevault/Trade-Journal-Backend/internal/config"
	"github.com/tradevault/Trade-Journal-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	tradeService *service.TradeService,
	journalService *service.JournalService,
	analyticsService *service.AnalyticsService,
	summaryCacheService *service.SummaryCacheService,
	importExportService *service.ImportExportService,
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

	requireKey := custommiddleware.RequireAPIKey(systemService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
			r.With(requireKey).Post("/apikey", systemHandler.SetAPIKey)
		})

		r.Route("/trade", func(r chi.Router) {
			tradeHandler := handlers.NewTradeHandler(tradeService)
			importExportHandler := handlers.NewImportExportHandler(importExportService)

			r.Get("/", tradeHandler.ListTrades)
			r.With(requireKey).Post("/", tradeHandler.CreateTrade)

			r.Get("/export", importExportHandler.ExportTrades)
			r.With(requireKey).Post("/import", importExportHandler.ImportTrades)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", tradeHandler.GetTrade)
				r.With(requireKey).Put("/", tradeHandler.UpdateTrade)
				r.With(requireKey).Delete("/", tradeHandler.DeleteTrade)
			})
		})

		r.Route("/journal", func(r chi.Router) {
			journalHandler := handlers.NewJournalHandler(journalService)

			r.Get("/", journalHandler.ListEntries)
			r.With(requireKey).Post("/", journalHandler.CreateEntry)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", journalHandler.GetEntry)
				r.With(requireKey).Put("/", journalHandler.UpdateEntry)
				r.With(requireKey).Delete("/", journalHandler.DeleteEntry)
			})
		})

		r.Route("/analytics", func(r chi.Router) {
			analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, summaryCacheService)
			r.Get("/daily", analyticsHandler.Daily)
			r.Get("/weekly", analyticsHandler.Weekly)
			r.Get("/overview", analyticsHandler.Overview)
			r.Get("/summaries", analyticsHandler.DailySummaries)
		})
	})

	return r
}
