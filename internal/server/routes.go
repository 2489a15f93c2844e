package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/kallias/watchboard/internal/clients/yahoo"
	"github.com/kallias/watchboard/internal/domain"
	"github.com/kallias/watchboard/internal/modules/fundamentals"
	"github.com/kallias/watchboard/internal/modules/insights"
	"github.com/kallias/watchboard/internal/modules/metrics"
	"github.com/kallias/watchboard/internal/modules/quotes"
	"github.com/kallias/watchboard/internal/modules/settings"
	"github.com/kallias/watchboard/internal/modules/watchlist"
)

// setupModuleRoutes wires every module under /api. Construction happens here
// so the modules stay free of each other except through their interfaces.
func (s *Server) setupModuleRoutes(r chi.Router) {
	yahooClient := yahoo.NewClient(s.cfg.YahooBaseURL, s.log)

	// Settings
	settingsRepo := settings.NewRepository(s.db.Conn(), s.log)
	settingsHandler := settings.NewHandler(settingsRepo, s.log)

	// Watchlist
	watchlistRepo := watchlist.NewRepository(s.db, s.log)
	watchlistService := watchlist.NewService(watchlistRepo, s.log)
	watchlistHandler := watchlist.NewHandler(watchlistService, s.log)

	// Quotes with the session price cache
	quotesService := quotes.NewService(yahooClient, quotes.NewSessionCache(s.cfg.CacheTTL), s.log)
	quotesHandler := quotes.NewHandler(quotesService, s.log)

	// Metrics engine, reading defaults from settings with config fallbacks
	metricsService := metrics.NewService(quotesService, settingsRepo, metrics.Defaults{
		Benchmark:    s.cfg.DefaultBenchmark,
		Period:       domain.Period(s.cfg.DefaultPeriod),
		RiskFreeRate: s.cfg.RiskFreeRate,
	}, s.log)
	metricsHandler := metrics.NewHandler(metricsService, s.log)

	// Fundamentals
	fundamentalsService := fundamentals.NewService(yahooClient, s.log)
	fundamentalsHandler := fundamentals.NewHandler(fundamentalsService, s.log)

	// Insights on top of the metrics engine
	insightsHandler := insights.NewHandler(metricsService, s.log)

	r.Route("/watchlist", func(r chi.Router) {
		r.Get("/", watchlistHandler.HandleList)
		r.Post("/", watchlistHandler.HandleAdd)
		r.Delete("/{symbol}", watchlistHandler.HandleRemove)
		r.Get("/export", watchlistHandler.HandleExport)
		r.Post("/import", watchlistHandler.HandleImport)
	})

	r.Route("/settings", func(r chi.Router) {
		r.Get("/", settingsHandler.HandleGetAll)
		r.Put("/{key}", settingsHandler.HandleUpdate)
	})

	r.Get("/quotes/history", quotesHandler.HandleHistory)
	r.Get("/fundamentals", fundamentalsHandler.HandleGet)

	r.Route("/metrics", func(r chi.Router) {
		r.Post("/report", metricsHandler.HandleReport)
		r.Post("/report/csv", metricsHandler.HandleReportCSV)
		r.Post("/insights", insightsHandler.HandleInsights)
	})
}
