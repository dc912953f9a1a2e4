package main

import (
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wifi-on-ice/dashboard/handlers"
	"github.com/wifi-on-ice/dashboard/internal/config"
)

// NewRouter wires every endpoint of the dashboard service
func NewRouter(cfg *config.Config, source handlers.MeasurementSource, tmpl *template.Template) http.Handler {
	dashboardHandler := handlers.NewDashboardHandler(source, cfg.QueryTimeout)
	healthHandler := handlers.NewHealthHandler(source)
	pageHandler := handlers.NewPageHandler(tmpl)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", healthHandler.GetHealth)
	r.Get("/healthz", healthHandler.GetHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/routes", dashboardHandler.GetRoutes)
	r.Get("/api/routes/stats", dashboardHandler.GetRouteStats)
	r.Get("/api/dashboard", dashboardHandler.GetDashboard)
	r.Post("/api/cache/invalidate", dashboardHandler.InvalidateCache)

	// Static file serving overrides the embedded page when configured
	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		r.Get("/", pageHandler.GetIndex)
	}

	return r
}
