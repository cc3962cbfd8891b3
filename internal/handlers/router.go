package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vangoframework/frame/internal/assets"
	"github.com/vangoframework/frame/internal/middleware"
)

// Router wires the middleware stack and every route.
func (h *Handlers) Router(logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	if h.config.MetricsEnabled {
		r.Use(middleware.Metrics)
	}
	if h.config.RateLimitRPM > 0 {
		r.Use(httprate.LimitByIP(h.config.RateLimitRPM, time.Minute))
	}

	// Health check
	r.Get("/health", h.Health)

	if h.config.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Static files
	r.Get("/static/theme.css", h.ThemeCSS)
	r.Handle("/static/*", http.StripPrefix("/static", assets.Handler()))

	// Every other path belongs to the shell
	r.Get("/", h.Page)
	r.Get("/*", h.Page)
	r.Head("/*", h.Page)

	return r
}
