package handlers

import (
	"net/http"
	"time"

	"github.com/vangoframework/frame/internal/metrics"
)

// Page renders the shell for any path. Unmatched paths render the not
// found content with a 200, the same way a client-side router would.
func (h *Handlers) Page(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")

	m, err := h.app.Render(r.Context(), w, r.URL.Path)
	if err != nil {
		metrics.ObserveRender(metrics.OutcomeError, time.Since(start))
		h.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	outcome := metrics.OutcomePage
	if m.NotFound() {
		outcome = metrics.OutcomeNotFound
	}
	metrics.ObserveRender(outcome, time.Since(start))
}

// ThemeCSS serves the theme stylesheet.
func (h *Handlers) ThemeCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if h.config.IsProduction() {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}
	w.Write(h.css)
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}
