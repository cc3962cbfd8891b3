package handlers

import (
	"log/slog"

	"github.com/vangoframework/frame/internal/config"
	"github.com/vangoframework/frame/internal/shell"
)

// Handlers contains all HTTP handler dependencies.
type Handlers struct {
	config *config.Config
	app    *shell.App
	css    []byte
	logger *slog.Logger
}

// New creates a new Handlers instance for a mounted app.
func New(cfg *config.Config, app *shell.App, logger *slog.Logger) *Handlers {
	return &Handlers{
		config: cfg,
		app:    app,
		css:    []byte(app.Theme().Stylesheet()),
		logger: logger,
	}
}
