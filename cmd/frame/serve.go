package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vangoframework/frame/internal/config"
	"github.com/vangoframework/frame/internal/handlers"
	"github.com/vangoframework/frame/internal/server"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
}

func runServe(cmd *cobra.Command, flags *rootFlags) error {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logger
	logger := newLogger(cfg, flags, os.Stdout)

	// Application
	app, err := mountApp(cfg, logger)
	if err != nil {
		return err
	}

	// Handlers
	h := handlers.New(cfg, app, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "port", cfg.Port, "environment", cfg.Environment, "version", version)
	return server.New(":"+cfg.Port, h.Router(logger), cfg.ShutdownTimeout, logger).Run(ctx)
}
