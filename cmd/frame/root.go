package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vangoframework/frame/internal/assets"
	"github.com/vangoframework/frame/internal/config"
	"github.com/vangoframework/frame/internal/shell"
)

var version = "dev"

type rootFlags struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "frame",
		Short:         "Frame serves the application shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newRoutesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(cfg *config.Config, flags *rootFlags, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// mountApp loads the host document and mounts the application into it.
func mountApp(cfg *config.Config, logger *slog.Logger) (*shell.App, error) {
	host := assets.HostDocument()
	if cfg.HostDocument != "" {
		b, err := os.ReadFile(cfg.HostDocument)
		if err != nil {
			return nil, fmt.Errorf("failed to read host document: %w", err)
		}
		host = b
	}

	app, err := shell.Mount(host,
		shell.WithMountID(cfg.MountID),
		shell.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mount application: %w", err)
	}
	return app, nil
}
