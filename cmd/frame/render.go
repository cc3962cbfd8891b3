package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vangoframework/frame/internal/config"
)

func newRenderCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render [path]",
		Short: "Render the document for a path to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger := newLogger(cfg, flags, cmd.ErrOrStderr())

			app, err := mountApp(cfg, logger)
			if err != nil {
				return err
			}

			m, err := app.Render(cmd.Context(), cmd.OutOrStdout(), path)
			if err != nil {
				return err
			}
			if m.NotFound() {
				logger.Debug("path matched the catch-all route", "path", m.Path)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), "\n")
			return err
		},
	}
}
