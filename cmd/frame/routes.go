package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vangoframework/frame/internal/config"
)

func newRoutesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			app, err := mountApp(cfg, newLogger(cfg, flags, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			for _, p := range app.Table().Routes() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}
