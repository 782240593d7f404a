package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/semantle/internal/bootstrap"
	"github.com/at-ishikawa/semantle/internal/cli"
)

func newPlayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play today's puzzle interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app := bootstrap.New()
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				controller, err := newController(ctx, app, cfg)
				if err != nil {
					return err
				}
				if err := controller.Start(ctx); err != nil {
					return fmt.Errorf("controller.Start > %w", err)
				}

				playCLI := cli.NewPlayCLI(controller, cmd.InOrStdin(), cmd.OutOrStdout())
				playCLI.Welcome()
				return playCLI.Run(ctx, playCLI)
			})
		},
	}
}
