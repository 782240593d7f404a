package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/semantle/internal/bootstrap"
	"github.com/at-ishikawa/semantle/internal/cli"
)

func newStatsCommand() *cobra.Command {
	var enable, disable bool
	command := &cobra.Command{
		Use:   "stats",
		Short: "Show your stats across puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if enable && disable {
				return fmt.Errorf("--enable and --disable cannot be used together")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app := bootstrap.New()
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				store, err := openStore(ctx, app, cfg)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				preferences := store.LoadPreferences(ctx)
				if enable || disable {
					preferences.StatsEnabled = enable
					if err := store.SavePreferences(ctx, preferences); err != nil {
						return fmt.Errorf("store.SavePreferences > %w", err)
					}
				}

				cli.RenderStats(out, store.LoadStats(ctx))
				if !preferences.StatsEnabled {
					_, _ = fmt.Fprintln(out, "Stats tracking is disabled. Run with --enable to turn it on.")
				}
				return nil
			})
		},
	}
	command.Flags().BoolVar(&enable, "enable", false, "Turn stats tracking on")
	command.Flags().BoolVar(&disable, "disable", false, "Turn stats tracking off")
	return command
}
