package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/semantle/internal/bootstrap"
	"github.com/at-ishikawa/semantle/internal/cli"
	"github.com/at-ishikawa/semantle/internal/ledger"
	"github.com/at-ishikawa/semantle/internal/vectormath"
	"github.com/at-ishikawa/semantle/internal/wordvec"
)

// newLookupCommand scores a word against today's secret without recording a guess.
func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Show how close a word is to today's secret without guessing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			identity, err := todaysPuzzle(cfg)
			if err != nil {
				return err
			}

			app := bootstrap.New()
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, cfg.Lookup.Timeout)
				defer cancel()

				cache := newCache(newLookupClient(app, cfg), cfg, identity.Secret)
				secret, err := cache.Resolve(ctx, cache.Secret())
				if err != nil {
					return fmt.Errorf("failed to resolve the secret word > %w", err)
				}
				record, err := cache.Resolve(ctx, args[0])
				if errors.Is(err, wordvec.ErrNotFound) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "I don't know the word %s.\n", args[0])
					return nil
				}
				if err != nil {
					return fmt.Errorf("cache.Resolve(%s) > %w", args[0], err)
				}

				similarity, err := vectormath.Similarity(record.Vector, secret.Vector)
				if err != nil {
					return fmt.Errorf("vectormath.Similarity > %w", err)
				}
				entry := ledger.Entry{Similarity: similarity, Word: record.Word, Percentile: record.Percentile}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: similarity %.2f %s\n", entry.Word, entry.Similarity, cli.PercentileText(entry, nil))
				return nil
			})
		},
	}
}

func newNearbyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "nearby <word>",
		Short: "Show the words the service considers nearest to a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app := bootstrap.New()
			return app.Run(cmd.Context(), func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, cfg.Lookup.Timeout)
				defer cancel()

				raw, err := newLookupClient(app, cfg).FetchNearby(ctx, args[0])
				if errors.Is(err, wordvec.ErrNotFound) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No nearby words for %s.\n", args[0])
					return nil
				}
				if err != nil {
					return fmt.Errorf("client.FetchNearby(%s) > %w", args[0], err)
				}

				var out bytes.Buffer
				if err := json.Indent(&out, raw, "", "  "); err != nil {
					return fmt.Errorf("json.Indent > %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.String())
				return nil
			})
		},
	}
}
