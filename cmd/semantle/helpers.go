package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/semantle/internal/bootstrap"
	"github.com/at-ishikawa/semantle/internal/config"
	"github.com/at-ishikawa/semantle/internal/database"
	"github.com/at-ishikawa/semantle/internal/game"
	"github.com/at-ishikawa/semantle/internal/puzzle"
	"github.com/at-ishikawa/semantle/internal/session"
	"github.com/at-ishikawa/semantle/internal/wordvec"
)

// StoreFlag selects the session backend from the command line.
type StoreFlag string

const (
	StoreFile   StoreFlag = config.SessionBackendFile
	StoreMySQL  StoreFlag = config.SessionBackendMySQL
	StoreSQLite StoreFlag = config.SessionBackendSQLite
)

var (
	_         pflag.Value = (*StoreFlag)(nil)
	allStores             = []StoreFlag{StoreFile, StoreSQLite, StoreMySQL}
)

// Set implements pflag.Value.
func (s *StoreFlag) Set(v string) error {
	for _, store := range allStores {
		if v == string(store) {
			*s = store
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, valid values are %v", v, allStores)
}

// String implements pflag.Value.
func (s *StoreFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *StoreFlag) Type() string {
	return "StoreFlag"
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if storeFlag != "" {
		cfg.Session.Backend = string(storeFlag)
	}
	return cfg, nil
}

// openStore opens the configured session backend. Database handles are closed by app.
func openStore(ctx context.Context, app *bootstrap.App, cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendSQLite:
		db, err := database.OpenSQLite(cfg.Session.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("database.OpenSQLite > %w", err)
		}
		app.AddCloser("sqlite", db)
		if err := database.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("database.Migrate > %w", err)
		}
		return session.NewStore(session.NewSQLBackend(db)), nil
	case config.SessionBackendMySQL:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("database.Open > %w", err)
		}
		app.AddCloser("mysql", db)
		if err := database.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("database.Migrate > %w", err)
		}
		return session.NewStore(session.NewSQLBackend(db)), nil
	default:
		return session.NewStore(session.NewFileBackend(cfg.Session.Directory)), nil
	}
}

func todaysPuzzle(cfg *config.Config) (puzzle.Identity, error) {
	words, err := puzzle.LoadSecretWords(cfg.Puzzle.SecretWordsFile)
	if err != nil {
		return puzzle.Identity{}, fmt.Errorf("puzzle.LoadSecretWords > %w", err)
	}
	return words.Today(now()), nil
}

func newLookupClient(app *bootstrap.App, cfg *config.Config) *wordvec.HTTPClient {
	client := wordvec.NewHTTPClient(
		cfg.Lookup.BaseURL,
		cfg.Lookup.Timeout,
		cfg.Lookup.MaxRetryAttempts,
		cfg.Lookup.RateLimitPerSecond,
	)
	app.AddCloser("lookup client", client)
	return client
}

func newCache(client wordvec.Client, cfg *config.Config, secret string) *wordvec.Cache {
	var opts []wordvec.CacheOption
	if cfg.Lookup.CacheDirectory != "" {
		opts = append(opts, wordvec.WithFileCache(wordvec.NewFileCache(cfg.Lookup.CacheDirectory)))
	}
	return wordvec.NewCache(client, secret, opts...)
}

// newController builds today's round. Resources it opens are released by app.
func newController(ctx context.Context, app *bootstrap.App, cfg *config.Config) (*game.Controller, error) {
	identity, err := todaysPuzzle(cfg)
	if err != nil {
		return nil, err
	}
	variants, err := puzzle.LoadSpellingVariants(cfg.Puzzle.SpellingVariantsFile)
	if err != nil {
		return nil, fmt.Errorf("puzzle.LoadSpellingVariants > %w", err)
	}
	store, err := openStore(ctx, app, cfg)
	if err != nil {
		return nil, err
	}

	client := newLookupClient(app, cfg)
	return game.NewController(
		identity,
		newCache(client, cfg, identity.Secret),
		store,
		game.WithSpellingVariants(variants),
		game.WithLookupTimeout(cfg.Lookup.Timeout),
		game.WithService(client),
	), nil
}
