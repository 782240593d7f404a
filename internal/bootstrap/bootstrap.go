// Package bootstrap wires the resources a command opens and releases them when it ends.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
)

type hook struct {
	name string
	fn   func(ctx context.Context) error
}

// App releases registered resources after a command, whether it finished or was interrupted.
type App struct {
	mu    sync.Mutex
	hooks []hook
}

func New() *App {
	return &App{}
}

// AddShutdownHook registers fn to run once the command ends. Hooks run in reverse order (LIFO).
func (a *App) AddShutdownHook(name string, fn func(ctx context.Context) error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hooks = append(a.hooks, hook{name: name, fn: fn})
}

// AddCloser registers the Close method of a resource such as a database handle.
func (a *App) AddCloser(name string, closer interface{ Close() error }) {
	a.AddShutdownHook(name, func(context.Context) error {
		return closer.Close()
	})
}

// Run executes run with a context canceled on interrupt, then runs the shutdown hooks.
// The error of run and the errors of the hooks are joined.
func (a *App) Run(ctx context.Context, run func(ctx context.Context) error) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx)
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		slog.Default().Debug("interrupted, shutting down")
	case runErr = <-errCh:
	}
	return errors.Join(runErr, a.shutdown(context.Background()))
}

func (a *App) shutdown(ctx context.Context) error {
	a.mu.Lock()
	hooks := a.hooks
	a.hooks = nil
	a.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i].fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s > %w", hooks[i].name, err))
		}
	}
	return errors.Join(errs...)
}
