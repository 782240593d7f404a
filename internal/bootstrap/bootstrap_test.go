package bootstrap

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := New()
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run returns error", func(t *testing.T) {
		app := New()
		want := errors.New("run failed")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
	})

	t.Run("hooks run in LIFO order after run finishes", func(t *testing.T) {
		app := New()
		var mu sync.Mutex
		var order []string
		record := func(name string) func(ctx context.Context) error {
			return func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			}
		}

		app.AddShutdownHook("first", record("first"))
		app.AddShutdownHook("second", record("second"))
		app.AddCloser("third", closerFunc(func() error {
			return record("third")(context.Background())
		}))

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"third", "second", "first"}, order)
	})

	t.Run("hooks run on context cancel", func(t *testing.T) {
		app := New()
		hookCalled := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.AddShutdownHook("database", func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})

	t.Run("hook errors are joined with the run error", func(t *testing.T) {
		app := New()
		runErr := errors.New("run failed")
		closeErr := errors.New("close failed")
		app.AddCloser("database", closerFunc(func() error {
			return closeErr
		}))

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return runErr
		})
		assert.ErrorIs(t, err, runErr)
		assert.ErrorIs(t, err, closeErr)
		assert.Contains(t, err.Error(), "database > close failed")
	})

	t.Run("hooks run only once", func(t *testing.T) {
		app := New()
		calls := 0
		app.AddShutdownHook("counter", func(ctx context.Context) error {
			calls++
			return nil
		})

		require.NoError(t, app.Run(context.Background(), func(ctx context.Context) error { return nil }))
		require.NoError(t, app.Run(context.Background(), func(ctx context.Context) error { return nil }))
		assert.Equal(t, 1, calls)
	})
}
