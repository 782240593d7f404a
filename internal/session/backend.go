package session

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Backend stores opaque values under string keys. Put must replace the whole value atomically.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
