package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend keeps each key in its own YAML file under a directory.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".yml")
}

func (b *FileBackend) Get(ctx context.Context, key string) ([]byte, error) {
	contents, err := os.ReadFile(b.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", b.path(key), err)
	}
	return contents, nil
}

// Put writes to a temporary file and renames it, so a reader never sees a partial value.
func (b *FileBackend) Put(ctx context.Context, key string, value []byte) error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", b.dir, err)
	}

	file, err := os.CreateTemp(b.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(value); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Sync(); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Sync > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(tmpPath, b.path(key)); err != nil {
		return fmt.Errorf("os.Rename(%s) > %w", b.path(key), err)
	}
	return nil
}
