package wordvec

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
)

// FileCache keeps validated /model2 payloads on disk, one file per secret and word,
// so a restarted game does not have to ask the service again.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(secret, word string) string {
	return filepath.Join(f.rootDir, url.PathEscape(secret), url.PathEscape(word)+".json")
}

// cache returns the stored payload, or calls fetch and stores what it returns.
// Nothing is written when fetch fails.
func (cache *FileCache) cache(secret, word string, fetch func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(secret, word)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(secret, word)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := fetch()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(localFilePath), 0755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return contents, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(secret, word string) ([]byte, error) {
	file, err := os.Open(cache.filePath(secret, word))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) remove(secret, word string) error {
	if err := os.Remove(cache.filePath(secret, word)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("os.Remove > %w", err)
	}
	return nil
}
