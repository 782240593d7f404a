package wordvec

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Cache memoizes resolved words for one secret.
// Only successful lookups are kept; a word that was not found is asked for again next time.
type Cache struct {
	client    Client
	secret    string
	fileCache *FileCache

	mu      sync.Mutex
	records map[string]Record
}

type CacheOption func(*Cache)

// WithFileCache persists validated payloads under the given cache.
func WithFileCache(fileCache *FileCache) CacheOption {
	return func(c *Cache) {
		c.fileCache = fileCache
	}
}

func NewCache(client Client, secret string, opts ...CacheOption) *Cache {
	c := &Cache{
		client:  client,
		secret:  secret,
		records: make(map[string]Record),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// normalizeKey trims the word. Case is kept because the model distinguishes "Nice" from "nice".
func normalizeKey(word string) string {
	return strings.TrimSpace(word)
}

func (c *Cache) Secret() string {
	return c.secret
}

func (c *Cache) lookup(key string) (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	record, ok := c.records[key]
	return record, ok
}

// Resolve returns the word's vector and percentile, asking the service on a cache miss.
// It returns ErrNotFound for unknown words and ErrLookupFailed when the service is unreachable.
func (c *Cache) Resolve(ctx context.Context, word string) (Record, error) {
	key := normalizeKey(word)
	if key == "" {
		return Record{}, fmt.Errorf("%w: empty word", ErrNotFound)
	}
	if record, ok := c.lookup(key); ok {
		return record, nil
	}

	body, err := c.fetch(ctx, key)
	if err != nil {
		return Record{}, err
	}
	response, err := parseModelResponse(body)
	if err != nil {
		if c.fileCache != nil {
			if removeErr := c.fileCache.remove(c.secret, key); removeErr != nil {
				slog.Default().Warn("failed to remove an invalid cached response",
					"word", key,
					"error", removeErr,
				)
			}
		}
		return Record{}, err
	}

	record := Record{
		Word:       key,
		Vector:     response.Vec,
		Percentile: response.Percentile,
	}
	c.mu.Lock()
	c.records[key] = record
	c.mu.Unlock()
	return record, nil
}

func (c *Cache) fetch(ctx context.Context, key string) ([]byte, error) {
	if c.fileCache == nil {
		body, err := c.client.FetchModel(ctx, c.secret, key)
		if err != nil {
			return nil, fmt.Errorf("client.FetchModel > %w", err)
		}
		return body, nil
	}

	body, err := c.fileCache.cache(c.secret, key, func() ([]byte, error) {
		body, err := c.client.FetchModel(ctx, c.secret, key)
		if err != nil {
			return nil, fmt.Errorf("client.FetchModel > %w", err)
		}
		// only valid payloads reach the disk
		if _, err := parseModelResponse(body); err != nil {
			return nil, err
		}
		return body, nil
	})
	if err != nil && body == nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrLookupFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: fileCache.cache > %v", ErrLookupFailed, err)
	}
	if err != nil {
		slog.Default().Warn("failed to store a word vector in the file cache",
			"word", key,
			"error", err,
		)
	}
	return body, nil
}
