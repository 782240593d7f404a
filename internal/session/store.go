package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=store.go -destination=../mocks/session/mock_store.go -package=mock_session

// Store persists the current puzzle record and the player's settings.
// Loading never fails: a missing or unreadable value is treated as no prior data.
type Store interface {
	Load(ctx context.Context, puzzleNumber int) Record
	Save(ctx context.Context, record Record) error
	LoadPreferences(ctx context.Context) Preferences
	SavePreferences(ctx context.Context, preferences Preferences) error
	LoadStats(ctx context.Context) Stats
	SaveStats(ctx context.Context, stats Stats) error
}

// BackendStore encodes values as YAML documents in a Backend.
type BackendStore struct {
	backend Backend
}

func NewStore(backend Backend) *BackendStore {
	return &BackendStore{backend: backend}
}

func load[T any](ctx context.Context, backend Backend, key string) (T, bool) {
	var value T
	contents, err := backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return value, false
	}
	if err != nil {
		slog.Default().Warn("failed to read a saved value",
			"key", key,
			"error", err,
		)
		return value, false
	}
	if err := yaml.Unmarshal(contents, &value); err != nil {
		slog.Default().Warn("failed to parse a saved value",
			"key", key,
			"error", err,
		)
		var zero T
		return zero, false
	}
	return value, true
}

func save[T any](ctx context.Context, backend Backend, key string, value T) error {
	contents, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("yaml.Marshal(%s) > %w", key, err)
	}
	if err := backend.Put(ctx, key, contents); err != nil {
		return fmt.Errorf("backend.Put(%s) > %w", key, err)
	}
	return nil
}

// Load returns the saved record for puzzleNumber, or a fresh one.
// A record saved for another puzzle is ignored and gets replaced by the next Save.
func (s *BackendStore) Load(ctx context.Context, puzzleNumber int) Record {
	record, ok := load[Record](ctx, s.backend, recordKey)
	if !ok {
		return NewRecord(puzzleNumber)
	}
	if record.PuzzleNumber != puzzleNumber {
		slog.Default().Debug("discarding a session of another puzzle",
			"saved", record.PuzzleNumber,
			"current", puzzleNumber,
		)
		return NewRecord(puzzleNumber)
	}
	return record
}

func (s *BackendStore) Save(ctx context.Context, record Record) error {
	return save(ctx, s.backend, recordKey, record)
}

func (s *BackendStore) LoadPreferences(ctx context.Context) Preferences {
	preferences, ok := load[Preferences](ctx, s.backend, preferencesKey)
	if !ok {
		return DefaultPreferences()
	}
	return preferences
}

func (s *BackendStore) SavePreferences(ctx context.Context, preferences Preferences) error {
	return save(ctx, s.backend, preferencesKey, preferences)
}

func (s *BackendStore) LoadStats(ctx context.Context) Stats {
	stats, _ := load[Stats](ctx, s.backend, statsKey)
	return stats
}

func (s *BackendStore) SaveStats(ctx context.Context, stats Stats) error {
	return save(ctx, s.backend, statsKey, stats)
}
