// Package game runs a round of the daily puzzle: it normalizes and scores guesses, detects the win,
// and keeps the session store up to date.
package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/at-ishikawa/semantle/internal/ledger"
	"github.com/at-ishikawa/semantle/internal/puzzle"
	"github.com/at-ishikawa/semantle/internal/session"
	"github.com/at-ishikawa/semantle/internal/vectormath"
	"github.com/at-ishikawa/semantle/internal/wordvec"
)

const DefaultLookupTimeout = 10 * time.Second

var (
	ErrUnknownWord  = errors.New("unknown word")
	ErrLookupFailed = errors.New("lookup failed")
	ErrUnscoreable  = errors.New("guess cannot be scored")
	ErrNotStarted   = errors.New("round has not started")
)

type Status int

const (
	// StatusIgnored is returned for a guess that is empty after normalization.
	StatusIgnored Status = iota
	StatusScored
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusIgnored:
		return "ignored"
	case StatusScored:
		return "scored"
	case StatusWon:
		return "won"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is what a submission produced. Ranked is a fresh copy the caller may keep.
type Result struct {
	Status Status
	// Guess is the normalized guess.
	Guess      string
	Entry      ledger.Entry
	IsNew      bool
	Won        bool
	GameOver   bool
	GuessCount int
	Ranked     []ledger.Entry
	// SuggestLowercase is set once per round when most guesses start with a capital letter.
	SuggestLowercase bool
}

// Board is a read-only view of the round.
type Board struct {
	Identity   puzzle.Identity
	Ranked     []ledger.Entry
	GuessCount int
	GameOver   bool
	Won        bool
	Story      *wordvec.SimilarityStory
}

type Option func(*Controller)

func WithSpellingVariants(variants puzzle.SpellingVariants) Option {
	return func(c *Controller) {
		c.spelling = variants
	}
}

func WithLookupTimeout(timeout time.Duration) Option {
	return func(c *Controller) {
		if timeout > 0 {
			c.lookupTimeout = timeout
		}
	}
}

// WithService enables the similarity story and nearby words.
func WithService(service Service) Option {
	return func(c *Controller) {
		c.service = service
	}
}

// Controller serializes guesses for one puzzle.
type Controller struct {
	identity      puzzle.Identity
	resolver      Resolver
	store         session.Store
	service       Service
	spelling      puzzle.SpellingVariants
	lookupTimeout time.Duration

	mu          sync.Mutex
	session     *PuzzleSession
	preferences session.Preferences
	stats       session.Stats
}

func NewController(identity puzzle.Identity, resolver Resolver, store session.Store, opts ...Option) *Controller {
	c := &Controller{
		identity:      identity,
		resolver:      resolver,
		store:         store,
		lookupTimeout: DefaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads the saved round and the secret's vector. It must succeed before guesses are submitted.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.preferences = c.store.LoadPreferences(ctx)
	c.stats = c.store.LoadStats(ctx)
	record := c.store.Load(ctx, c.identity.Number)

	secret, err := c.resolve(ctx, c.identity.Secret)
	if err != nil {
		return fmt.Errorf("failed to resolve the secret word > %w", err)
	}

	l, err := ledger.Restore(record.Guesses)
	if err != nil {
		slog.Default().Warn("discarding a saved session that cannot be restored",
			"puzzle", c.identity.Number,
			"error", err,
		)
		record = session.NewRecord(c.identity.Number)
		l = ledger.New()
	}
	c.session = newPuzzleSession(c.identity, secret.Vector, record, l)

	if c.service != nil {
		story, err := c.service.FetchSimilarityStory(ctx, c.identity.Secret)
		if err != nil {
			slog.Default().Warn("failed to fetch the similarity story",
				"puzzle", c.identity.Number,
				"error", err,
			)
		} else {
			c.session.Story = &story
		}
	}
	return nil
}

func (c *Controller) Identity() puzzle.Identity {
	return c.identity
}

func (c *Controller) Board() Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Board{Identity: c.identity}
	}
	return Board{
		Identity:   c.identity,
		Ranked:     c.session.Ledger.Ranked(),
		GuessCount: c.session.GuessCount,
		GameOver:   c.session.GameOver,
		Won:        c.session.Won,
		Story:      c.session.Story,
	}
}

func (c *Controller) Preferences() session.Preferences {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preferences
}

func (c *Controller) Stats() session.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// normalize strips the share markers, applies the lowercase preference and the spelling table.
func (c *Controller) normalize(raw string) string {
	guess := strings.TrimSpace(raw)
	guess = strings.Replace(guess, "!", "", 1)
	guess = strings.Replace(guess, "*", "", 1)
	guess = strings.TrimSpace(guess)
	if c.preferences.Lowercase {
		guess = strings.ToLower(guess)
	}
	return c.spelling.Canonical(guess)
}

func (c *Controller) resolve(ctx context.Context, word string) (wordvec.Record, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	record, err := c.resolver.Resolve(lookupCtx, word)
	switch {
	case err == nil:
		return record, nil
	case errors.Is(err, wordvec.ErrNotFound):
		return wordvec.Record{}, fmt.Errorf("%w: %s", ErrUnknownWord, word)
	case errors.Is(ctx.Err(), context.Canceled):
		return wordvec.Record{}, ctx.Err()
	default:
		return wordvec.Record{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
}

// SubmitGuess scores one guess. Nothing is recorded unless the guess resolves and scores.
// Repeated words are echoed with IsNew false. Once the round is over guesses are scored
// but neither counted nor saved.
func (c *Controller) SubmitGuess(ctx context.Context, raw string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return Result{}, ErrNotStarted
	}
	s := c.session

	guess := c.normalize(raw)
	if guess == "" {
		return Result{
			Status:     StatusIgnored,
			GameOver:   s.GameOver,
			GuessCount: s.GuessCount,
		}, nil
	}

	record, err := c.resolve(ctx, guess)
	if err != nil {
		return Result{}, err
	}
	similarity, err := vectormath.Similarity(record.Vector, s.SecretVector)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrUnscoreable, err)
	}

	entry, isNew := s.Ledger.Submit(guess, similarity, record.Percentile)
	result := Result{
		Status: StatusScored,
		Guess:  guess,
		Entry:  entry,
		IsNew:  isNew,
	}

	changed := false
	if isNew && !s.GameOver {
		s.GuessCount++
		changed = true
		if c.preferences.StatsEnabled {
			c.stats.RecordPlay(s.Identity.Number, s.Identity.Day)
			c.stats.RecordGuess()
		}
		if !c.preferences.Lowercase {
			result.SuggestLowercase = s.countCapitalization(guess)
		}
	}

	if !s.GameOver && strings.ToLower(guess) == s.Identity.Secret {
		s.GameOver = true
		s.Won = true
		changed = true
		result.Status = StatusWon
		result.Won = true
		if c.preferences.StatsEnabled {
			c.stats.RecordEnd(s.Identity.Day, true)
		}
	}

	if changed {
		c.persist(ctx)
	}

	result.GameOver = s.GameOver
	result.GuessCount = s.GuessCount
	result.Ranked = s.Ledger.Ranked()
	return result, nil
}

// GiveUp ends the round without a win and returns the secret.
func (c *Controller) GiveUp(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session == nil {
		return "", ErrNotStarted
	}
	s := c.session
	if s.GameOver {
		return s.Identity.Secret, nil
	}

	s.GameOver = true
	s.Won = false
	if c.preferences.StatsEnabled {
		c.stats.RecordPlay(s.Identity.Number, s.Identity.Day)
		c.stats.RecordEnd(s.Identity.Day, false)
	}
	c.persist(ctx)
	return s.Identity.Secret, nil
}

// SetLowercase changes the lowercase preference for later guesses and saves it.
func (c *Controller) SetLowercase(ctx context.Context, lowercase bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.preferences.Lowercase = lowercase
	if err := c.store.SavePreferences(ctx, c.preferences); err != nil {
		slog.Default().Warn("failed to save preferences", "error", err)
	}
}

// Nearby returns the service's opaque nearby-words document, or nil when it is unavailable.
func (c *Controller) Nearby(ctx context.Context, word string) json.RawMessage {
	if c.service == nil {
		return nil
	}
	lookupCtx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
	defer cancel()

	nearby, err := c.service.FetchNearby(lookupCtx, strings.TrimSpace(word))
	if err != nil {
		slog.Default().Warn("failed to fetch nearby words",
			"word", word,
			"error", err,
		)
		return nil
	}
	return nearby
}

// persist saves the round and stats. Failures only mean the round will not resume.
func (c *Controller) persist(ctx context.Context) {
	if err := c.store.Save(ctx, c.session.record()); err != nil {
		slog.Default().Warn("failed to save the session",
			"puzzle", c.session.Identity.Number,
			"error", err,
		)
	}
	if !c.preferences.StatsEnabled {
		return
	}
	if err := c.store.SaveStats(ctx, c.stats); err != nil {
		slog.Default().Warn("failed to save stats", "error", err)
	}
}
