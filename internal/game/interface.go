package game

import (
	"context"
	"encoding/json"

	"github.com/at-ishikawa/semantle/internal/wordvec"
)

//go:generate mockgen -source=interface.go -destination=../mocks/game/mock_interface.go -package=mock_game

// Resolver turns a word into its vector for the active secret. *wordvec.Cache implements it.
type Resolver interface {
	Resolve(ctx context.Context, word string) (wordvec.Record, error)
}

// Service serves the lookups that are only shown to the player. *wordvec.HTTPClient implements it.
type Service interface {
	FetchNearby(ctx context.Context, word string) (json.RawMessage, error)
	FetchSimilarityStory(ctx context.Context, secret string) (wordvec.SimilarityStory, error)
}
