package wordvec

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interface.go -destination=../mocks/wordvec/mock_client.go -package=mock_wordvec

// Client talks to the remote word-vector service.
type Client interface {
	// FetchModel returns the raw /model2 payload, or ErrNotFound when the service does not know the word.
	FetchModel(ctx context.Context, secret, word string) ([]byte, error)
	FetchNearby(ctx context.Context, word string) (json.RawMessage, error)
	FetchSimilarityStory(ctx context.Context, secret string) (SimilarityStory, error)
}

const (
	DefaultMaxRetryAttempts = 2
)
