// Package wordvec resolves word embeddings from the remote word-vector service.
package wordvec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/at-ishikawa/semantle/internal/vectormath"
)

const (
	// FoundPercentile is the percentile the service reports for the secret word itself.
	FoundPercentile = 1000
	MinPercentile   = 1
)

var (
	// ErrNotFound means the service does not know the word, or answered with something unusable.
	ErrNotFound = errors.New("word not found")
	// ErrLookupFailed means the service could not be reached or kept failing.
	ErrLookupFailed = errors.New("word lookup failed")
)

// Record is a resolved word. Percentile is nil when the word is outside the secret's top 1000.
type Record struct {
	Word       string
	Vector     vectormath.Vector
	Percentile *int
}

// ModelResponse is the payload of /model2/{secret}/{word}.
type ModelResponse struct {
	Vec        []float64 `json:"vec"`
	Percentile *int      `json:"percentile,omitempty"`
}

func (r ModelResponse) validate() error {
	if len(r.Vec) == 0 {
		return fmt.Errorf("vec is missing")
	}
	for i, value := range r.Vec {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("vec[%d] is not a finite number", i)
		}
	}
	if r.Percentile != nil && (*r.Percentile < MinPercentile || *r.Percentile > FoundPercentile) {
		return fmt.Errorf("percentile %d is out of range", *r.Percentile)
	}
	return nil
}

func parseModelResponse(body []byte) (ModelResponse, error) {
	var response ModelResponse
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return response, fmt.Errorf("%w: empty response", ErrNotFound)
	}
	if err := json.Unmarshal(trimmed, &response); err != nil {
		return response, fmt.Errorf("%w: json.Unmarshal > %v", ErrNotFound, err)
	}
	if err := response.validate(); err != nil {
		return response, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return response, nil
}

// SimilarityStory describes how similar the closest words are to the secret.
// Top is the nearest word, Top10 the tenth nearest and Rest the thousandth.
type SimilarityStory struct {
	Top   float64 `json:"top"`
	Top10 float64 `json:"top10"`
	Rest  float64 `json:"rest"`
}
