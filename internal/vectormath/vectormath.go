// Package vectormath provides the numeric operations used to compare word embeddings.
package vectormath

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDimensionMismatch = errors.New("vectors have different dimensions")
	ErrDegenerateVector  = errors.New("vector has zero magnitude")
)

// Vector is a word embedding. Vectors must not be modified once obtained.
type Vector []float64

func Magnitude(v Vector) float64 {
	var sum float64
	for _, value := range v {
		sum += value * value
	}
	return math.Sqrt(sum)
}

func Dot(v1, v2 Vector) (float64, error) {
	if len(v1) != len(v2) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v1), len(v2))
	}
	var sum float64
	for i := range v1 {
		sum += v1[i] * v2[i]
	}
	return sum, nil
}

// CosineSimilarity returns a value in [-1, 1].
// A zero vector has no direction, so it is reported as ErrDegenerateVector instead of NaN.
func CosineSimilarity(v1, v2 Vector) (float64, error) {
	if len(v1) != len(v2) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(v1), len(v2))
	}
	// Components are scaled into [-1, 1] first so that large finite values cannot overflow.
	n1, n2 := normalizeByMaxAbs(v1), normalizeByMaxAbs(v2)
	if n1 == nil || n2 == nil {
		return 0, ErrDegenerateVector
	}
	dot, err := Dot(n1, n2)
	if err != nil {
		return 0, err
	}
	denominator := Magnitude(n1) * Magnitude(n2)
	if denominator == 0 || math.IsNaN(denominator) || math.IsInf(denominator, 0) {
		return 0, ErrDegenerateVector
	}
	cos := dot / denominator
	if math.IsNaN(cos) || math.IsInf(cos, 0) {
		return 0, ErrDegenerateVector
	}
	return math.Max(-1, math.Min(1, cos)), nil
}

// normalizeByMaxAbs returns nil when v has no finite non-zero component to scale by.
func normalizeByMaxAbs(v Vector) Vector {
	var maxAbs float64
	for _, value := range v {
		maxAbs = math.Max(maxAbs, math.Abs(value))
	}
	if maxAbs == 0 || math.IsNaN(maxAbs) || math.IsInf(maxAbs, 0) {
		return nil
	}
	out := make(Vector, len(v))
	for i, value := range v {
		out[i] = value / maxAbs
	}
	return out
}

// Similarity is the cosine similarity on the 0-100 display scale.
func Similarity(guess, secret Vector) (float64, error) {
	cos, err := CosineSimilarity(guess, secret)
	if err != nil {
		return 0, err
	}
	return cos * 100.0, nil
}

func Scale(v Vector, s float64) Vector {
	out := make(Vector, len(v))
	for i, value := range v {
		out[i] = value * s
	}
	return out
}
