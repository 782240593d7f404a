// Package puzzle derives the daily puzzle identity and secret word.
package puzzle

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	// InitialDay is the day number (days since the Unix epoch) of puzzle 0.
	InitialDay int64 = 19021

	millisecondsPerDay int64 = 86400000
)

//go:embed secret_words.txt
var embeddedSecretWords string

// Identity identifies the active puzzle. It is recomputed from the calendar day and never mutated.
type Identity struct {
	Number int
	Secret string
	// Day is the UTC day number the puzzle belongs to.
	Day int64
}

type SecretWords struct {
	words []string
}

// LoadSecretWords reads one word per line from path, or the embedded list when path is empty.
// Blank lines and lines starting with '#' are ignored.
func LoadSecretWords(path string) (SecretWords, error) {
	if path == "" {
		return parseSecretWords(strings.NewReader(embeddedSecretWords))
	}

	file, err := os.Open(path)
	if err != nil {
		return SecretWords{}, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	return parseSecretWords(file)
}

func NewSecretWords(words []string) SecretWords {
	return SecretWords{words: words}
}

func parseSecretWords(r io.Reader) (SecretWords, error) {
	words := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return SecretWords{}, fmt.Errorf("scanner.Scan > %w", err)
	}
	if len(words) == 0 {
		return SecretWords{}, fmt.Errorf("no secret words found")
	}
	return SecretWords{words: words}, nil
}

func (w SecretWords) Len() int {
	return len(w.words)
}

// DayOf returns the number of whole UTC days since the Unix epoch.
func DayOf(now time.Time) int64 {
	return now.UnixMilli() / millisecondsPerDay
}

// PuzzleNumber maps a day to an index into the word list.
// Days before InitialDay wrap around instead of producing a negative index.
func (w SecretWords) PuzzleNumber(day int64) int {
	n := int64(len(w.words))
	number := (day - InitialDay) % n
	if number < 0 {
		number += n
	}
	return int(number)
}

func (w SecretWords) Identity(day int64) Identity {
	number := w.PuzzleNumber(day)
	return Identity{
		Number: number,
		Secret: strings.ToLower(w.words[number]),
		Day:    day,
	}
}

func (w SecretWords) Today(now time.Time) Identity {
	return w.Identity(DayOf(now))
}
