package puzzle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSecretWords(t *testing.T) {
	t.Run("embedded list", func(t *testing.T) {
		words, err := LoadSecretWords("")
		require.NoError(t, err)
		assert.Greater(t, words.Len(), 0)
	})

	tests := []struct {
		name     string
		contents string
		wantLen  int
		wantErr  bool
	}{
		{
			name:     "comments and blank lines are skipped",
			contents: "# header\ncat\n\n  dog  \n",
			wantLen:  2,
		},
		{
			name:     "empty file",
			contents: "# nothing\n",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "words.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0644))

			words, err := LoadSecretWords(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, words.Len())
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSecretWords(filepath.Join(t.TempDir(), "missing.txt"))
		assert.Error(t, err)
	})
}

func TestSecretWords_Identity(t *testing.T) {
	words := NewSecretWords([]string{"Cat", "dog", "bird"})

	tests := []struct {
		name       string
		day        int64
		wantNumber int
		wantSecret string
	}{
		{name: "initial day", day: InitialDay, wantNumber: 0, wantSecret: "cat"},
		{name: "next day", day: InitialDay + 1, wantNumber: 1, wantSecret: "dog"},
		{name: "wraps around", day: InitialDay + 4, wantNumber: 1, wantSecret: "dog"},
		{name: "before initial day", day: InitialDay - 1, wantNumber: 2, wantSecret: "bird"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := words.Identity(tt.day)
			assert.Equal(t, Identity{Number: tt.wantNumber, Secret: tt.wantSecret, Day: tt.day}, got)
		})
	}
}

func TestSecretWords_Today(t *testing.T) {
	words := NewSecretWords([]string{"cat", "dog", "bird"})
	morning := time.Date(2026, 10, 15, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2026, 10, 15, 23, 59, 59, 0, time.UTC)
	tomorrow := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, words.Today(morning), words.Today(evening), "identity must be stable for the whole day")
	assert.NotEqual(t, words.Today(morning).Number, words.Today(tomorrow).Number)
}

func TestSpellingVariants(t *testing.T) {
	variants, err := LoadSpellingVariants("")
	require.NoError(t, err)

	tests := []struct {
		name string
		word string
		want string
	}{
		{name: "british spelling", word: "colour", want: "color"},
		{name: "already canonical", word: "color", want: "color"},
		{name: "no partial match", word: "colours", want: "colours"},
		{name: "case sensitive", word: "Colour", want: "Colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, variants.Canonical(tt.word))
		})
	}

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "variants.yml")
		require.NoError(t, os.WriteFile(path, []byte("mum: mom\n"), 0644))

		custom, err := LoadSpellingVariants(path)
		require.NoError(t, err)
		assert.Equal(t, SpellingVariants{"mum": "mom"}, custom)
	})
}
