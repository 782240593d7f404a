// Package ledger keeps the deduplicated guesses of one puzzle and ranks them by similarity.
package ledger

import (
	"fmt"
	"sort"
)

// Entry is one distinct guess. Entries never change once created.
type Entry struct {
	Similarity float64 `yaml:"similarity" json:"similarity"`
	Word       string  `yaml:"word" json:"word"`
	Percentile *int    `yaml:"percentile,omitempty" json:"percentile,omitempty"`
	// Ordinal is the 1-based position of the word's first guess.
	Ordinal int `yaml:"ordinal" json:"ordinal"`
}

type Ledger struct {
	entries []Entry
	index   map[string]int
}

func New() *Ledger {
	return &Ledger{
		entries: make([]Entry, 0),
		index:   make(map[string]int),
	}
}

// Restore rebuilds a ledger from persisted entries.
// Entries must have distinct words and ordinals 1..n.
func Restore(entries []Entry) (*Ledger, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Ordinal < sorted[j].Ordinal
	})

	l := New()
	for i, entry := range sorted {
		if entry.Ordinal != i+1 {
			return nil, fmt.Errorf("entry %q has ordinal %d, want %d", entry.Word, entry.Ordinal, i+1)
		}
		if _, ok := l.index[entry.Word]; ok {
			return nil, fmt.Errorf("entry %q is duplicated", entry.Word)
		}
		l.index[entry.Word] = len(l.entries)
		l.entries = append(l.entries, entry)
	}
	return l, nil
}

// Submit records a guess. The word must already be normalized.
// A word that was guessed before returns its original entry and false; nothing is updated.
func (l *Ledger) Submit(word string, similarity float64, percentile *int) (Entry, bool) {
	if i, ok := l.index[word]; ok {
		return l.entries[i], false
	}

	entry := Entry{
		Similarity: similarity,
		Word:       word,
		Ordinal:    len(l.entries) + 1,
	}
	if percentile != nil {
		p := *percentile
		entry.Percentile = &p
	}
	l.index[word] = len(l.entries)
	l.entries = append(l.entries, entry)
	return entry, true
}

func (l *Ledger) Get(word string) (Entry, bool) {
	i, ok := l.index[word]
	if !ok {
		return Entry{}, false
	}
	return l.entries[i], true
}

func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns the guesses in the order they were first made.
func (l *Ledger) Entries() []Entry {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Ranked returns the guesses by descending similarity; equal similarities keep guess order.
func (l *Ledger) Ranked() []Entry {
	ranked := l.Entries()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Similarity > ranked[j].Similarity
	})
	return ranked
}
