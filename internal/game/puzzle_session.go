package game

import (
	"unicode"
	"unicode/utf8"

	"github.com/at-ishikawa/semantle/internal/ledger"
	"github.com/at-ishikawa/semantle/internal/puzzle"
	"github.com/at-ishikawa/semantle/internal/session"
	"github.com/at-ishikawa/semantle/internal/vectormath"
	"github.com/at-ishikawa/semantle/internal/wordvec"
)

const (
	capitalizedGuessesThreshold = 2
	capitalizedGuessesRatio     = 0.4
)

// PuzzleSession is the state of one puzzle. It is built once per Identity and owned by a Controller.
type PuzzleSession struct {
	Identity     puzzle.Identity
	SecretVector vectormath.Vector
	Ledger       *ledger.Ledger
	GuessCount   int
	GameOver     bool
	Won          bool
	// Story is nil when the service could not provide it.
	Story *wordvec.SimilarityStory

	capitalizedGuesses int
	lowercaseSuggested bool
}

func newPuzzleSession(identity puzzle.Identity, secretVector vectormath.Vector, record session.Record, l *ledger.Ledger) *PuzzleSession {
	s := &PuzzleSession{
		Identity:     identity,
		SecretVector: secretVector,
		Ledger:       l,
		GuessCount:   record.GuessCount,
		GameOver:     record.GameOver,
		Won:          record.Won,
	}
	for _, entry := range l.Entries() {
		if isCapitalized(entry.Word) {
			s.capitalizedGuesses++
		}
	}
	return s
}

func (s *PuzzleSession) record() session.Record {
	return session.Record{
		PuzzleNumber: s.Identity.Number,
		Guesses:      s.Ledger.Entries(),
		GameOver:     s.GameOver,
		Won:          s.Won,
		GuessCount:   s.GuessCount,
	}
}

// countCapitalization tracks new guesses and reports once when most of them start with a capital letter.
func (s *PuzzleSession) countCapitalization(word string) bool {
	if isCapitalized(word) {
		s.capitalizedGuesses++
	}
	if s.lowercaseSuggested || s.capitalizedGuesses < capitalizedGuessesThreshold {
		return false
	}
	if float64(s.capitalizedGuesses)/float64(s.Ledger.Len()) <= capitalizedGuessesRatio {
		return false
	}
	s.lowercaseSuggested = true
	return true
}

func isCapitalized(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}
