// Package session persists the state of the current puzzle, the player's preferences and stats.
package session

import (
	"github.com/at-ishikawa/semantle/internal/ledger"
)

const (
	recordKey      = "session"
	preferencesKey = "preferences"
	statsKey       = "stats"
)

// Record is the saved state of one puzzle.
type Record struct {
	PuzzleNumber int            `yaml:"puzzle_number"`
	Guesses      []ledger.Entry `yaml:"guesses,omitempty"`
	GameOver     bool           `yaml:"game_over"`
	// Won tells a finished round apart from one that was given up.
	Won        bool `yaml:"won,omitempty"`
	GuessCount int  `yaml:"guess_count"`
}

func NewRecord(puzzleNumber int) Record {
	return Record{
		PuzzleNumber: puzzleNumber,
	}
}

type Preferences struct {
	// Lowercase downcases every guess before it is looked up.
	Lowercase    bool `yaml:"lowercase"`
	StatsEnabled bool `yaml:"stats_enabled"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Lowercase:    false,
		StatsEnabled: true,
	}
}

// Stats are kept across puzzles. Streaks compare calendar days, since puzzle numbers wrap around the word list.
type Stats struct {
	FirstPlay    *int   `yaml:"first_play,omitempty"`
	LastPlayDay  *int64 `yaml:"last_play_day,omitempty"`
	LastEndDay   *int64 `yaml:"last_end_day,omitempty"`
	TotalPlays   int    `yaml:"total_plays"`
	TotalGuesses int    `yaml:"total_guesses"`
	Wins         int    `yaml:"wins"`
	Giveups      int    `yaml:"giveups"`
	Abandons     int    `yaml:"abandons"`
	WinStreak    int    `yaml:"win_streak"`
	PlayStreak   int    `yaml:"play_streak"`
}

// RecordPlay counts the first guess of the day's puzzle. Calling it again on the same day does nothing.
func (s *Stats) RecordPlay(puzzleNumber int, day int64) {
	if s.LastPlayDay != nil && *s.LastPlayDay == day {
		return
	}
	if s.LastPlayDay != nil && (s.LastEndDay == nil || *s.LastEndDay != *s.LastPlayDay) {
		s.Abandons++
	}
	if s.LastPlayDay != nil && *s.LastPlayDay == day-1 {
		s.PlayStreak++
	} else {
		s.PlayStreak = 1
	}
	if s.FirstPlay == nil {
		first := puzzleNumber
		s.FirstPlay = &first
	}
	s.LastPlayDay = &day
	s.TotalPlays++
}

func (s *Stats) RecordGuess() {
	s.TotalGuesses++
}

// RecordEnd counts a finished puzzle, either won or given up.
func (s *Stats) RecordEnd(day int64, won bool) {
	if s.LastEndDay != nil && *s.LastEndDay == day {
		return
	}
	if won {
		if s.LastEndDay != nil && *s.LastEndDay == day-1 && s.WinStreak > 0 {
			s.WinStreak++
		} else {
			s.WinStreak = 1
		}
		s.Wins++
	} else {
		s.WinStreak = 0
		s.Giveups++
	}
	s.LastEndDay = &day
}
