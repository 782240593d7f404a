package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/semantle/internal/game"
	"github.com/at-ishikawa/semantle/internal/ledger"
	"github.com/at-ishikawa/semantle/internal/session"
	"github.com/at-ishikawa/semantle/internal/wordvec"
)

const progressBarWidth = 10

// PercentileText describes how close an entry is.
// Words outside the top 1000 that are still closer than the 1000th word are shown as "????".
func PercentileText(entry ledger.Entry, story *wordvec.SimilarityStory) string {
	if entry.Percentile != nil {
		if *entry.Percentile == wordvec.FoundPercentile {
			return "FOUND!"
		}
		return fmt.Sprintf("%d/1000", *entry.Percentile)
	}
	if story != nil && entry.Similarity >= story.Rest*100 {
		return "????"
	}
	return "(cold)"
}

// progressBar is empty for words outside the top 1000 and for the secret itself.
func progressBar(entry ledger.Entry) string {
	if entry.Percentile == nil || *entry.Percentile == wordvec.FoundPercentile {
		return ""
	}
	filled := *entry.Percentile * progressBarWidth / wordvec.FoundPercentile
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", progressBarWidth-filled) + "]"
}

func formatRow(entry ledger.Entry, story *wordvec.SimilarityStory) string {
	row := fmt.Sprintf("%5s  %-20s %10.2f  %-8s",
		fmt.Sprintf("#%d", entry.Ordinal),
		entry.Word,
		entry.Similarity,
		PercentileText(entry, story),
	)
	if bar := progressBar(entry); bar != "" {
		row += " " + bar
	}
	return strings.TrimRight(row, " ")
}

// renderBoard prints the ranked guesses. The latest guess is repeated on top, like the web board.
func (cli *InteractiveCLI) renderBoard(w io.Writer, ranked []ledger.Entry, latest string, story *wordvec.SimilarityStory) {
	if len(ranked) == 0 {
		return
	}
	_, _ = fmt.Fprintln(w, cli.bold.Sprintf("%5s  %-20s %10s  %s", "#", "Guess", "Similarity", "Getting close?"))

	if latest != "" {
		for _, entry := range ranked {
			if entry.Word == latest {
				_, _ = fmt.Fprintln(w, cli.highlight.Sprint(formatRow(entry, story)))
				_, _ = fmt.Fprintln(w, strings.Repeat("-", 60))
				break
			}
		}
	}
	for _, entry := range ranked {
		row := formatRow(entry, story)
		switch {
		case entry.Percentile != nil && *entry.Percentile == wordvec.FoundPercentile:
			row = cli.success.Sprint(row)
		case entry.Word == latest:
			row = cli.highlight.Sprint(row)
		}
		_, _ = fmt.Fprintln(w, row)
	}
}

func renderStory(w io.Writer, board game.Board) {
	_, _ = fmt.Fprintf(w, "Today is puzzle number %d.", board.Identity.Number)
	if board.Story != nil {
		_, _ = fmt.Fprintf(w,
			" The nearest word has a similarity of %.2f, the tenth-nearest has a similarity of %.2f and the one thousandth nearest word has a similarity of %.2f.",
			board.Story.Top*100,
			board.Story.Top10*100,
			board.Story.Rest*100,
		)
	}
	_, _ = fmt.Fprintln(w)
}

// RenderStats prints the stats kept across puzzles.
func RenderStats(w io.Writer, stats session.Stats) {
	if stats.FirstPlay == nil {
		_, _ = fmt.Fprintln(w, "No games played yet.")
		return
	}

	averageGuesses := 0.0
	if stats.TotalPlays > 0 {
		averageGuesses = float64(stats.TotalGuesses) / float64(stats.TotalPlays)
	}
	rows := []struct {
		label string
		value string
	}{
		{"First game", fmt.Sprintf("%d", *stats.FirstPlay)},
		{"Total days played", fmt.Sprintf("%d", stats.TotalPlays)},
		{"Wins", fmt.Sprintf("%d", stats.Wins)},
		{"Win streak", fmt.Sprintf("%d", stats.WinStreak)},
		{"Give-ups", fmt.Sprintf("%d", stats.Giveups)},
		{"Did not finish", fmt.Sprintf("%d", stats.Abandons)},
		{"Play streak", fmt.Sprintf("%d", stats.PlayStreak)},
		{"Total guesses", fmt.Sprintf("%d", stats.TotalGuesses)},
		{"Average guesses", fmt.Sprintf("%.2f", averageGuesses)},
	}
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%-18s %s\n", row.label+":", row.value)
	}
}
