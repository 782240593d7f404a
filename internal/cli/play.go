package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/at-ishikawa/semantle/internal/game"
)

//go:generate mockgen -source=play.go -destination=../mocks/cli/mock_round.go -package=mock_cli

// Round is the part of *game.Controller the play loop drives.
type Round interface {
	SubmitGuess(ctx context.Context, raw string) (game.Result, error)
	GiveUp(ctx context.Context) (string, error)
	SetLowercase(ctx context.Context, lowercase bool)
	Nearby(ctx context.Context, word string) json.RawMessage
	Board() game.Board
}

// PlayCLI reads guesses from stdin and prints the board after each one
type PlayCLI struct {
	*InteractiveCLI
	round Round
}

func NewPlayCLI(round Round, stdin io.Reader, stdout io.Writer) *PlayCLI {
	return &PlayCLI{
		InteractiveCLI: newInteractiveCLI(stdin, stdout),
		round:          round,
	}
}

// Welcome prints the puzzle introduction and the board of a resumed round.
func (p *PlayCLI) Welcome() {
	w := p.stdoutWriter
	board := p.round.Board()
	renderStory(w, board)
	_, _ = fmt.Fprintln(w, "Type a word to guess. Commands: /give-up, /nearby [word], /lower on|off, quit")

	if len(board.Ranked) > 0 {
		_, _ = fmt.Fprintln(w)
		p.renderBoard(w, board.Ranked, "", board.Story)
	}
	if board.GameOver {
		_, _ = fmt.Fprintln(w, p.roundOverMessage(board))
	}
}

func (p *PlayCLI) roundOverMessage(board game.Board) string {
	if board.Won {
		return p.success.Sprintf("You found the secret word in %d guesses. Come back tomorrow for a new puzzle.", board.GuessCount)
	}
	return "This round is over. Come back tomorrow for a new puzzle."
}

func (p *PlayCLI) Session(ctx context.Context) error {
	input, err := p.readLine("Guess: ")
	if err != nil {
		return err
	}

	switch command, argument, _ := strings.Cut(input, " "); command {
	case "quit", "exit":
		return errEnd
	case "/give-up":
		return p.giveUp(ctx)
	case "/nearby":
		return p.nearby(ctx, strings.TrimSpace(argument))
	case "/lower":
		return p.lower(ctx, strings.TrimSpace(argument))
	}
	if strings.HasPrefix(input, "/") {
		_, _ = fmt.Fprintf(p.stdoutWriter, "Unknown command %s.\n", input)
		return nil
	}
	return p.guess(ctx, input)
}

func (p *PlayCLI) guess(ctx context.Context, input string) error {
	w := p.stdoutWriter
	result, err := p.round.SubmitGuess(ctx, input)
	switch {
	case errors.Is(err, game.ErrUnknownWord):
		_, _ = fmt.Fprintln(w, p.warning.Sprintf("I don't know the word %s.", strings.TrimSpace(input)))
		return nil
	case errors.Is(err, game.ErrLookupFailed):
		_, _ = fmt.Fprintln(w, p.warning.Sprint("The word service is not responding. Please try again."))
		return nil
	case errors.Is(err, game.ErrUnscoreable):
		_, _ = fmt.Fprintln(w, p.warning.Sprintf("The word %s cannot be scored.", strings.TrimSpace(input)))
		return nil
	case err != nil:
		return fmt.Errorf("round.SubmitGuess > %w", err)
	}

	if result.Status == game.StatusIgnored {
		return nil
	}
	if !result.IsNew {
		_, _ = fmt.Fprintf(w, "You already guessed %s as guess #%d.\n", result.Guess, result.Entry.Ordinal)
	}

	board := p.round.Board()
	p.renderBoard(w, result.Ranked, result.Guess, board.Story)

	if result.Won {
		_, _ = fmt.Fprintln(w, p.success.Sprintf("You found it in %d guesses! The secret word is %s.", result.GuessCount, board.Identity.Secret))
		_, _ = fmt.Fprintln(w, "You can keep guessing to explore, or type /nearby to see the closest words.")
	}
	if result.SuggestLowercase {
		return p.suggestLowercase(ctx)
	}
	return nil
}

func (p *PlayCLI) suggestLowercase(ctx context.Context) error {
	answer, err := p.readLine("Many of your guesses start with a capital letter. Lowercase every guess from now on? [y/N]: ")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes") {
		p.round.SetLowercase(ctx, true)
		_, _ = fmt.Fprintln(p.stdoutWriter, "Guesses will be lowercased. Type /lower off to undo.")
	}
	return nil
}

func (p *PlayCLI) giveUp(ctx context.Context) error {
	secret, err := p.round.GiveUp(ctx)
	if err != nil {
		return fmt.Errorf("round.GiveUp > %w", err)
	}
	_, _ = fmt.Fprintf(p.stdoutWriter, "The secret word is %s.\n", p.bold.Sprint(secret))
	return nil
}

// nearby shows the service's words around word, or around the secret when word is empty.
// It is only available once the round is over.
func (p *PlayCLI) nearby(ctx context.Context, word string) error {
	w := p.stdoutWriter
	board := p.round.Board()
	if !board.GameOver {
		_, _ = fmt.Fprintln(w, "Nearby words are available once the round is over.")
		return nil
	}
	if word == "" {
		word = board.Identity.Secret
	}

	raw := p.round.Nearby(ctx, word)
	if raw == nil {
		_, _ = fmt.Fprintf(w, "No nearby words for %s.\n", word)
		return nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		_, _ = fmt.Fprintf(w, "No nearby words for %s.\n", word)
		return nil
	}
	_, _ = fmt.Fprintln(w, out.String())
	return nil
}

func (p *PlayCLI) lower(ctx context.Context, argument string) error {
	switch strings.ToLower(argument) {
	case "on":
		p.round.SetLowercase(ctx, true)
		_, _ = fmt.Fprintln(p.stdoutWriter, "Guesses will be lowercased.")
	case "off":
		p.round.SetLowercase(ctx, false)
		_, _ = fmt.Fprintln(p.stdoutWriter, "Guesses keep their case.")
	default:
		_, _ = fmt.Fprintln(p.stdoutWriter, "Usage: /lower on|off")
	}
	return nil
}
