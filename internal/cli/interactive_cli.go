package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
)

var errEnd = errors.New("end")

// InteractiveCLI holds the terminal plumbing shared by interactive commands
type InteractiveCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	highlight    *color.Color
	success      *color.Color
	warning      *color.Color
}

func newInteractiveCLI(stdin io.Reader, stdout io.Writer) *InteractiveCLI {
	return &InteractiveCLI{
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		highlight:    color.New(color.FgYellow, color.Bold),
		success:      color.New(color.FgGreen, color.Bold),
		warning:      color.New(color.FgRed),
	}
}

// Session handles one prompt. It returns errEnd when the player is done.
type Session interface {
	Session(ctx context.Context) error
}

// Run repeats session until it ends, fails, or the process is interrupted.
func (cli *InteractiveCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "\nReceived interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLine returns the trimmed line, or errEnd when the input is exhausted.
func (cli *InteractiveCLI) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(cli.stdoutWriter, prompt)
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("stdinReader.ReadString > %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", errEnd
	}
	return strings.TrimSpace(line), nil
}
