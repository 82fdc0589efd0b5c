package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const PlayAgainPrompt = "\nDo you want to play again? (yes/no): "

// MovePrompt asks the active player for a position.
func MovePrompt(mark entity.Mark) string {
	return fmt.Sprintf("Player %s, enter position (%d-%d): ", mark, entity.MinPosition, entity.MaxPosition)
}

type line struct {
	text string
	err  error
}

// Prompter reads answers line by line. Lines are read in the background
// so that a blocked read can still be abandoned when the context is canceled.
type Prompter struct {
	out   io.Writer
	lines chan line

	done      chan struct{}
	closeOnce sync.Once
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	prompter := &Prompter{
		out:   out,
		lines: make(chan line),
		done:  make(chan struct{}),
	}

	go prompter.scan(in)

	return prompter
}

// scan - lines have no length limit, an oversized answer is still just an answer.
func (that *Prompter) scan(in io.Reader) {
	defer close(that.lines)

	reader := bufio.NewReader(in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" && !that.send(line{text: trimLineEnd(text)}) {
			return
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				that.send(line{err: err})
			}
			return
		}
	}
}

func (that *Prompter) send(next line) bool {
	select {
	case that.lines <- next:
		return true
	case <-that.done:
		return false
	}
}

// Close stops delivering lines. A read already blocked on the input stays
// blocked until the input yields, then the background reader exits.
func (that *Prompter) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

func (that *Prompter) closed() bool {
	select {
	case <-that.done:
		return true
	default:
		return false
	}
}

// ReadLine - writes the prompt and waits for the next line.
// End of input, a closed prompter and context cancellation are all reported as apperror.ErrInterrupted.
func (that *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil || that.closed() {
		return "", apperror.ErrInterrupted
	}

	if _, err := io.WriteString(that.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", apperror.ErrInterrupted
	case <-that.done:
		return "", apperror.ErrInterrupted
	case next, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInterrupted
		}

		if next.err != nil {
			return "", fmt.Errorf("failed to read input: %w", next.err)
		}

		return next.text, nil
	}
}

func trimLineEnd(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}

// ReadPosition - reads a line and parses it as an integer.
func (that *Prompter) ReadPosition(ctx context.Context, prompt string) (int, error) {
	text, err := that.ReadLine(ctx, prompt)
	if err != nil {
		return 0, err
	}

	position, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnparseableInput, text)
	}

	return position, nil
}
