package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cryptoquiz/internal/quiz"
)

// Run plays the deck interactively: one question at a time, a letter picks
// an option, an empty line submits without a selection (which only prints
// a warning and re-prompts). Ends with the final tally.
func Run(ctx context.Context, in io.Reader, out io.Writer, deck quiz.Quiz) error {
	presenter := &terminalPresenter{out: out}
	session, err := quiz.NewSession(deck, presenter)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	session.Start()

	for !session.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, readErr := reader.ReadString('\n')
		answer := strings.TrimSpace(line)

		if answer == "" {
			// Submit with nothing selected; the presenter prints the warning.
			_ = session.Submit()
		} else if index, ok := parseLetter(answer, len(presenter.options)); ok {
			if err := session.Select(presenter.options[index]); err != nil {
				return err
			}
			if err := session.Submit(); err != nil && !errors.Is(err, quiz.ErrNoSelection) {
				return err
			}
		} else {
			fmt.Fprintf(out, "\nInvalid input. Please enter a letter A-%c.\n", 'A'+len(presenter.options)-1)
		}

		if readErr != nil {
			if session.Finished() {
				break
			}
			return fmt.Errorf("quiz aborted: %w", readErr)
		}
	}

	return nil
}

func parseLetter(answer string, optionCount int) (int, bool) {
	if optionCount < 1 {
		return -1, false
	}

	answer = strings.ToUpper(answer)
	if len(answer) != 1 {
		return -1, false
	}

	index := int(answer[0] - 'A')
	if index < 0 || index >= optionCount {
		return -1, false
	}
	return index, true
}

// terminalPresenter mirrors session state onto the terminal. options holds
// the current question's options so the loop can map letters back to them.
type terminalPresenter struct {
	out     io.Writer
	number  int
	options []string
}

func (p *terminalPresenter) RenderQuestion(text string, options []string) {
	p.number++
	p.options = options

	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "Q%d: %s\n\n", p.number, text)
	for idx, option := range options {
		fmt.Fprintf(p.out, "%c. %s\n", 'A'+idx, option)
	}
	fmt.Fprintln(p.out)
}

func (p *terminalPresenter) NotifyNoSelection() {
	fmt.Fprintln(p.out, "Please select an answer before submitting.")
}

func (p *terminalPresenter) NotifyResult(score, total int) {
	fmt.Fprintf(p.out, "\nFinal score: %d/%d\n", score, total)
}
