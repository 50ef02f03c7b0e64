package cli

import (
	"bufio"
	"fmt"
	"io"

	"syllacard/internal/domain"
	"syllacard/internal/service/session"
)

// consolePresenter implements session.Presenter over the menu's terminal
// streams.
type consolePresenter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *consolePresenter) ShowCard(card *domain.Card) {
	fmt.Fprintf(p.out, "\nCard: %s\n", styleCard.Render(card.FullPrompt()))
}

func (p *consolePresenter) ReadAnswer() (string, error) {
	fmt.Fprintf(p.out, "Your answer (or %q): ", session.ExitSentinel)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *consolePresenter) ShowCorrect(remaining int) {
	fmt.Fprintf(p.out, "%s %s\n",
		styleCorrect.Render("Correct!"),
		styleSubtle.Render(fmt.Sprintf("(%d remaining)", remaining)))
}

func (p *consolePresenter) ShowIncorrect(expected string, diff []domain.DiffSegment) {
	fmt.Fprintf(p.out, "%s The correct answer was: %s\n",
		styleIncorrect.Render("Incorrect."), expected)
	fmt.Fprintf(p.out, "Your answer:             %s\n", renderDiff(diff))
}

func (p *consolePresenter) ShowResumed(remaining int) {
	fmt.Fprintf(p.out, "Resuming saved session with %d remaining cards.\n", remaining)
}

func (p *consolePresenter) ShowSaved() {
	fmt.Fprintln(p.out, "\nSession saved. You can continue later.")
}

func (p *consolePresenter) ShowCompleted() {
	fmt.Fprintln(p.out, styleCorrect.Render("\nCongratulations! You've completed the session."))
}

var _ session.Presenter = (*consolePresenter)(nil)
