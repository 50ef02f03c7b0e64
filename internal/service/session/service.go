// Package session implements the drill session engine: card pool
// construction, the repeat-until-cleared scheduling loop, statistics
// accumulation, and save/resume of interrupted sessions.
package session

import (
	"errors"
	"time"

	"syllacard/internal/domain"
)

// ExitSentinel is the in-session input that saves the session and stops the
// loop. Matched case-insensitively after trimming.
const ExitSentinel = "exit"

// Service errors
var (
	// ErrInsufficientWords is returned by Prepare when the requested card
	// count exceeds the deck size. The session is not started.
	ErrInsufficientWords = errors.New("requested card count exceeds deck size")

	// ErrNoCards is returned by Run when the engine holds no cards, which
	// means Prepare was not called or the deck was empty.
	ErrNoCards = errors.New("session has no cards")
)

// State is the session's position in its lifecycle.
type State string

const (
	// StateActive means cards remain to be answered correctly.
	StateActive State = "active"

	// StateCompleted means every card was answered correctly and the saved
	// session file, if any, was removed.
	StateCompleted State = "completed"

	// StateExited means the user interrupted the session with the exit
	// sentinel and the state was persisted for resumption.
	StateExited State = "exited"
)

// Summary is the result of a finished session, produced exactly once per
// session lifecycle on reaching a terminal state.
type Summary struct {
	State      State
	Elapsed    time.Duration
	Studied    int
	Remembered int
	TotalCards int
}

// Presenter is the engine's view of the user. The engine drives it
// synchronously; ReadAnswer is the loop's only blocking point.
//
// The CLI implements it over stdin/stdout; tests implement it with scripted
// answers.
type Presenter interface {
	// ShowCard presents a card's prompt and asks for the hidden syllable.
	ShowCard(card *domain.Card)

	// ReadAnswer blocks for one line of raw input.
	ReadAnswer() (string, error)

	// ShowCorrect signals a correct answer; remaining is the number of
	// cards still to clear.
	ShowCorrect(remaining int)

	// ShowIncorrect signals a wrong answer with the expected syllable and
	// the position-aligned character diff.
	ShowIncorrect(expected string, diff []domain.DiffSegment)

	// ShowResumed announces a restored session with its remaining card count.
	ShowResumed(remaining int)

	// ShowSaved acknowledges that an exited session was persisted.
	ShowSaved()

	// ShowCompleted announces that every card was cleared.
	ShowCompleted()
}
