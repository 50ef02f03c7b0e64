package domain

import (
	"errors"
	"fmt"
	"time"
)

// SessionState validation errors
var (
	// ErrSessionDeckNameEmpty is returned when a session state has no deck name.
	ErrSessionDeckNameEmpty = errors.New("session deck name cannot be empty")

	// ErrSessionNoCards is returned when a session state has no cards.
	ErrSessionNoCards = errors.New("session must have at least one card")

	// ErrSessionIndexRange is returned when a remaining index does not address
	// a card in the session.
	ErrSessionIndexRange = errors.New("session remaining index out of range")

	// ErrSessionStudiedNegative is returned when the studied counter is negative.
	ErrSessionStudiedNegative = errors.New("session studied count cannot be negative")
)

// SessionState is the full persisted form of one drill session: every card
// with its word snapshot, the indices still to be cleared, the presentation
// counter, and the start timestamp.
//
// Cards embed complete word snapshots rather than references into the deck,
// so a saved session can be resumed even if the deck file changed in between.
// The JSON field names define the on-disk session format.
type SessionState struct {
	DeckName         string    `json:"deck_name"`
	Cards            []*Card   `json:"cards"`
	RemainingIndices []int     `json:"remaining_indices"`
	Studied          int       `json:"studied"`
	StartTime        time.Time `json:"start_time"`
}

// Validate checks the session state's structural invariants. It is applied
// to restored sessions; any violation means the file is corrupt.
func (s *SessionState) Validate() error {
	if s.DeckName == "" {
		return ErrSessionDeckNameEmpty
	}

	if len(s.Cards) == 0 {
		return ErrSessionNoCards
	}

	for _, c := range s.Cards {
		if err := c.Validate(); err != nil {
			return err
		}
	}

	for _, i := range s.RemainingIndices {
		if i < 0 || i >= len(s.Cards) {
			return fmt.Errorf("%w: index %d, %d cards", ErrSessionIndexRange, i, len(s.Cards))
		}
	}

	if s.Studied < 0 {
		return ErrSessionStudiedNegative
	}

	return nil
}

// Remembered counts the cards whose first evaluated answer was correct,
// over the full original card set.
func (s *SessionState) Remembered() int {
	n := 0
	for _, c := range s.Cards {
		if c.FirstAttemptCorrect != nil && *c.FirstAttemptCorrect {
			n++
		}
	}
	return n
}
