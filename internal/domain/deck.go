package domain

import (
	"errors"
	"strings"
	"time"
)

// Deck-specific validation errors
var (
	// ErrDeckNameEmpty is returned when a deck name is empty.
	ErrDeckNameEmpty = errors.New("deck name cannot be empty")

	// ErrDeckNameInvalid is returned when a deck name cannot safely be used
	// as a file name.
	ErrDeckNameInvalid = errors.New("deck name contains invalid characters")
)

// DeckStats holds a deck's cumulative study counters. All four counters are
// monotonically non-decreasing; they are updated exactly once per session,
// when the session reaches a terminal state.
//
// TotalTime is in seconds, stored as a float to keep sub-second precision
// in the deck file.
type DeckStats struct {
	TotalTime       float64 `json:"total_time"`
	TotalSessions   int     `json:"total_sessions"`
	TotalStudied    int     `json:"total_studied"`
	TotalRemembered int     `json:"total_remembered"`
}

// Apply folds one finished session into the cumulative counters.
func (s *DeckStats) Apply(elapsed time.Duration, studied, remembered int) {
	s.TotalTime += elapsed.Seconds()
	s.TotalSessions++
	s.TotalStudied += studied
	s.TotalRemembered += remembered
}

// Reset zeroes the cumulative counters.
func (s *DeckStats) Reset() {
	*s = DeckStats{}
}

// Deck owns a named collection of words and their cumulative statistics.
type Deck struct {
	Name  string    `json:"name"`
	Words []*Word   `json:"words"`
	Stats DeckStats `json:"stats"`
}

// NewDeck creates an empty deck with the given name.
func NewDeck(name string) (*Deck, error) {
	d := &Deck{Name: name}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks the deck name and every word it contains.
func (d *Deck) Validate() error {
	if d.Name == "" {
		return ErrDeckNameEmpty
	}

	// Deck names become file names, so reject path separators and dot names.
	if strings.ContainsAny(d.Name, "/\\") || d.Name == "." || d.Name == ".." {
		return ErrDeckNameInvalid
	}

	for _, w := range d.Words {
		if err := w.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// AddWord appends a word to the deck.
func (d *Deck) AddWord(w *Word) {
	d.Words = append(d.Words, w)
}
