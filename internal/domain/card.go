package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Card-specific validation errors
var (
	// ErrCardWordNil is returned when a card has no word.
	ErrCardWordNil = errors.New("card word cannot be nil")

	// ErrCardHiddenIndexRange is returned when a card's hidden index is
	// outside the word's syllable range.
	ErrCardHiddenIndexRange = errors.New("card hidden index out of syllable range")
)

const (
	// HiddenMarker is the fixed-width placeholder shown in place of the hidden
	// syllable. Its length never depends on the hidden syllable, so the prompt
	// does not leak the answer length.
	HiddenMarker = "___"

	// SyllableSeparator joins syllables in a prompt.
	SyllableSeparator = "-"
)

// Card is one drill instance: a Word with one syllable chosen to be hidden,
// plus the outcome of the card's first evaluated answer.
//
// FirstAttemptCorrect is nil until the first answer is evaluated and is never
// overwritten afterwards, even when the card is re-presented. It serializes
// as JSON null while unset, matching the session file format.
type Card struct {
	Word                *Word `json:"word"`
	HiddenIndex         int   `json:"hidden_index"`
	FirstAttemptCorrect *bool `json:"is_correct_first_attempt"`
}

// NewCard creates a Card hiding the syllable at hiddenIndex.
// The hidden index is fixed for the card's lifetime; re-presentations within
// a session always hide the same slot.
func NewCard(word *Word, hiddenIndex int) (*Card, error) {
	c := &Card{
		Word:        word,
		HiddenIndex: hiddenIndex,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks that the card references a valid word and that the hidden
// index addresses one of its syllables.
func (c *Card) Validate() error {
	if c.Word == nil {
		return ErrCardWordNil
	}

	if err := c.Word.Validate(); err != nil {
		return err
	}

	if c.HiddenIndex < 0 || c.HiddenIndex >= len(c.Word.Syllables) {
		return fmt.Errorf("%w: index %d, %d syllables",
			ErrCardHiddenIndexRange, c.HiddenIndex, len(c.Word.Syllables))
	}

	return nil
}

// HiddenSyllable returns the syllable the user is asked to supply.
func (c *Card) HiddenSyllable() string {
	return c.Word.Syllable(c.HiddenIndex)
}

// Prompt returns the spelling with the hidden syllable replaced by
// HiddenMarker and the syllables joined by SyllableSeparator,
// e.g. "ap-___" for apple with the second syllable hidden.
// Single-syllable words produce just the marker.
func (c *Card) Prompt() string {
	parts := make([]string, len(c.Word.Syllables))
	for i, s := range c.Word.Syllables {
		if i == c.HiddenIndex {
			parts[i] = HiddenMarker
		} else {
			parts[i] = s
		}
	}
	return strings.Join(parts, SyllableSeparator)
}

// FullPrompt appends the word's pronunciation and translation to the prompt
// when present, omitting absent fields without stray separators,
// e.g. "ap-___ [ˈæp.əl] りんご".
func (c *Card) FullPrompt() string {
	prompt := c.Prompt()

	var details []string
	if c.Word.IPA != "" {
		details = append(details, "["+c.Word.IPA+"]")
	}
	if c.Word.Japanese != "" {
		details = append(details, c.Word.Japanese)
	}

	if len(details) == 0 {
		return prompt
	}
	return prompt + " " + strings.Join(details, " ")
}

// RecordFirstAttempt fixes the card's first-attempt outcome. Only the first
// call has any effect; later calls are ignored regardless of verdict.
func (c *Card) RecordFirstAttempt(correct bool) {
	if c.FirstAttemptCorrect == nil {
		c.FirstAttemptCorrect = &correct
	}
}
