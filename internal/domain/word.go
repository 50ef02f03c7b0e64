package domain

import (
	"errors"
	"strings"
)

// Word-specific validation errors
var (
	// ErrWordSpellingEmpty is returned when a word's spelling is empty.
	ErrWordSpellingEmpty = errors.New("word spelling cannot be empty")

	// ErrWordNoSyllables is returned when a word has no syllable breakdown.
	ErrWordNoSyllables = errors.New("word must have at least one syllable")

	// ErrWordSyllableEmpty is returned when any syllable is an empty string.
	ErrWordSyllableEmpty = errors.New("word syllables cannot be empty")

	// ErrWordSyllableMismatch is returned when the concatenated syllables
	// do not reconstruct the spelling.
	ErrWordSyllableMismatch = errors.New("concatenated syllables must equal the word spelling")

	// ErrWordNameUnsafe is returned when a spelling contains path separators,
	// which would be unsafe in file names derived from deck content.
	ErrWordNameUnsafe = errors.New("word spelling contains unsafe characters")
)

// Word is an immutable vocabulary entry: a spelling, its ordered syllable
// breakdown, and optional pronunciation and translation metadata.
//
// The JSON field names match the on-disk deck format.
type Word struct {
	Spelling  string   `json:"word"`
	Syllables []string `json:"syllables"`
	IPA       string   `json:"ipa"`
	Japanese  string   `json:"japanese"`
}

// NewWord creates a Word and validates the syllable invariant.
// The syllable slice is copied so callers cannot mutate the word afterwards.
func NewWord(spelling string, syllables []string, ipa, japanese string) (*Word, error) {
	w := &Word{
		Spelling:  spelling,
		Syllables: append([]string(nil), syllables...),
		IPA:       ipa,
		Japanese:  japanese,
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	return w, nil
}

// Validate checks the Word's structural invariants:
// non-empty spelling, at least one non-empty syllable, and
// concat(syllables) == spelling (case-preserving).
func (w *Word) Validate() error {
	if w.Spelling == "" {
		return ErrWordSpellingEmpty
	}

	if strings.ContainsAny(w.Spelling, "/\\") {
		return ErrWordNameUnsafe
	}

	if len(w.Syllables) == 0 {
		return ErrWordNoSyllables
	}

	for _, s := range w.Syllables {
		if s == "" {
			return ErrWordSyllableEmpty
		}
	}

	if strings.Join(w.Syllables, "") != w.Spelling {
		return ErrWordSyllableMismatch
	}

	return nil
}

// Syllable returns the syllable at index i. The index must be in range.
func (w *Word) Syllable(i int) string {
	return w.Syllables[i]
}
