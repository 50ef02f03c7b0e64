// Package importer builds decks from external word lists. CSV is the
// primary format; XLSX is supported for lists exported from spreadsheets.
//
// Import is all-or-nothing: any malformed row aborts the import and no deck
// is written.
package importer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"syllacard/internal/domain"
	"syllacard/internal/store"
	"syllacard/internal/syllable"
)

// Import errors
var (
	// ErrMissingWordColumn is returned when the input has no "word" column.
	ErrMissingWordColumn = errors.New(`input must contain a "word" column`)

	// ErrMalformedRow is returned when a row cannot produce a word, for
	// example because the word cell is empty. The whole import aborts.
	ErrMalformedRow = errors.New("malformed row")
)

// Importer turns word-list files into stored decks. Syllabification happens
// here, at import time, via the injected split function; sessions never
// split words themselves.
type Importer struct {
	decks  store.DeckStore
	split  syllable.SplitFunc
	logger *slog.Logger
}

// New creates an Importer. split must be a pure function whose output
// concatenates back to its input.
func New(decks store.DeckStore, split syllable.SplitFunc, logger *slog.Logger) *Importer {
	return &Importer{decks: decks, split: split, logger: logger}
}

// buildDeck validates the deck name is free, then converts rows into a deck.
// rows carry (word, ipa, japanese) triples with the header already removed.
func (im *Importer) buildDeck(deckName string, rows [][3]string) (*domain.Deck, error) {
	exists, err := im.decks.Exists(deckName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %q", store.ErrDeckExists, deckName)
	}

	deck, err := domain.NewDeck(deckName)
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		text := strings.TrimSpace(row[0])
		if text == "" {
			return nil, fmt.Errorf("%w: row %d has an empty word", ErrMalformedRow, i+2)
		}

		word, err := im.makeWord(text, strings.TrimSpace(row[1]), strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, i+2, err)
		}
		deck.AddWord(word)
	}

	if err := im.decks.Save(deck); err != nil {
		return nil, err
	}

	im.logger.Info("imported deck", "deck", deckName, "words", len(deck.Words))
	return deck, nil
}

// makeWord syllabifies the input and builds a validated word. Explicit
// hyphens in the input define the syllable boundaries; the stored spelling
// drops them so that the syllables concatenate back to the spelling.
func (im *Importer) makeWord(text, ipa, japanese string) (*domain.Word, error) {
	var spelling string
	var syllables []string

	if strings.Contains(text, "-") {
		for _, part := range strings.Split(text, "-") {
			if part != "" {
				syllables = append(syllables, part)
			}
		}
		spelling = strings.Join(syllables, "")
	} else {
		spelling = text
		syllables = im.split(text)
	}

	return domain.NewWord(spelling, syllables, ipa, japanese)
}
