package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"syllacard/internal/domain"
)

// FromCSV imports a deck from a CSV file with header "word,IPA,japanese".
// The word column is required; IPA and japanese are optional and default to
// empty. Any malformed row aborts the import without writing a deck.
func (im *Importer) FromCSV(path, deckName string) (*domain.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingWordColumn
		}
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	wordCol, ipaCol, japaneseCol := -1, -1, -1
	for i, name := range header {
		switch name {
		case "word":
			wordCol = i
		case "IPA":
			ipaCol = i
		case "japanese":
			japaneseCol = i
		}
	}
	if wordCol == -1 {
		return nil, ErrMissingWordColumn
	}

	var rows [][3]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Includes csv.ErrFieldCount for ragged rows.
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}

		row := [3]string{record[wordCol], "", ""}
		if ipaCol >= 0 && ipaCol < len(record) {
			row[1] = record[ipaCol]
		}
		if japaneseCol >= 0 && japaneseCol < len(record) {
			row[2] = record[japaneseCol]
		}
		rows = append(rows, row)
	}

	return im.buildDeck(deckName, rows)
}
