package importer

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"syllacard/internal/domain"
)

// ErrEmptyWorkbook is returned when an XLSX file has no sheets.
var ErrEmptyWorkbook = errors.New("workbook has no sheets")

// FromXLSX imports a deck from the first sheet of an XLSX workbook. The
// layout mirrors the CSV format: column A is the word, B the IPA, C the
// Japanese translation, with one header row which is skipped. The same
// abort-on-malformed semantics as FromCSV apply.
func (im *Importer) FromXLSX(path, deckName string) (*domain.Deck, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	var rows [][3]string
	for i, record := range raw {
		if i == 0 {
			continue // header
		}

		var row [3]string
		for j := 0; j < 3 && j < len(record); j++ {
			row[j] = record[j]
		}
		rows = append(rows, row)
	}

	return im.buildDeck(deckName, rows)
}
