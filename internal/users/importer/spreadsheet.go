package importer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"usersvc/internal/users/model"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrWorkbook means the file could not be read as a workbook
	ErrWorkbook = errors.New("workbook is empty or corrupted")
	// ErrEmptySheet means the first sheet holds no data rows
	ErrEmptySheet = errors.New("sheet is empty")
)

// Row is one data row of the sheet, keyed by header column name.
// Columns missing from a row read as empty string.
type Row map[string]string

// dateLayouts are the accepted spellings for createdAt/updatedAt cells.
// excelize returns formatted cell text, so both ISO and common
// spreadsheet display formats must parse.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"1/2/06 15:04",
	"01-02-06",
}

// ParseFile reads the first sheet of the workbook at path and returns
// its data rows in order. The first row is the header.
func ParseFile(path string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrWorkbook
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbook, err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}

	header := rows[0]
	out := make([]Row, 0, len(rows)-1)
	for _, raw := range rows[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			col = strings.TrimSpace(col)
			if col == "" {
				continue
			}
			if i < len(raw) {
				row[col] = raw[i]
			} else {
				row[col] = ""
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// Candidate coerces the row into a candidate record: text cells are
// trimmed, date cells parsed. An unparseable date yields the zero time
// so validation rejects it instead of aborting the batch.
func (r Row) Candidate() model.CandidateUser {
	return model.CandidateUser{
		FirstName:   strings.TrimSpace(r["firstName"]),
		LastName:    strings.TrimSpace(r["lastName"]),
		PhoneNumber: strings.TrimSpace(r["phoneNumber"]),
		Email:       strings.TrimSpace(r["email"]),
		CreatedAt:   parseDate(r["createdAt"]),
		UpdatedAt:   parseDate(r["updatedAt"]),
	}
}

func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
