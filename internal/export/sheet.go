package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Passwords"

var (
	ErrNoSheet     = errors.New("workbook has no Passwords sheet")
	ErrUnencodable = errors.New("password contains a character that cannot be stored in a spreadsheet")
)

var header = []interface{}{"index", "password"}

// WriteSpreadsheet writes an xlsx workbook with a header row followed by one
// row per password. Rows come from the line format, so the same line-break
// restriction applies. Characters outside the XML 1.0 Char range are
// rejected with ErrUnencodable instead of being replaced by the writer.
func WriteSpreadsheet(w io.Writer, passwords []string) error {
	if err := checkLineBreaks(passwords); err != nil {
		return err
	}
	if err := checkXMLChars(passwords); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range FormatLines(passwords) {
		idx, pw, _ := strings.Cut(line, Separator)
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{idx, pw}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// ReadSpreadsheet reads a workbook produced by WriteSpreadsheet.
func ReadSpreadsheet(r io.Reader) ([]Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	var entries []Entry
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		e := Entry{Index: row[0]}
		if len(row) > 1 {
			e.Password = row[1]
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func checkXMLChars(passwords []string) error {
	for _, pw := range passwords {
		if !utf8.ValidString(pw) {
			return ErrUnencodable
		}
		for _, r := range pw {
			if !isXMLChar(r) {
				return ErrUnencodable
			}
		}
	}
	return nil
}

// isXMLChar reports whether r matches the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= utf8.MaxRune:
		return true
	}
	return false
}
