// Package sheet reads and writes the tabular ingredient spreadsheets that
// feed the converter. Both CSV and XLSX files are presented as the same
// logical row stream: a trimmed header naming each column, followed by data
// rows accessed by column name.
package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row is one data row of a spreadsheet. Cells are looked up by the trimmed
// header name; a column that is absent from the sheet reads as blank, the
// same as an empty cell.
type Row struct {
	// Number is the 1-based spreadsheet row number, counting the header as
	// row 1. Used in error messages so callers can fix the source file.
	Number int

	cells map[string]string
}

// NewRow builds a row from header names and cell values. Extra cells beyond
// the header are dropped; missing trailing cells read as blank.
func NewRow(number int, header []string, cells []string) Row {
	row := Row{Number: number, cells: make(map[string]string, len(header))}
	for i, name := range header {
		if name == "" {
			continue
		}
		if i < len(cells) {
			row.cells[name] = cells[i]
		}
	}
	return row
}

// Field returns the trimmed cell value for the named column. Blank cells and
// missing columns both return the empty string.
func (r Row) Field(name string) string {
	return strings.TrimSpace(r.cells[name])
}

// Open reads every data row of the spreadsheet at path. Files ending in .csv
// are parsed as CSV; anything else is treated as an Excel workbook, matching
// the formats the downstream ingredient app is fed from.
func Open(path string) ([]Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return openCSV(path)
	}
	return openXLSX(path)
}

func openCSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return fromRecords(records), nil
}

func openXLSX(path string) ([]Row, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no worksheets", filepath.Base(path))
	}
	records, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return fromRecords(records), nil
}

func fromRecords(records [][]string) []Row {
	if len(records) == 0 {
		return nil
	}
	header := normalizeHeader(records[0])
	rows := make([]Row, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, NewRow(i+2, header, record))
	}
	return rows
}

// normalizeHeader trims each header cell once; lookups are case-sensitive
// against the trimmed names.
func normalizeHeader(cells []string) []string {
	header := make([]string, len(cells))
	for i, cell := range cells {
		header[i] = strings.TrimSpace(cell)
	}
	return header
}
