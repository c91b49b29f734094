package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// Write stores a header plus data records as a spreadsheet at path, choosing
// CSV or XLSX by extension the same way Open does.
func Write(path string, header []string, records [][]string) error {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return writeCSV(path, header, records)
	}
	return writeXLSX(path, header, records)
}

func writeCSV(path string, header []string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create spreadsheet: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return file.Close()
}

func writeXLSX(path string, header []string, records [][]string) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := setRecord(book, 1, header); err != nil {
		return err
	}
	for i, record := range records {
		if err := setRecord(book, i+2, record); err != nil {
			return err
		}
	}
	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("save spreadsheet: %w", err)
	}
	return nil
}

func setRecord(book *excelize.File, rowNumber int, cells []string) error {
	for i, cell := range cells {
		if cell == "" {
			continue
		}
		coord, err := excelize.CoordinatesToCellName(i+1, rowNumber)
		if err != nil {
			return fmt.Errorf("cell coordinate: %w", err)
		}
		if err := book.SetCellValue(defaultSheetName, coord, cell); err != nil {
			return fmt.Errorf("set cell %s: %w", coord, err)
		}
	}
	return nil
}
