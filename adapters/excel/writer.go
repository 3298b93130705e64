package excel

import (
	"encoding/csv"
	"fmt"
	"io"

	"thyroidrisk/domain/dataset"

	"github.com/xuri/excelize/v2"
)

// WriteCSV serialises a table with its header row. Missing cells are written empty.
func WriteCSV(table *dataset.Table, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(table.ColumnNames()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := 0; i < table.Rows; i++ {
		if err := writer.Write(table.Row(i)); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Sheet is one worksheet of an exported workbook
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// WriteWorkbook writes sheets to an xlsx file at path
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
		}

		header := make([]interface{}, len(sheet.Header))
		for j, h := range sheet.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header of %s: %w", sheet.Name, err)
		}
		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			values := row
			if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
				return fmt.Errorf("failed to write row %d of %s: %w", r, sheet.Name, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
