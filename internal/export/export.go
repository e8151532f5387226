package export

import (
	"fmt"

	"go-paygap/internal/paygap"
	"go-paygap/internal/pivot"

	"github.com/xuri/excelize/v2"
)

const (
	SheetRecords = "PayGap"
	SheetPivot   = "BasePayByJobTitle"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Workbook writes the loaded records and a mean pivot into an xlsx file.
// Missing pivot cells are left empty.
func Workbook(records []paygap.CompensationRecord, table pivot.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRecords); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetPivot); err != nil {
		return nil, fmt.Errorf("export: add sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}

	if err := writeRecords(f, records, header); err != nil {
		return nil, err
	}
	if err := writePivot(f, table, header); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRecords(f *excelize.File, records []paygap.CompensationRecord, style int) error {
	columns := paygap.Columns()
	head := make([]interface{}, len(columns))
	for i, c := range columns {
		head[i] = c
	}
	if err := setRow(f, SheetRecords, 1, head); err != nil {
		return err
	}
	if err := styleRow(f, SheetRecords, 1, len(columns), style); err != nil {
		return err
	}

	for i, r := range records {
		row := make([]interface{}, len(columns))
		for j, c := range columns {
			row[j], _ = r.Field(c)
		}
		if err := setRow(f, SheetRecords, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writePivot(f *excelize.File, t pivot.Table, style int) error {
	width := len(t.Index) + len(t.Columns)
	head := make([]interface{}, 0, width)
	for _, idx := range t.Index {
		head = append(head, string(idx))
	}
	for _, c := range t.Columns {
		head = append(head, c)
	}
	if err := setRow(f, SheetPivot, 1, head); err != nil {
		return err
	}
	if err := styleRow(f, SheetPivot, 1, width, style); err != nil {
		return err
	}

	for i, key := range t.Rows {
		row := make([]interface{}, 0, width)
		for _, k := range key {
			row = append(row, k)
		}
		for j := range t.Columns {
			if t.Has(i, j) {
				row = append(row, t.Cells[i][j])
			} else {
				row = append(row, nil)
			}
		}
		if err := setRow(f, SheetPivot, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: %s row %d: %w", sheet, row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: %s row %d: %w", sheet, row, err)
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, row, width, style int) error {
	if width == 0 {
		return nil
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(width, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, first, last, style)
}
