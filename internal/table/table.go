// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table provides the in-memory tabular dataset the pipeline stages
// exchange: a header row plus string cells, read from and written to xlsx
// workbooks.
package table

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet read and written when no sheet name is configured.
const DefaultSheet = "Sheet1"

// Table is an in-memory tabular dataset with named columns. The first source
// row is the header; all cells are kept as raw strings so payloads such as
// base64 figures survive untouched.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the index of the named column.
func (t *Table) Column(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found (have %v)", name, t.Columns)
}

// Cell returns the cell at row r in the named column. Rows shorter than the
// header (trailing empty cells are dropped by the xlsx reader) yield "".
func (t *Table) Cell(r int, col int) string {
	if r < 0 || r >= len(t.Rows) || col < 0 || col >= len(t.Columns) {
		return ""
	}
	row := t.Rows[r]
	if col >= len(row) {
		return ""
	}
	return row[col]
}

// ReadXLSX loads one sheet of an xlsx workbook into a Table. The sheet's
// first row becomes the header.
func ReadXLSX(path, sheet string) (*Table, error) {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %s is empty", sheet, path)
	}

	return &Table{Columns: rows[0], Rows: rows[1:]}, nil
}

// WriteXLSX writes the table to an xlsx workbook at path, creating parent
// directories as needed. An existing file is overwritten.
func WriteXLSX(t *Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	header := make([]any, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(DefaultSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for r, row := range t.Rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", r+2, err)
		}
		if err := f.SetSheetRow(DefaultSheet, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", r+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
