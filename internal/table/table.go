// Package table loads spreadsheet files into an in-memory snapshot.
package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Snapshot holds the contents of one spreadsheet sheet as rows of cell
// values. Cells are the string forms produced by the reader; trailing empty
// cells may be omitted per row.
type Snapshot struct {
	Sheet string     `json:"sheet"`
	Rows  [][]string `json:"rows"`
}

// Load reads the first sheet of the xlsx workbook at path.
func Load(path string) (*Snapshot, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}

	return &Snapshot{Sheet: sheet, Rows: rows}, nil
}

// RowCount returns the number of rows in the snapshot.
func (s *Snapshot) RowCount() int {
	return len(s.Rows)
}

// ColCount returns the width of the widest row.
func (s *Snapshot) ColCount() int {
	max := 0
	for _, row := range s.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// Cell returns the value at row r, column c (0-based), or "" when the
// position is outside the snapshot.
func (s *Snapshot) Cell(r, c int) string {
	if r < 0 || r >= len(s.Rows) {
		return ""
	}
	row := s.Rows[r]
	if c < 0 || c >= len(row) {
		return ""
	}
	return row[c]
}
