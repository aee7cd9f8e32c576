package cli

import (
	"fmt"

	"github.com/ethan-wit/attachfetch/internal/table"
)

func (c *TableShowCmd) Run(ctx *Context) error {
	snap, err := table.Load(c.Path)
	if err != nil {
		return err
	}

	if ctx.Formatter.JSON {
		return ctx.Formatter.PrintJSON(map[string]interface{}{
			"path":      c.Path,
			"sheet":     snap.Sheet,
			"row_count": snap.RowCount(),
			"col_count": snap.ColCount(),
			"rows":      snap.Rows,
		})
	}

	if snap.RowCount() == 0 {
		fmt.Printf("Sheet %q is empty\n", snap.Sheet)
		return nil
	}

	fmt.Printf("Sheet %q (%d row(s), %d column(s)):\n\n", snap.Sheet, snap.RowCount(), snap.ColCount())

	// First row as headers, pandas-style.
	cols := snap.ColCount()
	tw := ctx.Formatter.NewTable(padRow(snap.Rows[0], cols)...)
	limit := snap.RowCount()
	if c.Limit > 0 && c.Limit+1 < limit {
		limit = c.Limit + 1
	}
	for _, row := range snap.Rows[1:limit] {
		tw.AddRow(padRow(row, cols)...)
	}
	tw.Flush()

	if limit < snap.RowCount() {
		fmt.Printf("\n... %d more row(s)\n", snap.RowCount()-limit)
	}
	return nil
}

// padRow widens a row to the sheet's column count; the reader drops trailing
// empty cells.
func padRow(row []string, cols int) []string {
	if len(row) >= cols {
		return row
	}
	padded := make([]string, cols)
	copy(padded, row)
	return padded
}
