// table.go
package processor

import "strings"

// RawTable is a rectangular block of untyped cells as read from a
// spreadsheet, before any column has a name. It is transient: the
// pipeline consumes it once and discards it after normalization.
type RawTable [][]string

// DropEmptyRows removes rows whose cells are all blank. This runs
// before header detection so that leading decoration rows in an export
// do not shift the scan window.
func DropEmptyRows(t RawTable) RawTable {
	out := make(RawTable, 0, len(t))
	for _, row := range t {
		if !rowEmpty(row) {
			out = append(out, row)
		}
	}
	return out
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cellAt tolerates ragged rows: exports routinely truncate trailing
// empty cells, so a missing position reads as blank.
func cellAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
