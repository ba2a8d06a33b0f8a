// schema.go
package processor

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Normalize turns a raw block plus a header row index into a dataframe
// with a unique, stable column set:
//
//   - column names come from the header row; the first blank name
//     becomes "date_col_<idx>" (in these exports the unlabeled column is
//     the date), later blanks become "unnamed_col_<n>";
//   - duplicate names keep the first occurrence bare and suffix repeats
//     with a running counter;
//   - data rows repeating the header label in the flight-number cell
//     (a known export artifact) are dropped;
//   - columns empty across all data rows are dropped.
//
// Running Normalize on its own output is a no-op.
func Normalize(t RawTable, headerRow int) dataframe.DataFrame {
	if len(t) == 0 || headerRow >= len(t) {
		return dataframe.New()
	}

	names := cleanColumnNames(t[headerRow])
	data := t[headerRow+1:]

	// Repeated in-data headers carry the literal label in the
	// flight-number cell.
	flightIdx, label := flightNumberColumn(t[headerRow])
	rows := make(RawTable, 0, len(data))
	for _, row := range data {
		if flightIdx >= 0 && strings.TrimSpace(cellAt(row, flightIdx)) == label {
			continue
		}
		rows = append(rows, row)
	}

	var cols []series.Series
	for i, name := range names {
		values := make([]string, len(rows))
		empty := true
		for j, row := range rows {
			values[j] = cellAt(row, i)
			if strings.TrimSpace(values[j]) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		cols = append(cols, series.New(values, series.String, name))
	}
	if len(cols) == 0 {
		return dataframe.New()
	}
	return dataframe.New(cols...)
}

func cleanColumnNames(header []string) []string {
	names := make([]string, len(header))
	seen := map[string]int{}
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			if name == "" {
				names[i] = fmt.Sprintf("unnamed_col_%d", n+1)
			} else {
				names[i] = fmt.Sprintf("%s%d", name, n+1)
			}
			continue
		}
		seen[name] = 0
		if name == "" {
			names[i] = fmt.Sprintf("date_col_%d", i)
		} else {
			names[i] = name
		}
	}
	return names
}

func flightNumberColumn(header []string) (int, string) {
	for i, cell := range header {
		if strings.Contains(strings.ToLower(cell), headerMarker) {
			return i, strings.TrimSpace(cell)
		}
	}
	return -1, ""
}

// HasColumn reports whether the dataframe carries a column of the
// given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// findColumn resolves a column name case-insensitively and returns the
// canonical name, or "" when absent.
func findColumn(df dataframe.DataFrame, name string) string {
	for _, n := range df.Names() {
		if strings.EqualFold(n, name) {
			return n
		}
	}
	return ""
}
