// header.go
package processor

import "strings"

const (
	// headerMarker identifies the header row inside a raw block. The
	// comparison is case-insensitive and substring-based because exports
	// vary between "Flight Number", "FLIGHT NUMBER" and decorated forms.
	headerMarker = "flight number"

	// headerScanWindow bounds the header search. Rows beyond it are
	// always data; defaulting to row 0 past the window is best-effort
	// degraded behavior, not an error.
	headerScanWindow = 10
)

// FindHeaderRow returns the index of the first row within the scan
// window containing a cell that mentions the flight-number label, or 0
// when no such row exists.
func FindHeaderRow(t RawTable) int {
	limit := headerScanWindow
	if len(t) < limit {
		limit = len(t)
	}
	for i := 0; i < limit; i++ {
		for _, cell := range t[i] {
			if strings.Contains(strings.ToLower(cell), headerMarker) {
				return i
			}
		}
	}
	return 0
}
