// datetime.go
package processor

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
)

// dateSampleSize bounds how many values per column the date-column scan
// inspects. Like the header window, this is a documented contract:
// downstream statistics depend on the same column being picked for the
// same input.
const dateSampleSize = 10

var (
	// datePattern matches the day-month-year text these exports use,
	// e.g. "9-Jun-25" or "09-Jun-2025".
	datePattern = regexp.MustCompile(`\d{1,2}-[A-Za-z]{3}-\d{2,4}`)

	// landedPattern pulls the time-of-day out of a free-text actual
	// arrival such as "Landed 10:45PM".
	landedPattern = regexp.MustCompile(`Landed\s*([0-9:]+\s*[APM]{2})`)
)

var dateLayouts = []string{
	"2-Jan-06",
	"2-Jan-2006",
	"2006-01-02",
	"2006-01-02 15:04:05",
}

var clockLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"15:04:05",
	"15:04",
}

// FindDateColumn identifies the date-bearing column: the first column
// whose first few non-empty values contain a day-month-year pattern.
// Fallbacks, in order: a column synthesized as "date_col_*", the third
// column by position, none.
func FindDateColumn(df dataframe.DataFrame) string {
	for _, name := range df.Names() {
		sampled := 0
		for _, v := range df.Col(name).Records() {
			if strings.TrimSpace(v) == "" {
				continue
			}
			if datePattern.MatchString(v) {
				return name
			}
			sampled++
			if sampled >= dateSampleSize {
				break
			}
		}
	}
	for _, name := range df.Names() {
		if strings.Contains(name, "date_col") {
			return name
		}
	}
	if names := df.Names(); len(names) > 2 {
		return names[2]
	}
	return ""
}

// ParseDate parses a calendar date from export text. The bool result is
// false for unparsable values; callers leave the field absent rather
// than dropping the row.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractLandedTime pulls the trailing time-of-day out of a status-
// prefixed actual arrival ("Landed 10:45PM" -> "10:45PM").
func ExtractLandedTime(s string) (string, bool) {
	m := landedPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ParseClock parses a bare time-of-day in either 12-hour or 24-hour
// notation.
func ParseClock(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CombineDateClock builds an absolute timestamp from a resolved
// calendar date and a clock reading. Without a date there is no
// timestamp, regardless of the time text.
func CombineDateClock(date *time.Time, clockText string) *time.Time {
	if date == nil {
		return nil
	}
	clock, ok := ParseClock(clockText)
	if !ok {
		return nil
	}
	t := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
	return &t
}

// ResolveDates parses the date column into one optional calendar date
// per row. A nil entry means that row's date text was missing or
// unparsable.
func ResolveDates(df dataframe.DataFrame, dateCol string) []*time.Time {
	dates := make([]*time.Time, df.Nrow())
	if dateCol == "" || !HasColumn(df, dateCol) {
		return dates
	}
	for i, v := range df.Col(dateCol).Records() {
		if d, ok := ParseDate(v); ok {
			d := d
			dates[i] = &d
		}
	}
	return dates
}
