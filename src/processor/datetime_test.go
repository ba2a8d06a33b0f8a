package processor

import (
	"testing"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringCol(name string, values ...string) series.Series {
	return series.New(values, series.String, name)
}

func TestFindDateColumnByPattern(t *testing.T) {
	df := dataframe.New(
		stringCol("Flight Number", "AB123", "CD456"),
		stringCol("When", "9-Jun-25", "10-Jun-25"),
	)
	assert.Equal(t, "When", FindDateColumn(df))
}

func TestFindDateColumnFallsBackToSyntheticName(t *testing.T) {
	df := dataframe.New(
		stringCol("Flight Number", "AB123"),
		stringCol("STD", "10:00 AM"),
		stringCol("date_col_3", "garbage"),
	)
	assert.Equal(t, "date_col_3", FindDateColumn(df))
}

func TestFindDateColumnFallsBackToThirdColumn(t *testing.T) {
	df := dataframe.New(
		stringCol("Flight Number", "AB123"),
		stringCol("STD", "10:00 AM"),
		stringCol("ATD", "10:10 AM"),
	)
	assert.Equal(t, "ATD", FindDateColumn(df))
}

func TestFindDateColumnNone(t *testing.T) {
	df := dataframe.New(
		stringCol("Flight Number", "AB123"),
		stringCol("STD", "10:00 AM"),
	)
	assert.Equal(t, "", FindDateColumn(df))
}

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("9-Jun-25")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("09-Jun-2025")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("not a date")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestExtractLandedTime(t *testing.T) {
	got, ok := ExtractLandedTime("Landed 10:45PM")
	require.True(t, ok)
	assert.Equal(t, "10:45PM", got)

	got, ok = ExtractLandedTime("Landed 9:15 AM")
	require.True(t, ok)
	assert.Equal(t, "9:15 AM", got)

	_, ok = ExtractLandedTime("Cancelled")
	assert.False(t, ok)
}

func TestParseClock(t *testing.T) {
	c, ok := ParseClock("10:45PM")
	require.True(t, ok)
	assert.Equal(t, 22, c.Hour())
	assert.Equal(t, 45, c.Minute())

	c, ok = ParseClock("07:30")
	require.True(t, ok)
	assert.Equal(t, 7, c.Hour())

	_, ok = ParseClock("noonish")
	assert.False(t, ok)
}

func TestCombineDateClock(t *testing.T) {
	date := time.Date(2025, time.June, 9, 0, 0, 0, 0, time.UTC)

	ts := CombineDateClock(&date, "10:45PM")
	require.NotNil(t, ts)
	assert.Equal(t, time.Date(2025, time.June, 9, 22, 45, 0, 0, time.UTC), *ts)

	// No resolved date means no timestamp, whatever the time text says.
	assert.Nil(t, CombineDateClock(nil, "10:45PM"))
	assert.Nil(t, CombineDateClock(&date, "garbage"))
}

func TestResolveDatesRowLocalFailures(t *testing.T) {
	df := dataframe.New(
		stringCol("Date", "9-Jun-25", "garbage", "10-Jun-25"),
	)
	dates := ResolveDates(df, "Date")

	require.Len(t, dates, 3)
	assert.NotNil(t, dates[0])
	assert.Nil(t, dates[1]) // bad cell stays absent, row is kept
	assert.NotNil(t, dates[2])
}
