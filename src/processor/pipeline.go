// pipeline.go
package processor

import (
	"fmt"

	"FlightRadarAnalytics/src/storage"

	"github.com/go-gota/gota/dataframe"
)

// Source column labels for the time-of-day fields. Matched
// case-insensitively against the normalized column set.
const (
	colScheduledDeparture = "STD"
	colActualDeparture    = "ATD"
	colScheduledArrival   = "STA"
	colActualArrival      = "ATA"
)

// Transform runs the full ingestion pipeline over one raw block:
// empty-row pruning, header detection, schema normalization, timestamp
// resolution, delay calculation and feature derivation. It returns the
// record sequence together with the normalized dataframe (the side
// artifact persisted for inspection). Field-level parse failures yield
// absent fields; Transform itself never fails on content.
func Transform(t RawTable, delayThreshold float64, logger *storage.Logger) ([]FlightRecord, dataframe.DataFrame) {
	t = DropEmptyRows(t)
	headerRow := FindHeaderRow(t)
	df := Normalize(t, headerRow)
	records := BuildRecords(df, delayThreshold, logger)
	return records, df
}

// BuildRecords constructs one FlightRecord per normalized row.
func BuildRecords(df dataframe.DataFrame, delayThreshold float64, logger *storage.Logger) []FlightRecord {
	n := df.Nrow()
	if n <= 0 {
		return nil
	}

	dateCol := FindDateColumn(df)
	if dateCol == "" {
		warnf(logger, "no date column detected; timestamps will be absent")
	}
	dates := ResolveDates(df, dateCol)

	flights := columnOrBlank(df, n, flightNumberName(df))
	std := columnOrBlank(df, n, findColumn(df, colScheduledDeparture))
	atd := columnOrBlank(df, n, findColumn(df, colActualDeparture))
	sta := columnOrBlank(df, n, findColumn(df, colScheduledArrival))
	ata := columnOrBlank(df, n, findColumn(df, colActualArrival))

	records := make([]FlightRecord, 0, n)
	unparsedDates := 0
	for i := 0; i < n; i++ {
		r := FlightRecord{
			FlightNumber: flights[i],
			Date:         dates[i],
		}
		if dates[i] == nil && dateCol != "" {
			unparsedDates++
		}

		r.ScheduledDeparture = CombineDateClock(r.Date, std[i])
		r.ActualDeparture = CombineDateClock(r.Date, atd[i])
		r.ScheduledArrival = CombineDateClock(r.Date, sta[i])
		if landed, ok := ExtractLandedTime(ata[i]); ok {
			r.ActualArrival = CombineDateClock(r.Date, landed)
		}

		r.DepartureDelayMin = DelayMinutes(r.ScheduledDeparture, r.ActualDeparture)
		r.ArrivalDelayMin = DelayMinutes(r.ScheduledArrival, r.ActualArrival)
		r.deriveFeatures(delayThreshold)

		records = append(records, r)
	}
	if unparsedDates > 0 {
		warnf(logger, "%d of %d rows carried an unparsable date", unparsedDates, n)
	}
	return records
}

func flightNumberName(df dataframe.DataFrame) string {
	idx, _ := flightNumberColumn(df.Names())
	if idx < 0 {
		return ""
	}
	return df.Names()[idx]
}

func columnOrBlank(df dataframe.DataFrame, n int, name string) []string {
	if name == "" || !HasColumn(df, name) {
		return make([]string, n)
	}
	return df.Col(name).Records()
}

func warnf(logger *storage.Logger, format string, args ...interface{}) {
	if logger != nil {
		logger.Warning(fmt.Sprintf(format, args...))
	}
}
