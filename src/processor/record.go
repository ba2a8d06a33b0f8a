// record.go
package processor

import (
	"regexp"
	"time"
)

// FlightRecord is the canonical unit of analysis. Optional fields are
// pointers: nil means the source text could not be parsed, never a
// synthetic default. Records are built once during ingestion and are
// immutable afterwards.
type FlightRecord struct {
	FlightNumber       string     `csv:"flight_number" json:"flight_number"`
	AirlineCode        *string    `csv:"airline_code" json:"airline_code"`
	Date               *time.Time `csv:"date" json:"date"`
	ScheduledDeparture *time.Time `csv:"scheduled_departure" json:"scheduled_departure"`
	ActualDeparture    *time.Time `csv:"actual_departure" json:"actual_departure"`
	ScheduledArrival   *time.Time `csv:"scheduled_arrival" json:"scheduled_arrival"`
	ActualArrival      *time.Time `csv:"actual_arrival" json:"actual_arrival"`
	DepartureDelayMin  *float64   `csv:"departure_delay_min" json:"departure_delay_min"`
	ArrivalDelayMin    *float64   `csv:"arrival_delay_min" json:"arrival_delay_min"`
	DepartureHour      *int       `csv:"departure_hour" json:"departure_hour"`
	DayOfWeek          *string    `csv:"day_of_week" json:"day_of_week"`
	IsWeekend          *bool      `csv:"is_weekend" json:"is_weekend"`
	OnTime             *bool      `csv:"on_time" json:"on_time"`
}

// airlinePattern: IATA/ICAO style prefix, two or three uppercase
// letters. The first match within the flight number wins.
var airlinePattern = regexp.MustCompile(`[A-Z]{2,3}`)

// AirlineCode extracts the operator code from a flight number.
func AirlineCode(flightNumber string) (string, bool) {
	code := airlinePattern.FindString(flightNumber)
	return code, code != ""
}

// DelayMinutes returns actual minus scheduled in signed minutes
// (negative means early), or nil unless both timestamps are present.
// Full floating precision is retained; rounding happens only in
// presentation-level aggregates.
func DelayMinutes(scheduled, actual *time.Time) *float64 {
	if scheduled == nil || actual == nil {
		return nil
	}
	d := actual.Sub(*scheduled).Minutes()
	return &d
}

// deriveFeatures fills the computed fields from the resolved timestamps.
// Every derived field stays consistent with its source: absent source,
// absent feature.
func (r *FlightRecord) deriveFeatures(delayThreshold float64) {
	if code, ok := AirlineCode(r.FlightNumber); ok {
		r.AirlineCode = &code
	}
	if r.ScheduledDeparture != nil {
		h := r.ScheduledDeparture.Hour()
		r.DepartureHour = &h
	}
	if r.Date != nil {
		day := r.Date.Weekday().String()
		weekend := r.Date.Weekday() == time.Saturday || r.Date.Weekday() == time.Sunday
		r.DayOfWeek = &day
		r.IsWeekend = &weekend
	}
	if r.DepartureDelayMin != nil {
		onTime := *r.DepartureDelayMin <= delayThreshold
		r.OnTime = &onTime
	}
}
