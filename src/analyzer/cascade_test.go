package analyzer

import (
	"testing"
	"time"

	"FlightRadarAnalytics/src/processor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduledFlight(airline string, hour int, delay *float64) processor.FlightRecord {
	dep := time.Date(2025, time.June, 1, hour, 0, 0, 0, time.UTC)
	return processor.FlightRecord{
		FlightNumber:       airline + "100",
		AirlineCode:        &airline,
		ScheduledDeparture: &dep,
		DepartureDelayMin:  delay,
	}
}

func TestCascadePropagation(t *testing.T) {
	// Delays [20, 5, 30] in schedule order: only the 20-minute delay
	// exceeds the 15-minute trigger for a following flight, so one
	// flight is affected with 20 * 0.4 = 8 cascade minutes. The final
	// 30-minute delay has no successor.
	records := []processor.FlightRecord{
		scheduledFlight("AB", 8, fptr(20)),
		scheduledFlight("AB", 10, fptr(5)),
		scheduledFlight("AB", 12, fptr(30)),
	}
	got := cascadeAnalysis(records, 0.4)

	assert.Equal(t, 1, got["affected_flights"])
	assert.InDelta(t, 8.0, got["avg_cascade_impact"].(float64), 1e-9)
	assert.InDelta(t, 8.0, got["total_cascade_minutes"].(float64), 1e-9)
}

func TestCascadeOrdersBySchedule(t *testing.T) {
	// Input order is not schedule order; the 40-minute delay departs
	// first and cascades onto the later flight.
	records := []processor.FlightRecord{
		scheduledFlight("AB", 15, fptr(0)),
		scheduledFlight("AB", 7, fptr(40)),
	}
	got := cascadeAnalysis(records, 0.5)

	assert.Equal(t, 1, got["affected_flights"])
	assert.InDelta(t, 20.0, got["total_cascade_minutes"].(float64), 1e-9)
}

func TestCascadeStaysWithinAirline(t *testing.T) {
	records := []processor.FlightRecord{
		scheduledFlight("AB", 8, fptr(60)),
		scheduledFlight("CD", 9, fptr(0)),
	}
	got := cascadeAnalysis(records, 0.4)

	// Single-flight groups have no consecutive pairs.
	assert.Equal(t, 0, got["affected_flights"])
	assert.Equal(t, 0.0, got["avg_cascade_impact"])
	assert.Equal(t, 0.0, got["total_cascade_minutes"])
}

func TestCascadeExcludesUnsortableRecords(t *testing.T) {
	unsortable := processor.FlightRecord{
		FlightNumber:      "AB999",
		AirlineCode:       sptr("AB"),
		DepartureDelayMin: fptr(120),
	}
	records := []processor.FlightRecord{
		unsortable, // no scheduled departure, excluded from the scan
		scheduledFlight("AB", 8, fptr(20)),
		scheduledFlight("AB", 10, fptr(0)),
	}
	got := cascadeAnalysis(records, 0.4)

	assert.Equal(t, 1, got["affected_flights"])
	assert.InDelta(t, 8.0, got["total_cascade_minutes"].(float64), 1e-9)
}

func TestCascadeEmptyWithoutInputs(t *testing.T) {
	require.Empty(t, cascadeAnalysis(nil, 0.4))

	noAirline := []processor.FlightRecord{{FlightNumber: "123", DepartureDelayMin: fptr(20)}}
	assert.Empty(t, cascadeAnalysis(noAirline, 0.4))

	noDelay := []processor.FlightRecord{{FlightNumber: "AB1", AirlineCode: sptr("AB")}}
	assert.Empty(t, cascadeAnalysis(noDelay, 0.4))
}
