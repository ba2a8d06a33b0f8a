package analyzer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"FlightRadarAnalytics/src/processor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var resultKeys = []string{
	"basic_stats",
	"peak_analysis",
	"delay_analysis",
	"efficiency_metrics",
	"simulation",
	"cascade_analysis",
}

func TestRunProducesAllSubResults(t *testing.T) {
	dep := time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)
	date := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	records := []processor.FlightRecord{
		{
			FlightNumber:       "AB101",
			AirlineCode:        sptr("AB"),
			Date:               &date,
			ScheduledDeparture: &dep,
			DepartureDelayMin:  fptr(20),
			DepartureHour:      iptr(9),
			DayOfWeek:          sptr("Sunday"),
			OnTime:             bptr(false),
		},
	}
	result := Run(records, DefaultParams())

	for _, key := range resultKeys {
		require.Contains(t, result, key)
	}
	assert.Equal(t, 1, result["basic_stats"]["total_flights"])
	assert.NotEmpty(t, result["peak_analysis"])
	assert.NotEmpty(t, result["delay_analysis"])
}

func TestRunDegradesToEmptySubResults(t *testing.T) {
	// Records with nothing but a flight number: every sub-computation
	// that needs more degrades to an empty mapping, none errors.
	records := []processor.FlightRecord{{FlightNumber: "AB101"}}
	result := Run(records, DefaultParams())

	for _, key := range resultKeys {
		require.Contains(t, result, key)
	}
	assert.Empty(t, result["peak_analysis"])
	assert.Empty(t, result["delay_analysis"])
	assert.Empty(t, result["efficiency_metrics"])
	assert.Empty(t, result["simulation"])
	assert.Empty(t, result["cascade_analysis"])
}

func TestResultIsJSONSerializable(t *testing.T) {
	records := delayRecords(20, 5, -3)
	result := Run(records, DefaultParams())

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range resultKeys {
		assert.Contains(t, decoded, key)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.json")
	result := Run(delayRecords(10), DefaultParams())

	require.NoError(t, result.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "simulation")
}
