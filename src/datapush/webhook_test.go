package datapush

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"FlightRadarAnalytics/src/analyzer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() analyzer.Result {
	return analyzer.Result{
		"basic_stats": analyzer.SubResult{
			"total_flights":   42,
			"unique_airlines": 3,
		},
		"efficiency_metrics": analyzer.SubResult{
			"on_time_performance": 0.8,
			"severe_delay_rate":   0.1,
		},
		"cascade_analysis": analyzer.SubResult{
			"affected_flights":      2,
			"total_cascade_minutes": 12.5,
		},
	}
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(sampleResult())

	assert.Equal(t, 42, s.TotalFlights)
	assert.Equal(t, 3, s.UniqueAirlines)
	assert.Equal(t, 0.8, s.OnTimeRate)
	assert.Equal(t, 0.1, s.SevereDelayRate)
	assert.Equal(t, 2, s.AffectedFlights)
	assert.Equal(t, 12.5, s.CascadeMinutes)
	assert.NotEmpty(t, s.GeneratedAt)
}

func TestBuildSummaryMissingSubResults(t *testing.T) {
	s := BuildSummary(analyzer.Result{})

	assert.Zero(t, s.TotalFlights)
	assert.Zero(t, s.OnTimeRate)
	assert.Zero(t, s.AffectedFlights)
}

func TestPush(t *testing.T) {
	var got Summary
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	require.NoError(t, Push(srv.URL, sampleResult()))
	assert.Equal(t, 42, got.TotalFlights)
	assert.Equal(t, 12.5, got.CascadeMinutes)
}

func TestPushRetriesTransientFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	require.NoError(t, Push(srv.URL, sampleResult()))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
