package datapush

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"FlightRadarAnalytics/src/analyzer"
)

const (
	retryTimes    = 5
	retryInterval = 2 * time.Second
	pushTimeout   = 10 * time.Second
)

// Summary is the compact payload pushed to a webhook after each
// analysis run. Receivers get headline figures, not the full result.
type Summary struct {
	GeneratedAt     string  `json:"generated_at"`
	TotalFlights    int     `json:"total_flights"`
	UniqueAirlines  int     `json:"unique_airlines"`
	OnTimeRate      float64 `json:"on_time_rate"`
	SevereDelayRate float64 `json:"severe_delay_rate"`
	AffectedFlights int     `json:"cascade_affected_flights"`
	CascadeMinutes  float64 `json:"cascade_total_minutes"`
}

// BuildSummary extracts the headline figures from an analysis result.
// Absent sub-results leave their fields zeroed.
func BuildSummary(result analyzer.Result) Summary {
	s := Summary{GeneratedAt: time.Now().Format(time.RFC3339)}
	if basic := result["basic_stats"]; basic != nil {
		s.TotalFlights, _ = basic["total_flights"].(int)
		s.UniqueAirlines, _ = basic["unique_airlines"].(int)
	}
	if eff := result["efficiency_metrics"]; eff != nil {
		s.OnTimeRate, _ = eff["on_time_performance"].(float64)
		s.SevereDelayRate, _ = eff["severe_delay_rate"].(float64)
	}
	if cascade := result["cascade_analysis"]; cascade != nil {
		s.AffectedFlights, _ = cascade["affected_flights"].(int)
		s.CascadeMinutes, _ = cascade["total_cascade_minutes"].(float64)
	}
	return s
}

// Push POSTs the summary to the webhook, retrying transient failures a
// bounded number of times.
func Push(url string, result analyzer.Result) error {
	payload, err := json.Marshal(BuildSummary(result))
	if err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return retry(func() error {
		return post(url, payload)
	}, retryTimes, retryInterval)
}

func post(url string, payload []byte) error {
	client := &http.Client{Timeout: pushTimeout}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("push summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("push summary: unexpected status %s", resp.Status)
	}
	return nil
}

func retry(fn func() error, times int, interval time.Duration) error {
	var err error
	for i := 0; i < times; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < times-1 {
			time.Sleep(interval)
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", times, err)
}
