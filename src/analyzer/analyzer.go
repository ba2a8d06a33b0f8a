// analyzer.go
package analyzer

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"FlightRadarAnalytics/src/processor"
)

// Params are the knobs the analysis runs against. Zero values are not
// meaningful; use DefaultParams as the base.
type Params struct {
	DelayThreshold           float64 `json:"delay_threshold"`
	CascadeFactor            float64 `json:"cascade_factor"`
	SimulationDelayReduction float64 `json:"simulation_delay_reduction"`
}

func DefaultParams() Params {
	return Params{
		DelayThreshold:           15,
		CascadeFactor:            0.4,
		SimulationDelayReduction: 5,
	}
}

// SubResult is one independent sub-computation's output. Empty means
// the input lacked the fields that computation needs; that is degraded
// behavior, never an error.
type SubResult map[string]any

// Result is the full analysis hand-off: nested mappings of numbers,
// strings, booleans and nulls, serializable as JSON for consumers in
// other processes or languages.
type Result map[string]SubResult

// Run executes the complete analysis suite over one record sequence.
// The six sub-computations are independent and read-only over the
// records, so they run concurrently; each degrades to an empty mapping
// on its own.
func Run(records []processor.FlightRecord, p Params) Result {
	var (
		basic, peak, delays, efficiency, simulation, cascade SubResult
		wg                                                   sync.WaitGroup
	)
	launch := func(dst *SubResult, fn func() SubResult) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			*dst = fn()
		}()
	}

	launch(&basic, func() SubResult { return basicStats(records) })
	launch(&peak, func() SubResult { return peakAnalysis(records) })
	launch(&delays, func() SubResult { return delayAnalysis(records, p.DelayThreshold) })
	launch(&efficiency, func() SubResult { return efficiencyMetrics(records) })
	launch(&simulation, func() SubResult { return whatIfSimulation(records, p.SimulationDelayReduction) })
	launch(&cascade, func() SubResult { return cascadeAnalysis(records, p.CascadeFactor) })
	wg.Wait()

	return Result{
		"basic_stats":        basic,
		"peak_analysis":      peak,
		"delay_analysis":     delays,
		"efficiency_metrics": efficiency,
		"simulation":         simulation,
		"cascade_analysis":   cascade,
	}
}

// WriteJSON persists the result for downstream reporting tools.
func (r Result) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode analysis result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write analysis result: %w", err)
	}
	return nil
}
