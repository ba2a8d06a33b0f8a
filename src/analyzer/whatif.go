// whatif.go
package analyzer

import (
	"FlightRadarAnalytics/src/processor"

	"gonum.org/v1/gonum/stat"
)

// simulationFloorMinutes bounds how early a simulated flight may run.
// An aircraft cannot be projected to leave more than 15 minutes ahead
// of schedule; this is a scenario bound, not a measurement fact.
const simulationFloorMinutes = -15.0

// whatIfSimulation projects delay statistics under a uniform
// delay-reduction assumption over every departure delay.
func whatIfSimulation(records []processor.FlightRecord, reductionMinutes float64) SubResult {
	delays := collect(records, func(r processor.FlightRecord) *float64 { return r.DepartureDelayMin })
	if len(delays) == 0 {
		return SubResult{}
	}

	simulated := make([]float64, len(delays))
	for i, d := range delays {
		s := d - reductionMinutes
		if s < simulationFloorMinutes {
			s = simulationFloorMinutes
		}
		simulated[i] = s
	}

	currentAvg := stat.Mean(delays, nil)
	simulatedAvg := stat.Mean(simulated, nil)
	improvement := currentAvg - simulatedAvg
	percent := 0.0
	if currentAvg != 0 {
		percent = improvement / currentAvg * 100
	}

	return SubResult{
		"delay_reduction_scenario": map[string]any{
			"reduction_minutes":   reductionMinutes,
			"current_avg_delay":   currentAvg,
			"simulated_avg_delay": simulatedAvg,
			"improvement":         improvement,
			"percent_improvement": percent,
		},
	}
}
