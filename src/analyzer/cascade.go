// cascade.go
package analyzer

import (
	"sort"

	"FlightRadarAnalytics/src/processor"

	"gonum.org/v1/gonum/stat"
)

// cascadeTriggerMinutes is the delay beyond which a flight is assumed
// to knock on to the operator's next departure.
const cascadeTriggerMinutes = 15.0

// cascadeAnalysis models delay propagation inside each airline's own
// schedule: a late aircraft or crew delays the next flight it operates.
// Attribution is computed after temporal ordering within the same
// operator; cross-airline cascades are out of scope because aircraft
// and crew continuity is airline-specific.
//
// Flights without a schedulable departure timestamp are excluded, as
// are airlines left with fewer than two such flights. Ordering within
// an airline is by scheduled departure, stable on ties.
func cascadeAnalysis(records []processor.FlightRecord, cascadeFactor float64) SubResult {
	hasAirline, hasDelay := false, false
	for _, r := range records {
		hasAirline = hasAirline || r.AirlineCode != nil
		hasDelay = hasDelay || r.DepartureDelayMin != nil
	}
	if !hasAirline || !hasDelay {
		return SubResult{}
	}

	// First-seen airline order keeps the scan deterministic.
	groups := map[string][]processor.FlightRecord{}
	var order []string
	for _, r := range records {
		if r.AirlineCode == nil || r.ScheduledDeparture == nil {
			continue
		}
		code := *r.AirlineCode
		if _, ok := groups[code]; !ok {
			order = append(order, code)
		}
		groups[code] = append(groups[code], r)
	}

	var impacts []float64
	for _, code := range order {
		flights := groups[code]
		if len(flights) < 2 {
			continue
		}
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].ScheduledDeparture.Before(*flights[j].ScheduledDeparture)
		})
		for i := 1; i < len(flights); i++ {
			prev := flights[i-1].DepartureDelayMin
			if prev != nil && *prev > cascadeTriggerMinutes {
				impacts = append(impacts, *prev*cascadeFactor)
			}
		}
	}

	avg := 0.0
	total := 0.0
	if len(impacts) > 0 {
		avg = stat.Mean(impacts, nil)
		for _, v := range impacts {
			total += v
		}
	}
	return SubResult{
		"affected_flights":      len(impacts),
		"avg_cascade_impact":    avg,
		"total_cascade_minutes": total,
	}
}
