// stats.go
package analyzer

import (
	"math"
	"sort"

	"FlightRadarAnalytics/src/processor"

	"gonum.org/v1/gonum/stat"
)

const severeDelayMinutes = 30.0

// basicStats: record count, distinct airlines, resolved date range and
// average daily flight volume. The daily average divides the full
// record count (dated or not) by the number of distinct dates.
func basicStats(records []processor.FlightRecord) SubResult {
	airlines := map[string]struct{}{}
	dates := map[string]struct{}{}
	var minDate, maxDate string
	for _, r := range records {
		if r.AirlineCode != nil {
			airlines[*r.AirlineCode] = struct{}{}
		}
		if r.Date != nil {
			d := r.Date.Format("2006-01-02")
			dates[d] = struct{}{}
			if minDate == "" || d < minDate {
				minDate = d
			}
			if d > maxDate {
				maxDate = d
			}
		}
	}

	dateRange := map[string]any{"start": nil, "end": nil}
	avgDaily := 0.0
	if len(dates) > 0 {
		dateRange["start"] = minDate
		dateRange["end"] = maxDate
		avgDaily = float64(len(records)) / float64(len(dates))
	}
	return SubResult{
		"total_flights":     len(records),
		"unique_airlines":   len(airlines),
		"date_range":        dateRange,
		"avg_daily_flights": avgDaily,
	}
}

type hourBucket struct {
	count  int
	delays []float64
}

// peakAnalysis groups by departure hour: per-hour volume, mean delay,
// delay spread and a congestion index (count x mean delay, missing mean
// treated as 0 for the product only). Ties for busiest and most
// congested hour break toward the lowest hour.
func peakAnalysis(records []processor.FlightRecord) SubResult {
	buckets := map[int]*hourBucket{}
	for _, r := range records {
		if r.DepartureHour == nil {
			continue
		}
		b := buckets[*r.DepartureHour]
		if b == nil {
			b = &hourBucket{}
			buckets[*r.DepartureHour] = b
		}
		b.count++
		if r.DepartureDelayMin != nil {
			b.delays = append(b.delays, *r.DepartureDelayMin)
		}
	}
	if len(buckets) == 0 {
		return SubResult{}
	}

	hours := make([]int, 0, len(buckets))
	for h := range buckets {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	hourly := map[int]map[string]any{}
	busiestHour, mostCongestedHour := hours[0], hours[0]
	maxCount, maxCongestion := -1, math.Inf(-1)
	for _, h := range hours {
		b := buckets[h]
		var avgDelay, delayStd any
		congestion := 0.0
		if len(b.delays) > 0 {
			avg := round2(stat.Mean(b.delays, nil))
			avgDelay = avg
			delayStd = round2(sampleStd(b.delays))
			congestion = float64(b.count) * avg
		}
		hourly[h] = map[string]any{
			"flight_count":     b.count,
			"avg_delay":        avgDelay,
			"delay_std":        delayStd,
			"congestion_index": congestion,
		}
		if b.count > maxCount {
			maxCount = b.count
			busiestHour = h
		}
		if congestion > maxCongestion {
			maxCongestion = congestion
			mostCongestedHour = h
		}
	}

	return SubResult{
		"hourly_stats":        hourly,
		"peak_hours":          topHoursByCount(hours, buckets, hourly, 5),
		"busiest_hour":        busiestHour,
		"most_congested_hour": mostCongestedHour,
	}
}

// topHoursByCount returns the k busiest hours, count descending, hour
// ascending on equal counts.
func topHoursByCount(hours []int, buckets map[int]*hourBucket, hourly map[int]map[string]any, k int) []map[string]any {
	ranked := append([]int(nil), hours...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return buckets[ranked[i]].count > buckets[ranked[j]].count
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	peaks := make([]map[string]any, 0, len(ranked))
	for _, h := range ranked {
		entry := map[string]any{"hour": h}
		for key, v := range hourly[h] {
			entry[key] = v
		}
		peaks = append(peaks, entry)
	}
	return peaks
}

// delayAnalysis: distribution of every delay-bearing field plus mean
// delay per weekday for the primary field. Missing arrival data must
// not suppress the departure statistics, so each field degrades
// independently.
func delayAnalysis(records []processor.FlightRecord, threshold float64) SubResult {
	fields := []struct {
		name string
		get  func(processor.FlightRecord) *float64
	}{
		{"departure_delay", func(r processor.FlightRecord) *float64 { return r.DepartureDelayMin }},
		{"arrival_delay", func(r processor.FlightRecord) *float64 { return r.ArrivalDelayMin }},
	}

	out := SubResult{}
	var primary func(processor.FlightRecord) *float64
	for _, f := range fields {
		values := collect(records, f.get)
		if len(values) == 0 {
			continue
		}
		if primary == nil {
			primary = f.get
		}
		onTime := 0
		for _, v := range values {
			if v <= threshold {
				onTime++
			}
		}
		out[f.name] = map[string]any{
			"mean":   stat.Mean(values, nil),
			"median": percentile(values, 50),
			"std":    sampleStd(values),
			"percentiles": map[string]any{
				"25th": percentile(values, 25),
				"75th": percentile(values, 75),
				"95th": percentile(values, 95),
			},
			"on_time_rate": float64(onTime) / float64(len(values)),
		}
	}
	if len(out) == 0 {
		return SubResult{}
	}

	daily := map[string][]float64{}
	for _, r := range records {
		v := primary(r)
		if r.DayOfWeek == nil || v == nil {
			continue
		}
		daily[*r.DayOfWeek] = append(daily[*r.DayOfWeek], *v)
	}
	if len(daily) > 0 {
		patterns := map[string]any{}
		for day, values := range daily {
			patterns[day] = stat.Mean(values, nil)
		}
		out["daily_patterns"] = patterns
	}
	return out
}

// efficiencyMetrics: overall on-time rate, severe-delay rate and the
// per-airline on-time breakdown. Each metric appears only when its
// inputs exist.
func efficiencyMetrics(records []processor.FlightRecord) SubResult {
	out := SubResult{}

	onTimeTrue, onTimeTotal := 0, 0
	for _, r := range records {
		if r.OnTime == nil {
			continue
		}
		onTimeTotal++
		if *r.OnTime {
			onTimeTrue++
		}
	}
	if onTimeTotal > 0 {
		out["on_time_performance"] = float64(onTimeTrue) / float64(onTimeTotal)
	}

	severe, delayed := 0, 0
	for _, r := range records {
		if r.DepartureDelayMin == nil {
			continue
		}
		delayed++
		if *r.DepartureDelayMin > severeDelayMinutes {
			severe++
		}
	}
	if delayed > 0 && len(records) > 0 {
		out["severe_delay_rate"] = float64(severe) / float64(len(records))
	}

	byAirline := map[string][2]int{} // true, total
	for _, r := range records {
		if r.AirlineCode == nil || r.OnTime == nil {
			continue
		}
		c := byAirline[*r.AirlineCode]
		c[1]++
		if *r.OnTime {
			c[0]++
		}
		byAirline[*r.AirlineCode] = c
	}
	if len(byAirline) > 0 {
		perf := map[string]any{}
		for code, c := range byAirline {
			perf[code] = float64(c[0]) / float64(c[1])
		}
		out["airline_performance"] = perf
	}
	return out
}

func collect(records []processor.FlightRecord, get func(processor.FlightRecord) *float64) []float64 {
	var values []float64
	for _, r := range records {
		if v := get(r); v != nil {
			values = append(values, *v)
		}
	}
	return values
}

// sampleStd is the unbiased (n-1) standard deviation; a single sample
// has no spread estimate and reports 0 so results stay serializable.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}

// percentile uses linear interpolation between closest ranks, the
// convention the delay distribution figures are defined against.
func percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	h := (float64(len(sorted)) - 1) * p / 100
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	return sorted[lo] + (sorted[lo+1]-sorted[lo])*(h-float64(lo))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
