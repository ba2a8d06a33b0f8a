// report.go
package file

import (
	"fmt"
	"path/filepath"
	"sort"

	"FlightRadarAnalytics/src/analyzer"

	"github.com/xuri/excelize/v2"
)

// WriteReportWorkbook saves the analysis result as a two-sheet workbook
// for spreadsheet consumers: headline figures on Summary, the per-hour
// breakdown on Hourly.
func WriteReportWorkbook(result analyzer.Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Summary")
	writeSummarySheet(f, result)

	if hourly := hourlyStats(result); len(hourly) > 0 {
		if _, err := f.NewSheet("Hourly"); err != nil {
			return fmt.Errorf("add hourly sheet: %w", err)
		}
		writeHourlySheet(f, hourly)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result analyzer.Result) {
	rows := [][]any{{"Metric", "Value"}}
	appendFrom := func(sub analyzer.SubResult, keys ...string) {
		for _, key := range keys {
			if v, ok := sub[key]; ok {
				rows = append(rows, []any{key, v})
			}
		}
	}
	appendFrom(result["basic_stats"], "total_flights", "unique_airlines", "avg_daily_flights")
	appendFrom(result["efficiency_metrics"], "on_time_performance", "severe_delay_rate")
	appendFrom(result["peak_analysis"], "busiest_hour", "most_congested_hour")
	appendFrom(result["cascade_analysis"], "affected_flights", "total_cascade_minutes")

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		f.SetSheetRow("Summary", cell, &row)
	}
}

func hourlyStats(result analyzer.Result) map[int]map[string]any {
	peak := result["peak_analysis"]
	if peak == nil {
		return nil
	}
	hourly, _ := peak["hourly_stats"].(map[int]map[string]any)
	return hourly
}

func writeHourlySheet(f *excelize.File, hourly map[int]map[string]any) {
	hours := make([]int, 0, len(hourly))
	for h := range hourly {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	header := []any{"hour", "flight_count", "avg_delay", "delay_std", "congestion_index"}
	f.SetSheetRow("Hourly", "A1", &header)
	for i, h := range hours {
		stats := hourly[h]
		row := []any{h, stats["flight_count"], stats["avg_delay"], stats["delay_std"], stats["congestion_index"]}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		f.SetSheetRow("Hourly", cell, &row)
	}
}

// ReportWorkbookPath maps a source file to the workbook written into the
// reports directory.
func ReportWorkbookPath(source, reportsDir string) string {
	base := stripExt(filepath.Base(source))
	return filepath.Join(reportsDir, base+"_report.xlsx")
}
