// reader.go
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"FlightRadarAnalytics/src/processor"

	"github.com/go-gota/gota/dataframe"
	"github.com/jszwec/csvutil"
	"github.com/tealeg/xlsx"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads one worksheet into a raw table. A missing file is the
// one fatal boundary condition of the pipeline and is surfaced before
// any processing begins. sheetName may be empty to take the first
// sheet.
func ReadXLSX(path, sheetName string) (processor.RawTable, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("source not found: %w", err)
	}

	xlFile, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx file: %w", err)
	}
	if len(xlFile.Sheets) == 0 {
		return nil, fmt.Errorf("no worksheets in %s", path)
	}

	sheet := xlFile.Sheets[0]
	if sheetName != "" {
		s, ok := xlFile.Sheet[sheetName]
		if !ok {
			return nil, fmt.Errorf("worksheet %q not found in %s", sheetName, path)
		}
		sheet = s
	}
	return sheetToTable(sheet), nil
}

func sheetToTable(sheet *xlsx.Sheet) processor.RawTable {
	table := make(processor.RawTable, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		cells := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			cells[i] = cell.String()
		}
		table = append(table, cells)
	}
	return table
}

// WriteProcessedCSV persists the canonical record sequence next to the
// source, a side artifact for inspection and downstream tools.
func WriteProcessedCSV(records []processor.FlightRecord, path string) error {
	data, err := csvutil.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode processed records: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write processed csv: %w", err)
	}
	return nil
}

// WriteNormalizedWorkbook saves the normalized table as a workbook for
// spreadsheet consumers.
func WriteNormalizedWorkbook(df dataframe.DataFrame, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Sheet1"

	colNames := df.Names()
	for i, name := range colNames {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}
	for rowIdx := 0; rowIdx < df.Nrow(); rowIdx++ {
		for colIdx, colName := range colNames {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, df.Col(colName).Val(rowIdx))
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// ProcessedPath maps a source file to its processed-CSV sibling:
// data/Flight_Data.xlsx -> data/Flight_Data_processed.csv.
func ProcessedPath(source string) string {
	return stripExt(source) + "_processed.csv"
}

// NormalizedPath maps a source file to its normalized workbook sibling.
func NormalizedPath(source string) string {
	return stripExt(source) + "_normalized.xlsx"
}

// AnalysisPath maps a source file to the JSON report written into the
// reports directory.
func AnalysisPath(source, reportsDir string) string {
	base := stripExt(filepath.Base(source))
	return filepath.Join(reportsDir, base+"_analysis.json")
}

func stripExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}
