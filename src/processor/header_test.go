package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindHeaderRow(t *testing.T) {
	table := RawTable{
		{"Flight Movement Report", ""},
		{"", ""},
		{"Flight Number", "Date", "STD"},
		{"AB123", "1-Jun-25", "10:00 AM"},
	}
	assert.Equal(t, 2, FindHeaderRow(table))
}

func TestFindHeaderRowCaseInsensitive(t *testing.T) {
	table := RawTable{
		{"FLIGHT NUMBER", "Date"},
	}
	assert.Equal(t, 0, FindHeaderRow(table))
}

func TestFindHeaderRowDefaultsToZero(t *testing.T) {
	table := RawTable{
		{"no", "headers"},
		{"here", "either"},
	}
	assert.Equal(t, 0, FindHeaderRow(table))
}

func TestFindHeaderRowRespectsScanWindow(t *testing.T) {
	table := make(RawTable, 0, 12)
	for i := 0; i < 11; i++ {
		table = append(table, []string{"filler"})
	}
	table = append(table, []string{"Flight Number"})
	// The marker sits past the 10-row window, so detection falls back.
	assert.Equal(t, 0, FindHeaderRow(table))
}
