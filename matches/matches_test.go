package matches

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `Date,Opponent,xG,xGA
2024-08-19,Leicester,2.4,0.9
2024-08-24,Everton,1.9,0.6
2024-09-01,Newcastle,1.1,1.8`

	table, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.Equal(t, "xG", table.PrimaryColumn)
	assert.Equal(t, "xGA", table.SecondaryColumn)
	assert.True(t, table.Records[0].Date.Equal(day("2024-08-19")))
	assert.InDelta(t, 2.4, table.Records[0].XG, 1e-12)
	assert.InDelta(t, 1.8, table.Records[2].XGA, 1e-12)
	assert.True(t, table.IsChronological())
}

func TestLoadCSVMissingValues(t *testing.T) {
	csvData := `Date,xG,xGA
2024-08-19,2.4,
2024-08-24,NA,0.6
2024-09-01,,1.8
2024-09-15,1.3,null`

	table, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len(), "rows with absent metrics are kept until cleaning")

	assert.True(t, table.Records[0].HasXG())
	assert.False(t, table.Records[0].HasXGA())
	assert.False(t, table.Records[1].HasXG())
	assert.False(t, table.Records[2].HasXG())
	assert.False(t, table.Records[3].HasXGA())
}

func TestLoadCSVMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		csvData string
		column  string
	}{
		{"no date", "Day,xG,xGA\n2024-08-19,1,1", "Date"},
		{"no primary", "Date,Goals,xGA\n2024-08-19,1,1", "xG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(tt.csvData), nil)
			require.Error(t, err)

			var mce *MissingColumnError
			require.True(t, errors.As(err, &mce))
			assert.Equal(t, tt.column, mce.Column)
			assert.ErrorIs(t, err, ErrMissingColumn)
		})
	}
}

func TestLoadCSVWithoutSecondaryColumn(t *testing.T) {
	csvData := "Date,xG\n2024-08-19,1.5\n2024-08-24,0.7"

	table, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	for _, r := range table.Records {
		assert.True(t, math.IsNaN(r.XGA))
	}
}

func TestLoadCSVOptions(t *testing.T) {
	csvData := `"match_date";"expected";"conceded"
"19/08/2024";"2.4";"0.9"
"24/08/2024";"1.9";"0.6"`

	opts := DefaultLoadOptions()
	opts.Delimiter = ';'
	opts.DateColumn = "match_date"
	opts.PrimaryColumn = "expected"
	opts.SecondaryColumn = "conceded"
	opts.DateFormat = "02/01/2006"

	table, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())
	assert.True(t, table.Records[1].Date.Equal(day("2024-08-24")))
	assert.InDelta(t, 0.6, table.Records[1].XGA, 1e-12)
}

func TestLoadCSVCaseInsensitiveHeader(t *testing.T) {
	csvData := "date,XG,xga\n2024-08-19,1.5,0.5"

	table, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, table.Records[0].XG, 1e-12)
	assert.InDelta(t, 0.5, table.Records[0].XGA, 1e-12)
}

func TestLoadCSVInvalidCells(t *testing.T) {
	tests := []struct {
		name    string
		csvData string
		row     int
		column  string
	}{
		{"bad date", "Date,xG\nyesterday,1.0", 2, "Date"},
		{"bad metric", "Date,xG\n2024-08-19,lots", 2, "xG"},
		{"negative metric", "Date,xG\n2024-08-19,1.0\n2024-08-24,-0.5", 3, "xG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSVFromReader(strings.NewReader(tt.csvData), nil)
			var re *RowError
			require.True(t, errors.As(err, &re), "expected RowError, got %v", err)
			assert.Equal(t, tt.row, re.Row)
			assert.Equal(t, tt.column, re.Column)
		})
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader(""), nil)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "spurs.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Date,xG,xGA\n2024-08-19,1.2,0.4\n"), 0o644))

	table, err := Load(csvPath, DefaultLoadOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())

	xlsxPath := filepath.Join(dir, "spurs.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Date", "xG", "xGA"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"2024-08-19", 1.2, 0.4}))
	require.NoError(t, f.SaveAs(xlsxPath))
	require.NoError(t, f.Close())

	table, err = Load(xlsxPath, DefaultLoadOptions())
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.InDelta(t, 0.4, table.Records[0].XGA, 1e-12)

	_, err = Load(filepath.Join(dir, "missing.csv"), nil)
	assert.Error(t, err)
}

func TestLoadXLSXFromReader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Date", "Venue", "xG", "xGA"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{day("2024-08-19"), "Away", 2.4, 0.9}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{day("2024-08-24"), "Home", "", 0.6}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{"2024-09-01", "Away", 1.1, 1.8}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	table, err := LoadXLSXFromReader(buf, nil)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.True(t, table.Records[0].Date.Equal(day("2024-08-19")), "serial date: got %v", table.Records[0].Date)
	assert.True(t, table.Records[1].Date.Equal(day("2024-08-24")))
	assert.True(t, table.Records[2].Date.Equal(day("2024-09-01")))
	assert.InDelta(t, 2.4, table.Records[0].XG, 1e-12)
	assert.False(t, table.Records[1].HasXG())
	assert.InDelta(t, 1.8, table.Records[2].XGA, 1e-12)
}

func TestLoadXLSXNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("Matches")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Matches", "A1", &[]interface{}{"Date", "xG"}))
	require.NoError(t, f.SetSheetRow("Matches", "A2", &[]interface{}{"2024-08-19", 0.8}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	opts := DefaultLoadOptions()
	opts.Sheet = "Matches"
	table, err := LoadXLSXFromReader(buf, opts)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.InDelta(t, 0.8, table.Records[0].XG, 1e-12)
}

func TestIsChronological(t *testing.T) {
	table := &Table{Records: []MatchRecord{
		{Date: day("2024-08-19")},
		{Date: day("2024-08-19")},
		{Date: day("2024-08-10")},
	}}
	assert.False(t, table.IsChronological())

	table.Records = table.Records[:2]
	assert.True(t, table.IsChronological())
}

func TestClean(t *testing.T) {
	nan := math.NaN()
	table := &Table{
		PrimaryColumn:   "xG",
		SecondaryColumn: "xGA",
		Records: []MatchRecord{
			{Date: day("2024-08-01"), XG: 1.0, XGA: 0.5},
			{Date: day("2024-08-02"), XG: nan, XGA: 0.7},
			{Date: day("2024-08-03"), XG: 2.0, XGA: nan},
			{Date: day("2024-08-04"), XG: nan, XGA: nan},
			{Date: day("2024-08-05"), XG: 3.0, XGA: 1.1},
		},
	}

	cleaned := Clean(table)
	require.Equal(t, 3, cleaned.Len())
	assert.LessOrEqual(t, cleaned.Len(), table.Len())

	for _, r := range cleaned.Records {
		assert.True(t, r.HasXG())
	}

	// Order is preserved.
	assert.True(t, cleaned.Records[0].Date.Equal(day("2024-08-01")))
	assert.True(t, cleaned.Records[1].Date.Equal(day("2024-08-03")))
	assert.True(t, cleaned.Records[2].Date.Equal(day("2024-08-05")))

	primary := cleaned.Primary()
	assert.Equal(t, "xG", primary.Name)
	assert.Equal(t, []float64{1, 2, 3}, primary.Values)

	secondary := cleaned.Secondary()
	assert.Equal(t, "xGA", secondary.Name)
	require.Equal(t, 3, secondary.Len())
	assert.True(t, math.IsNaN(secondary.Values[1]), "absent xGA survives cleaning")

	// The input table is untouched.
	assert.Equal(t, 5, table.Len())
}

func TestCleanNoPrimaryValues(t *testing.T) {
	nan := math.NaN()
	table := &Table{Records: []MatchRecord{
		{Date: day("2024-08-01"), XG: nan, XGA: 1},
		{Date: day("2024-08-02"), XG: nan, XGA: 2},
	}}

	cleaned := Clean(table)
	assert.Equal(t, 0, cleaned.Len())
	assert.Equal(t, 0, cleaned.Primary().Len())
	assert.Equal(t, 0, cleaned.Secondary().Len())
}
