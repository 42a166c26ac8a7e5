package matches

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// LoadOptions holds options for table loading.
type LoadOptions struct {
	DateColumn      string // Column name for match dates (default: "Date")
	PrimaryColumn   string // Column name for expected goals (default: "xG")
	SecondaryColumn string // Column name for expected goals against (default: "xGA")
	DateFormat      string // Preferred date layout (default: "2006-01-02")
	Delimiter       rune   // CSV field delimiter (default: ',')
	Sheet           string // XLSX sheet name (default: first sheet)
}

// DefaultLoadOptions returns default options for table loading.
func DefaultLoadOptions() *LoadOptions {
	return &LoadOptions{
		DateColumn:      DefaultDateColumn,
		PrimaryColumn:   DefaultPrimaryColumn,
		SecondaryColumn: DefaultSecondaryColumn,
		DateFormat:      "2006-01-02",
		Delimiter:       ',',
	}
}

// Load reads a match table, choosing the format from the file extension.
// .xlsx and .xlsm files are read as workbooks, everything else as CSV.
func Load(filename string, opts *LoadOptions) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(filename, opts)
	default:
		return LoadCSV(filename, opts)
	}
}

// dateLayouts are tried after the configured layout.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02/01/2006",
	"01/02/2006",
	"02-Jan-2006",
	"2 Jan 2006",
}

// missingMarkers are cell contents treated as an absent metric.
var missingMarkers = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"-":    true,
}

// columns holds the header positions of the columns we read.
type columns struct {
	date, primary, secondary int
}

func locateColumns(header []string, opts *LoadOptions) (columns, error) {
	cols := columns{date: -1, primary: -1, secondary: -1}
	if len(header) == 0 {
		return cols, ErrNoHeader
	}

	find := func(name string) int {
		for i, h := range header {
			if cleanCell(h) == name {
				return i
			}
		}
		for i, h := range header {
			if strings.EqualFold(cleanCell(h), name) {
				return i
			}
		}
		return -1
	}

	cols.date = find(opts.DateColumn)
	cols.primary = find(opts.PrimaryColumn)
	if opts.SecondaryColumn != "" {
		cols.secondary = find(opts.SecondaryColumn)
	}

	if cols.date == -1 {
		return cols, &MissingColumnError{Column: opts.DateColumn}
	}
	if cols.primary == -1 {
		return cols, &MissingColumnError{Column: opts.PrimaryColumn}
	}
	return cols, nil
}

// buildTable converts header and data rows into a Table.
// excelDates enables spreadsheet serial dates in the date column.
func buildTable(header []string, rows [][]string, opts *LoadOptions, excelDates func(float64) (time.Time, error)) (*Table, error) {
	cols, err := locateColumns(header, opts)
	if err != nil {
		return nil, err
	}

	table := &Table{
		Records:         make([]MatchRecord, 0, len(rows)),
		PrimaryColumn:   opts.PrimaryColumn,
		SecondaryColumn: opts.SecondaryColumn,
	}

	for i, row := range rows {
		rowNum := i + 2
		if isBlankRow(row) {
			continue
		}

		dateStr := cell(row, cols.date)
		date, err := parseDate(dateStr, opts.DateFormat, excelDates)
		if err != nil {
			return nil, &RowError{Row: rowNum, Column: opts.DateColumn, Value: dateStr, Err: err}
		}

		xg, err := parseMetric(cell(row, cols.primary))
		if err != nil {
			return nil, &RowError{Row: rowNum, Column: opts.PrimaryColumn, Value: cell(row, cols.primary), Err: err}
		}

		xga := math.NaN()
		if cols.secondary >= 0 {
			xga, err = parseMetric(cell(row, cols.secondary))
			if err != nil {
				return nil, &RowError{Row: rowNum, Column: opts.SecondaryColumn, Value: cell(row, cols.secondary), Err: err}
			}
		}

		table.Records = append(table.Records, MatchRecord{Date: date, XG: xg, XGA: xga})
	}

	return table, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return cleanCell(row[idx])
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if cleanCell(c) != "" {
			return false
		}
	}
	return true
}

func parseMetric(s string) (float64, error) {
	if missingMarkers[s] {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return v, nil
	}
	if v < 0 || math.IsInf(v, 0) {
		return 0, errors.New("expected a non-negative finite number")
	}
	return v, nil
}

func parseDate(s, layout string, excelDates func(float64) (time.Time, error)) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}

	layouts := dateLayouts
	if layout != "" {
		layouts = append([]string{layout}, dateLayouts...)
	}
	for _, l := range layouts {
		if ts, err := time.Parse(l, s); err == nil {
			return ts, nil
		}
	}

	if excelDates != nil {
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return excelDates(serial)
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format")
}
