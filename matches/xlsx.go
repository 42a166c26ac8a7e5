package matches

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX loads a match table from a workbook.
func LoadXLSX(filename string, opts *LoadOptions) (*Table, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return loadWorkbook(f, opts)
}

// LoadXLSXFromReader loads a match table from a workbook stream.
func LoadXLSXFromReader(r io.Reader, opts *LoadOptions) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return loadWorkbook(f, opts)
}

func loadWorkbook(f *excelize.File, opts *LoadOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	// Raw values keep dates as serial numbers instead of locale formatted text.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeader
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	serial := func(v float64) (time.Time, error) {
		return excelize.ExcelDateToTime(v, date1904)
	}

	return buildTable(rows[0], rows[1:], opts, serial)
}
