package matches

import (
	"encoding/csv"
	"io"
	"os"
)

// LoadCSV loads a match table from a CSV file.
func LoadCSV(filename string, opts *LoadOptions) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a match table from an io.Reader.
// The first record is the header.
func LoadCSVFromReader(r io.Reader, opts *LoadOptions) (*Table, error) {
	if opts == nil {
		opts = DefaultLoadOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return buildTable(header, rows, opts, nil)
}
