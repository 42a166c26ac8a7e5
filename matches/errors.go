package matches

import (
	"errors"
	"fmt"
)

// ErrMissingColumn matches every MissingColumnError with errors.Is.
var ErrMissingColumn = errors.New("missing column")

// ErrNoHeader is returned when a table has no header row.
var ErrNoHeader = errors.New("table has no header row")

// MissingColumnError reports a required column that is not in the header.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}

// Is lets errors.Is(err, ErrMissingColumn) match.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// RowError reports a cell that could not be parsed.
// Row is 1-based and counts the header.
type RowError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: invalid value %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
