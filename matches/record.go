// Package matches provides per-match statistics tables and their cleaning.
package matches

import (
	"math"
	"time"

	"github.com/sartorproj/goxg/timeseries"
)

// Default column names of a match statistics table.
const (
	DefaultDateColumn      = "Date"
	DefaultPrimaryColumn   = "xG"
	DefaultSecondaryColumn = "xGA"
)

// MatchRecord is one fixture. Absent metrics are NaN.
type MatchRecord struct {
	Date time.Time
	XG   float64
	XGA  float64
}

// HasXG reports whether the expected goals value is present.
func (r MatchRecord) HasXG() bool {
	return !math.IsNaN(r.XG)
}

// HasXGA reports whether the expected goals against value is present.
func (r MatchRecord) HasXGA() bool {
	return !math.IsNaN(r.XGA)
}

// Table is a match statistics table in file order.
// It is expected to be sorted by date ascending; it is never reordered here.
type Table struct {
	Records         []MatchRecord
	PrimaryColumn   string
	SecondaryColumn string
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Records)
}

// IsChronological reports whether the dates never decrease.
func (t *Table) IsChronological() bool {
	for i := 1; i < len(t.Records); i++ {
		if t.Records[i].Date.Before(t.Records[i-1].Date) {
			return false
		}
	}
	return true
}

// Cleaned holds the rows that have a primary metric, reindexed from zero.
type Cleaned struct {
	Records         []MatchRecord
	PrimaryColumn   string
	SecondaryColumn string
}

// Clean drops every row without a primary metric.
// Order is preserved and the remaining rows take positions 0..N-1.
// A table with no primary values yields an empty result.
func Clean(t *Table) *Cleaned {
	records := make([]MatchRecord, 0, len(t.Records))
	for _, r := range t.Records {
		if r.HasXG() {
			records = append(records, r)
		}
	}
	return &Cleaned{
		Records:         records,
		PrimaryColumn:   t.PrimaryColumn,
		SecondaryColumn: t.SecondaryColumn,
	}
}

// Len returns the number of cleaned rows.
func (c *Cleaned) Len() int {
	return len(c.Records)
}

// Primary returns the expected goals series indexed by sequence position.
func (c *Cleaned) Primary() *timeseries.Series {
	return c.series(c.PrimaryColumn, func(r MatchRecord) float64 { return r.XG })
}

// Secondary returns the expected goals against series indexed by sequence position.
func (c *Cleaned) Secondary() *timeseries.Series {
	return c.series(c.SecondaryColumn, func(r MatchRecord) float64 { return r.XGA })
}

func (c *Cleaned) series(name string, metric func(MatchRecord) float64) *timeseries.Series {
	timestamps := make([]time.Time, len(c.Records))
	values := make([]float64, len(c.Records))
	for i, r := range c.Records {
		timestamps[i] = r.Date
		values[i] = metric(r)
	}
	return &timeseries.Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}
}
