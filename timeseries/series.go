// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidWindow is returned when a rolling window is smaller than one observation.
var ErrInvalidWindow = errors.New("window size must be at least 1")

// Series represents a time series with timestamps and values.
// Absent observations are stored as NaN.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series, absent observations included.
func (s *Series) Len() int {
	return len(s.Values)
}

// IsDefined reports whether the observation at index i is present.
func (s *Series) IsDefined(i int) bool {
	return i >= 0 && i < len(s.Values) && !math.IsNaN(s.Values[i])
}

// DefinedCount returns the number of present observations.
func (s *Series) DefinedCount() int {
	n := 0
	for _, v := range s.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Points returns the (index, value) pairs of the present observations in order.
func (s *Series) Points() (xs, ys []float64) {
	for i, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, float64(i))
		ys = append(ys, v)
	}
	return xs, ys
}

// Segments splits the present observations into runs of consecutive indices.
// Each run is returned as its own (xs, ys) pair.
func (s *Series) Segments() (xs, ys [][]float64) {
	var curX, curY []float64
	flush := func() {
		if len(curX) > 0 {
			xs = append(xs, curX)
			ys = append(ys, curY)
		}
		curX, curY = nil, nil
	}
	for i, v := range s.Values {
		if math.IsNaN(v) {
			flush()
			continue
		}
		curX = append(curX, float64(i))
		curY = append(curY, v)
	}
	flush()
	return xs, ys
}

// Mean calculates the arithmetic mean of the present observations.
func (s *Series) Mean() float64 {
	sum, n := 0.0, 0
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Min returns the minimum present value in the series.
func (s *Series) Min() float64 {
	min := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum present value in the series.
func (s *Series) Max() float64 {
	max := math.NaN()
	for _, v := range s.Values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}

// RollingMean calculates a trailing mean over window observations.
//
// The result has the same length as s. Position i holds the mean of
// Values[i-window+1..i] when i >= window-1 and every value in that window is
// present; otherwise it is NaN.
func (s *Series) RollingMean(window int) (*Series, error) {
	if window < 1 {
		return nil, ErrInvalidWindow
	}

	n := len(s.Values)
	result := make([]float64, n)

	for i := 0; i < n; i++ {
		result[i] = math.NaN()
		if i < window-1 {
			continue
		}
		sum := 0.0
		complete := true
		for _, v := range s.Values[i-window+1 : i+1] {
			if math.IsNaN(v) {
				complete = false
				break
			}
			sum += v
		}
		if complete {
			result[i] = sum / float64(window)
		}
	}

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_rolling",
	}, nil
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
