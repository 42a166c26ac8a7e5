package timeseries

import (
	"errors"
	"math"
	"testing"
	"time"
)

var nan = math.NaN()

func TestNew(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	s := New(values)

	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}

	for i, v := range s.Values {
		if v != values[i] {
			t.Errorf("Expected value %f at index %d, got %f", values[i], i, v)
		}
	}
}

func TestNewWithTimestamps(t *testing.T) {
	ts := []time.Time{time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)}

	if _, err := NewWithTimestamps(ts, []float64{1, 2}); err == nil {
		t.Error("Expected error for mismatched lengths")
	}

	s, err := NewWithTimestamps(ts, []float64{1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !s.Timestamps[0].Equal(ts[0]) {
		t.Errorf("Expected timestamp %v, got %v", ts[0], s.Timestamps[0])
	}
}

func TestDefinedCount(t *testing.T) {
	s := New([]float64{1, nan, 3, nan, 5})

	if s.DefinedCount() != 3 {
		t.Errorf("Expected 3 defined values, got %d", s.DefinedCount())
	}
	if s.IsDefined(1) {
		t.Error("Index 1 should be absent")
	}
	if !s.IsDefined(4) {
		t.Error("Index 4 should be present")
	}
	if s.IsDefined(-1) || s.IsDefined(5) {
		t.Error("Out of range indices should not be defined")
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"with absent", []float64{1, nan, 3}, 2.0},
		{"all absent", []float64{nan, nan}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.values)
			result := s.Mean()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	s := New([]float64{nan, 5, 2, 8, nan, 1, 9, 3})

	if s.Min() != 1 {
		t.Errorf("Expected min 1, got %f", s.Min())
	}

	if s.Max() != 9 {
		t.Errorf("Expected max 9, got %f", s.Max())
	}

	empty := New([]float64{nan})
	if !math.IsNaN(empty.Min()) || !math.IsNaN(empty.Max()) {
		t.Error("Expected NaN min/max for a series without present values")
	}
}

func TestPoints(t *testing.T) {
	s := New([]float64{nan, nan, 1.5, nan, 2.5})
	xs, ys := s.Points()

	expectedX := []float64{2, 4}
	expectedY := []float64{1.5, 2.5}
	if len(xs) != len(expectedX) {
		t.Fatalf("Expected %d points, got %d", len(expectedX), len(xs))
	}
	for i := range expectedX {
		if xs[i] != expectedX[i] || ys[i] != expectedY[i] {
			t.Errorf("Point %d: expected (%f, %f), got (%f, %f)", i, expectedX[i], expectedY[i], xs[i], ys[i])
		}
	}
}

func TestSegments(t *testing.T) {
	s := New([]float64{nan, 1, 2, nan, 3, nan, nan, 4, 5, 6})
	xs, ys := s.Segments()

	if len(xs) != 3 {
		t.Fatalf("Expected 3 segments, got %d", len(xs))
	}

	lengths := []int{2, 1, 3}
	for i, l := range lengths {
		if len(xs[i]) != l || len(ys[i]) != l {
			t.Errorf("Segment %d: expected length %d, got %d", i, l, len(xs[i]))
		}
	}
	if xs[2][0] != 7 || ys[2][2] != 6 {
		t.Errorf("Unexpected last segment: %v %v", xs[2], ys[2])
	}
}

func TestRollingMean(t *testing.T) {
	s := New([]float64{1, 2, 3, 4, 5, 6, 7})
	rolled, err := s.RollingMean(3)
	if err != nil {
		t.Fatalf("RollingMean failed: %v", err)
	}

	if rolled.Len() != s.Len() {
		t.Fatalf("Expected length %d, got %d", s.Len(), rolled.Len())
	}

	expected := []float64{nan, nan, 2, 3, 4, 5, 6}
	for i, e := range expected {
		got := rolled.Values[i]
		if math.IsNaN(e) {
			if !math.IsNaN(got) {
				t.Errorf("Index %d: expected absent, got %f", i, got)
			}
			continue
		}
		if math.Abs(got-e) > 1e-10 {
			t.Errorf("Index %d: expected %f, got %f", i, e, got)
		}
	}
}

func TestRollingMeanDefinedness(t *testing.T) {
	// Absent values make every window that contains them absent.
	values := []float64{1, 2, nan, 4, 5, 6, 7, 8, 9, 10}
	s := New(values)
	window := 3

	rolled, err := s.RollingMean(window)
	if err != nil {
		t.Fatalf("RollingMean failed: %v", err)
	}

	for i := range values {
		complete := i >= window-1
		sum := 0.0
		if complete {
			for _, v := range values[i-window+1 : i+1] {
				if math.IsNaN(v) {
					complete = false
					break
				}
				sum += v
			}
		}

		if rolled.IsDefined(i) != complete {
			t.Errorf("Index %d: defined=%v, expected %v", i, rolled.IsDefined(i), complete)
			continue
		}
		if complete && math.Abs(rolled.Values[i]-sum/float64(window)) > 1e-10 {
			t.Errorf("Index %d: expected mean %f, got %f", i, sum/float64(window), rolled.Values[i])
		}
	}

	// Indices 2, 3 and 4 all include the absent value.
	if rolled.DefinedCount() != 5 {
		t.Errorf("Expected 5 defined values, got %d", rolled.DefinedCount())
	}
}

func TestRollingMeanConstantWindow(t *testing.T) {
	values := make([]float64, 12)
	for i := range values {
		values[i] = 1.37
	}

	rolled, err := New(values).RollingMean(5)
	if err != nil {
		t.Fatalf("RollingMean failed: %v", err)
	}

	for i := 4; i < len(values); i++ {
		if math.Abs(rolled.Values[i]-1.37) > 1e-12 {
			t.Errorf("Index %d: expected 1.37, got %f", i, rolled.Values[i])
		}
	}
}

func TestRollingMeanIsPure(t *testing.T) {
	s := New([]float64{0.4, 1.2, nan, 2.1, 0.9, 1.8, 0.3, 1.1, 2.4})
	original := s.Copy()

	first, err := s.RollingMean(5)
	if err != nil {
		t.Fatalf("RollingMean failed: %v", err)
	}
	second, err := s.RollingMean(5)
	if err != nil {
		t.Fatalf("RollingMean failed: %v", err)
	}

	for i := range first.Values {
		a, b := first.Values[i], second.Values[i]
		if math.IsNaN(a) != math.IsNaN(b) || (!math.IsNaN(a) && a != b) {
			t.Errorf("Index %d: results differ (%f vs %f)", i, a, b)
		}
		o, v := original.Values[i], s.Values[i]
		if math.IsNaN(o) != math.IsNaN(v) || (!math.IsNaN(o) && o != v) {
			t.Errorf("Index %d: input was modified", i)
		}
	}
}

func TestRollingMeanShortSeries(t *testing.T) {
	rolled, err := New([]float64{1, 2, 3}).RollingMean(5)
	if err != nil {
		t.Fatalf("RollingMean failed: %v", err)
	}

	if rolled.Len() != 3 {
		t.Errorf("Expected length 3, got %d", rolled.Len())
	}
	if rolled.DefinedCount() != 0 {
		t.Errorf("Expected no defined values, got %d", rolled.DefinedCount())
	}
}

func TestRollingMeanInvalidWindow(t *testing.T) {
	for _, w := range []int{0, -3} {
		if _, err := New([]float64{1, 2}).RollingMean(w); !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("Window %d: expected ErrInvalidWindow, got %v", w, err)
		}
	}
}

func TestCopy(t *testing.T) {
	s := New([]float64{1, 2, 3})
	s.Name = "xG"
	c := s.Copy()

	c.Values[0] = 100
	if s.Values[0] == 100 {
		t.Error("Copy should not share the values slice")
	}
	if c.Name != "xG" {
		t.Errorf("Expected name xG, got %s", c.Name)
	}
}
