// Package timeseries provides time series data structures and utilities.
//
// A Series stores one value per observation. Absent observations are held as
// NaN and are skipped by the summary statistics.
//
// # Creating a Series
//
//	values := []float64{1.2, 0.8, math.NaN(), 2.1}
//	series := timeseries.New(values)
//
// # Rolling Means
//
// RollingMean keeps the input length. A position is defined only when the
// whole trailing window is present:
//
//	rolling, err := series.RollingMean(5)
//	fmt.Println(rolling.DefinedCount())
//
// # Present Observations
//
//	xs, ys := rolling.Points()       // all present (index, value) pairs
//	segX, segY := rolling.Segments() // consecutive runs, for plotting
package timeseries
