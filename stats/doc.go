// Package stats provides trend fitting for time series.
//
// FitLinearTrend fits an ordinary least squares line through the defined
// points of a series, with the position in the series as x:
//
//	model, err := stats.FitLinearTrend(rolling)
//	if errors.Is(err, stats.ErrInsufficientData) {
//	    // fewer than two defined points
//	}
//	fmt.Printf("slope=%.4f intercept=%.4f r2=%.3f\n",
//	    model.Slope, model.Intercept, model.RSquared)
//
// The model extrapolates outside the fitted points:
//
//	ys := model.EvalRange([]float64{0, 1, 2, 3})
package stats
