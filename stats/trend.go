package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/sartorproj/goxg/timeseries"
)

// ErrInsufficientData matches every InsufficientDataError with errors.Is.
var ErrInsufficientData = errors.New("insufficient data")

// InsufficientDataError reports a fit with too few defined points.
type InsufficientDataError struct {
	Defined  int // Defined points available
	Required int // Minimum points the fit needs
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data for trend fit: %d defined points, need at least %d", e.Defined, e.Required)
}

// Is lets errors.Is(err, ErrInsufficientData) match.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// TrendModel is a first degree polynomial y = Slope*x + Intercept.
type TrendModel struct {
	Slope     float64
	Intercept float64
	Points    int     // Number of points used in the fit
	RSquared  float64 // Coefficient of determination, NaN when y is constant
}

// Eval evaluates the trend at x. Values outside the fitted domain extrapolate.
func (m *TrendModel) Eval(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// EvalRange evaluates the trend at each x.
func (m *TrendModel) EvalRange(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.Eval(x)
	}
	return ys
}

// FitLinearTrend fits a least squares line through the defined points of
// series, using the position in the series as x. Absent points are skipped.
// Fewer than two defined points return an *InsufficientDataError.
func FitLinearTrend(series *timeseries.Series) (*TrendModel, error) {
	xs, ys := series.Points()
	return FitLine(xs, ys)
}

// FitLine fits y = Slope*x + Intercept by ordinary least squares.
func FitLine(xs, ys []float64) (*TrendModel, error) {
	if len(xs) != len(ys) {
		return nil, errors.New("x and y must have the same length")
	}
	n := len(xs)
	if n < 2 {
		return nil, &InsufficientDataError{Defined: n, Required: 2}
	}

	// Centering x keeps X'X well conditioned for long series.
	xMean := 0.0
	for _, x := range xs {
		xMean += x
	}
	xMean /= float64(n)

	design := make([][]float64, n)
	for i, x := range xs {
		design[i] = []float64{1, x - xMean}
	}

	coeffs := olsRegression(design, ys)
	if coeffs == nil {
		// Every x identical: the slope is not identifiable.
		return nil, &InsufficientDataError{Defined: 1, Required: 2}
	}

	model := &TrendModel{
		Slope:     coeffs[1],
		Intercept: coeffs[0] - coeffs[1]*xMean,
		Points:    n,
	}
	model.RSquared = rSquared(model, xs, ys)

	return model, nil
}

func rSquared(m *TrendModel, xs, ys []float64) float64 {
	yMean := 0.0
	for _, y := range ys {
		yMean += y
	}
	yMean /= float64(len(ys))

	sse, sst := 0.0, 0.0
	for i, x := range xs {
		r := ys[i] - m.Eval(x)
		sse += r * r
		d := ys[i] - yMean
		sst += d * d
	}
	if sst == 0 {
		return math.NaN()
	}
	return 1 - sse/sst
}

// olsRegression performs ordinary least squares regression.
// x is the design matrix (one row per observation). Returns nil when X'X is singular.
func olsRegression(x [][]float64, y []float64) []float64 {
	n := len(y)
	if n == 0 || len(x) != n {
		return nil
	}

	k := len(x[0]) // number of regressors

	// Build X'X and X'y
	xtx := make([][]float64, k)
	for i := range xtx {
		xtx[i] = make([]float64, k)
	}

	xty := make([]float64, k)

	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			xty[j] += x[i][j] * y[i]
			for l := 0; l < k; l++ {
				xtx[j][l] += x[i][j] * x[i][l]
			}
		}
	}

	xtxInv := invertMatrix(xtx)
	if xtxInv == nil {
		return nil
	}

	// beta = (X'X)^-1 X'y
	coeffs := make([]float64, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			coeffs[i] += xtxInv[i][j] * xty[j]
		}
	}

	return coeffs
}

// invertMatrix inverts a square matrix using Gauss-Jordan elimination.
func invertMatrix(m [][]float64) [][]float64 {
	n := len(m)
	if n == 0 {
		return nil
	}

	// Create augmented matrix [A|I]
	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]float64, 2*n)
		copy(aug[i][:n], m[i])
		aug[i][n+i] = 1
	}

	for i := 0; i < n; i++ {
		maxRow := i
		for k := i + 1; k < n; k++ {
			if math.Abs(aug[k][i]) > math.Abs(aug[maxRow][i]) {
				maxRow = k
			}
		}
		aug[i], aug[maxRow] = aug[maxRow], aug[i]

		if math.Abs(aug[i][i]) < 1e-10 {
			return nil // Singular matrix
		}

		pivot := aug[i][i]
		for j := 0; j < 2*n; j++ {
			aug[i][j] /= pivot
		}

		for k := 0; k < n; k++ {
			if k != i {
				factor := aug[k][i]
				for j := 0; j < 2*n; j++ {
					aug[k][j] -= factor * aug[i][j]
				}
			}
		}
	}

	result := make([][]float64, n)
	for i := 0; i < n; i++ {
		result[i] = make([]float64, n)
		copy(result[i], aug[i][n:])
	}

	return result
}
