// Package analysis runs the rolling xG / xGA pipeline over a match table.
package analysis

import (
	"errors"
	"fmt"

	"github.com/sartorproj/goxg/matches"
	"github.com/sartorproj/goxg/stats"
	"github.com/sartorproj/goxg/timeseries"
)

// DefaultWindowSize is the rolling window length in matches.
const DefaultWindowSize = 5

// Options controls the pipeline.
type Options struct {
	WindowSize int
	// AllowMissingTrend leaves a trend nil instead of failing when its
	// rolling series has fewer than two defined points.
	AllowMissingTrend bool
}

// DefaultOptions returns the strict pipeline options.
func DefaultOptions() Options {
	return Options{WindowSize: DefaultWindowSize}
}

// Result holds every derived dataset of one run.
type Result struct {
	Cleaned          *matches.Cleaned
	RollingPrimary   *timeseries.Series
	RollingSecondary *timeseries.Series
	TrendPrimary     *stats.TrendModel // nil only when AllowMissingTrend skipped it
	TrendSecondary   *stats.TrendModel
	InputRows        int
	WindowSize       int
	Warnings         []string
}

// Summary describes the sizes of a Result.
type Summary struct {
	InputRows         int
	CleanedRows       int
	RollingLength     int
	DefinedPrimary    int
	DefinedSecondary  int
	WindowSize        int
	HasPrimaryTrend   bool
	HasSecondaryTrend bool
}

// Analyze cleans the table, computes both rolling means and fits a linear
// trend to each of them.
func Analyze(table *matches.Table, opts Options) (*Result, error) {
	if opts.WindowSize == 0 {
		opts.WindowSize = DefaultWindowSize
	}

	cleaned := matches.Clean(table)

	rollingPrimary, err := cleaned.Primary().RollingMean(opts.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("rolling %s: %w", cleaned.PrimaryColumn, err)
	}
	rollingSecondary, err := cleaned.Secondary().RollingMean(opts.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("rolling %s: %w", cleaned.SecondaryColumn, err)
	}

	result := &Result{
		Cleaned:          cleaned,
		RollingPrimary:   rollingPrimary,
		RollingSecondary: rollingSecondary,
		InputRows:        table.Len(),
		WindowSize:       opts.WindowSize,
	}

	result.TrendPrimary, err = fitTrend(result, cleaned.PrimaryColumn, rollingPrimary, opts)
	if err != nil {
		return nil, err
	}
	result.TrendSecondary, err = fitTrend(result, cleaned.SecondaryColumn, rollingSecondary, opts)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func fitTrend(result *Result, name string, rolling *timeseries.Series, opts Options) (*stats.TrendModel, error) {
	model, err := stats.FitLinearTrend(rolling)
	if err == nil {
		return model, nil
	}
	if opts.AllowMissingTrend && errors.Is(err, stats.ErrInsufficientData) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("%s trend skipped: %v", name, err))
		return nil, nil
	}
	return nil, fmt.Errorf("%s trend: %w", name, err)
}

// Summary reports row and point counts of the result.
func (r *Result) Summary() Summary {
	return Summary{
		InputRows:         r.InputRows,
		CleanedRows:       r.Cleaned.Len(),
		RollingLength:     r.RollingPrimary.Len(),
		DefinedPrimary:    r.RollingPrimary.DefinedCount(),
		DefinedSecondary:  r.RollingSecondary.DefinedCount(),
		WindowSize:        r.WindowSize,
		HasPrimaryTrend:   r.TrendPrimary != nil,
		HasSecondaryTrend: r.TrendSecondary != nil,
	}
}
