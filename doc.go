// Package goxg charts a team's rolling expected goals.
//
// It reads a table of matches with expected goals for (xG) and against (xGA),
// smooths both with a rolling mean, fits a straight trend line through each
// rolling series and draws the result as a dark themed PNG with a season
// marker and the team's logo.
//
// # Quick Start
//
//	table, _ := matches.Load("spurs.csv", matches.DefaultLoadOptions())
//	res, _ := analysis.Analyze(table, analysis.DefaultOptions())
//	logo, _ := render.LoadLogo("spurs.png")
//	fig, _ := render.Render(render.InputFromResult(res, logo), render.DefaultOptions())
//	_ = fig.Save("xg_performance.png")
//
// The xgchart command in cmd/xgchart wraps these steps with configuration
// and structured logging.
//
// # Packages
//
//   - matches: CSV and XLSX loading, missing value handling, cleaning
//   - timeseries: series with absent values and the rolling mean
//   - stats: least squares trend fitting
//   - analysis: the rolling average and trend pipeline
//   - render: the chart, its annotations and the logo overlay
package goxg
