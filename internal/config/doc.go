// Package config loads the xgchart configuration.
//
// Values are layered: built-in defaults (the original season review chart),
// then an optional YAML file, then XG_ prefixed environment variables such as
// XG_ANALYSIS_WINDOW_SIZE or XG_CHART_LOGO_PATH. Validate checks the result
// with validator struct tags.
package config
