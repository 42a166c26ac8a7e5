package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v2"

	"github.com/sartorproj/goxg/analysis"
	"github.com/sartorproj/goxg/matches"
	"github.com/sartorproj/goxg/render"
)

// EnvPrefix prefixes every environment override, e.g. XG_ANALYSIS_WINDOW_SIZE.
const EnvPrefix = "XG"

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Chart    ChartConfig    `yaml:"chart" envconfig:"CHART"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes the match table
type InputConfig struct {
	Path            string `yaml:"path" split_words:"true" validate:"required"`
	Sheet           string `yaml:"sheet" split_words:"true"`
	DateColumn      string `yaml:"date_column" split_words:"true" validate:"required"`
	PrimaryColumn   string `yaml:"primary_column" split_words:"true" validate:"required"`
	SecondaryColumn string `yaml:"secondary_column" split_words:"true" validate:"required"`
	DateFormat      string `yaml:"date_format" split_words:"true"`
}

// AnalysisConfig contains the numeric pipeline settings
type AnalysisConfig struct {
	WindowSize        int  `yaml:"window_size" split_words:"true" validate:"min=1"`
	AllowMissingTrend bool `yaml:"allow_missing_trend" split_words:"true"`
}

// ChartConfig contains the figure settings
type ChartConfig struct {
	SeasonBoundaryIndex float64 `yaml:"season_boundary_index" split_words:"true" validate:"min=0"`
	SeasonLabel         string  `yaml:"season_label" split_words:"true"`
	SeasonLabelY        float64 `yaml:"season_label_y" split_words:"true"`
	XAxisMode           string  `yaml:"x_axis_mode" split_words:"true" validate:"oneof=sequential-index"`

	Title    string `yaml:"title" split_words:"true"`
	Subtitle string `yaml:"subtitle" split_words:"true"`
	YLabel   string `yaml:"y_label" split_words:"true"`

	Width  int `yaml:"width" split_words:"true" validate:"min=200,max=8000"`
	Height int `yaml:"height" split_words:"true" validate:"min=200,max=8000"`

	BackgroundColor string `yaml:"background_color" split_words:"true" validate:"hexcolor"`
	PrimaryColor    string `yaml:"primary_color" split_words:"true" validate:"hexcolor"`
	SecondaryColor  string `yaml:"secondary_color" split_words:"true" validate:"hexcolor"`
	TrendColor      string `yaml:"trend_color" split_words:"true" validate:"hexcolor"`
	GridColor       string `yaml:"grid_color" split_words:"true" validate:"hexcolor"`

	LogoPath string  `yaml:"logo_path" split_words:"true" validate:"required"`
	LogoZoom float64 `yaml:"logo_zoom" split_words:"true" validate:"gt=0,lte=4"`
}

// OutputConfig contains where the figure goes
type OutputConfig struct {
	Path string `yaml:"path" split_words:"true" validate:"required"`
	Open bool   `yaml:"open" split_words:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" split_words:"true" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" split_words:"true" validate:"oneof=json text"`
}

// Default returns the configuration of the original season review chart.
func Default() Config {
	chart := render.DefaultOptions()
	return Config{
		Input: InputConfig{
			DateColumn:      matches.DefaultDateColumn,
			PrimaryColumn:   matches.DefaultPrimaryColumn,
			SecondaryColumn: matches.DefaultSecondaryColumn,
			DateFormat:      "2006-01-02",
		},
		Analysis: AnalysisConfig{
			WindowSize: analysis.DefaultWindowSize,
		},
		Chart: ChartConfig{
			SeasonBoundaryIndex: chart.Annotations.SeasonBoundaryIndex,
			SeasonLabel:         chart.Annotations.SeasonLabel,
			SeasonLabelY:        chart.Annotations.SeasonLabelY,
			XAxisMode:           render.XAxisSequentialIndex,
			Title:               chart.Annotations.Title,
			Subtitle:            chart.Annotations.Subtitle,
			YLabel:              chart.Annotations.YLabel,
			Width:               chart.Layout.Width,
			Height:              chart.Layout.Height,
			BackgroundColor:     "#000000",
			PrimaryColor:        "#FFFFFF",
			SecondaryColor:      "#132257",
			TrendColor:          "#FFFFFF",
			GridColor:           "#808080",
			LogoZoom:            chart.LogoZoom,
		},
		Output: OutputConfig{
			Path: "xg_performance.png",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is not empty) and XG_ environment variables, in that order.
// The result is not validated; call Validate once flags are applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Fields carry no default tags, so unset variables leave values alone.
	// Leaf fields use split_words rather than envconfig names: a named leaf
	// falls back to the unprefixed variable, and PATH would then be read.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// Validate checks every field against its validate tag.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// LoadOptions returns the table loading options.
func (c *Config) LoadOptions() *matches.LoadOptions {
	opts := matches.DefaultLoadOptions()
	opts.DateColumn = c.Input.DateColumn
	opts.PrimaryColumn = c.Input.PrimaryColumn
	opts.SecondaryColumn = c.Input.SecondaryColumn
	opts.Sheet = c.Input.Sheet
	if c.Input.DateFormat != "" {
		opts.DateFormat = c.Input.DateFormat
	}
	return opts
}

// AnalysisOptions returns the pipeline options.
func (c *Config) AnalysisOptions() analysis.Options {
	return analysis.Options{
		WindowSize:        c.Analysis.WindowSize,
		AllowMissingTrend: c.Analysis.AllowMissingTrend,
	}
}

// RenderOptions returns the chart options. Colors must already be valid.
func (c *Config) RenderOptions() (render.Options, error) {
	opts := render.DefaultOptions()

	colors := []struct {
		hex string
		dst *drawing.Color
	}{
		{c.Chart.BackgroundColor, &opts.Style.Background},
		{c.Chart.PrimaryColor, &opts.Style.Primary},
		{c.Chart.SecondaryColor, &opts.Style.Secondary},
		{c.Chart.TrendColor, &opts.Style.Trend},
		{c.Chart.GridColor, &opts.Style.Grid},
	}
	for _, col := range colors {
		parsed, err := render.ParseColor(col.hex)
		if err != nil {
			return render.Options{}, err
		}
		*col.dst = parsed
	}

	opts.Annotations.Title = c.Chart.Title
	opts.Annotations.Subtitle = c.Chart.Subtitle
	opts.Annotations.YLabel = c.Chart.YLabel
	opts.Annotations.SeasonLabel = c.Chart.SeasonLabel
	opts.Annotations.SeasonBoundaryIndex = c.Chart.SeasonBoundaryIndex
	opts.Annotations.SeasonLabelY = c.Chart.SeasonLabelY
	opts.Layout.Width = c.Chart.Width
	opts.Layout.Height = c.Chart.Height
	opts.XAxisMode = c.Chart.XAxisMode
	opts.LogoZoom = c.Chart.LogoZoom

	return opts, nil
}
