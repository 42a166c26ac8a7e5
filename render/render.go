// Package render draws the rolling xG / xGA chart.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/sartorproj/goxg/analysis"
	"github.com/sartorproj/goxg/stats"
	"github.com/sartorproj/goxg/timeseries"
)

var (
	// ErrNothingToPlot is returned when no line has two points to draw.
	ErrNothingToPlot = errors.New("nothing to plot")
	// ErrUnsupportedXAxisMode is returned for any x axis mode but sequential-index.
	ErrUnsupportedXAxisMode = errors.New("unsupported x axis mode")
)

// Input is the data drawn by Render.
type Input struct {
	Length           int // cleaned series length; x runs over [0, Length-1]
	RollingPrimary   *timeseries.Series
	RollingSecondary *timeseries.Series
	TrendPrimary     *stats.TrendModel // nil skips the line
	TrendSecondary   *stats.TrendModel
	Logo             image.Image
}

// InputFromResult builds the render input of an analysis result.
func InputFromResult(res *analysis.Result, logo image.Image) Input {
	return Input{
		Length:           res.Cleaned.Len(),
		RollingPrimary:   res.RollingPrimary,
		RollingSecondary: res.RollingSecondary,
		TrendPrimary:     res.TrendPrimary,
		TrendSecondary:   res.TrendSecondary,
		Logo:             logo,
	}
}

// Figure is a rendered chart.
type Figure struct {
	Image    *image.RGBA
	PlotArea image.Rectangle // pixel box of the data area
	LogoArea image.Rectangle // visible part of the logo
	// SeasonMarker is false when the boundary index falls outside the data.
	SeasonMarker bool
}

// EncodePNG writes the figure as PNG.
func (f *Figure) EncodePNG(w io.Writer) error {
	return png.Encode(w, f.Image)
}

// Save writes the figure to a PNG file.
func (f *Figure) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.EncodePNG(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

// Render draws the two rolling lines, their trend lines, the season marker,
// the titles and the logo.
func Render(in Input, opts Options) (*Figure, error) {
	if opts.XAxisMode != "" && opts.XAxisMode != XAxisSequentialIndex {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedXAxisMode, opts.XAxisMode)
	}
	if in.Logo == nil {
		return nil, &AssetLoadError{Err: ErrNoLogo}
	}
	if in.Length < 2 {
		return nil, ErrNothingToPlot
	}

	font, err := boldFont()
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	st := opts.Style
	ly := opts.Layout
	an := opts.Annotations
	maxX := float64(in.Length - 1)

	lineStyle := func(c drawing.Color, dashes []float64) chart.Style {
		return chart.Style{StrokeColor: c, StrokeWidth: st.LineWidth, StrokeDashArray: dashes}
	}

	var series []chart.Series
	series = appendRolling(series, "rolling xG", in.RollingPrimary, lineStyle(st.Primary, nil))
	series = appendRolling(series, "rolling xGA", in.RollingSecondary, lineStyle(st.Secondary, nil))
	series = appendTrend(series, "xG trend", in.TrendPrimary, maxX, lineStyle(st.Trend, st.TrendDashes))
	series = appendTrend(series, "xGA trend", in.TrendSecondary, maxX, lineStyle(st.Trend, st.TrendDashes))
	if len(series) == 0 {
		return nil, ErrNothingToPlot
	}

	markerDrawn := an.SeasonBoundaryIndex >= 0 && an.SeasonBoundaryIndex <= maxX
	if markerDrawn {
		series = append(series, seasonMarker{
			X:           an.SeasonBoundaryIndex,
			Label:       an.SeasonLabel,
			LabelOffset: 0.5,
			LabelY:      an.SeasonLabelY,
			Line: chart.Style{
				StrokeColor:     st.Marker,
				StrokeWidth:     1,
				StrokeDashArray: st.MarkerDashes,
			},
			Font:      font,
			FontSize:  ly.LabelSize,
			FontColor: st.Text.WithAlpha(opacity(st.LabelOpacity)),
		})
	}

	var plot chart.Box
	capture := func(_ chart.Renderer, canvasBox chart.Box, _ chart.Style) {
		plot = canvasBox
	}

	gridStyle := chart.Style{StrokeColor: st.Grid, StrokeWidth: 1}

	c := chart.Chart{
		Width:  ly.Width,
		Height: ly.Height,
		DPI:    ly.DPI,
		Background: chart.Style{
			FillColor: st.Background,
			Padding: chart.Box{
				Top:    int(float64(ly.Height) * (1 - ly.Top)),
				Left:   int(float64(ly.Width) * ly.Left),
				Right:  int(float64(ly.Width) * (1 - ly.Right)),
				Bottom: int(float64(ly.Height) * ly.Bottom),
			},
		},
		Canvas: chart.Style{FillColor: st.Background},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: maxX},
		},
		YAxis: chart.YAxis{
			Name: an.YLabel,
			NameStyle: chart.Style{
				FontColor: st.Text,
				FontSize:  ly.AxisLabelSize,
			},
			// Transparent stroke removes the spine and keeps the tick labels.
			Style: chart.Style{
				StrokeColor: drawing.ColorTransparent,
				FontColor:   st.Text,
				FontSize:    ly.AxisLabelSize,
			},
			TickStyle: chart.Style{StrokeColor: drawing.ColorTransparent},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.1f", f)
				}
				return ""
			},
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		Series: series,
		Elements: []chart.Renderable{
			capture,
			titles(an, ly, st, font),
		},
	}

	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode chart: %w", err)
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)

	plotArea := image.Rect(plot.Left, plot.Top, plot.Right, plot.Bottom)
	cx := plot.Left + int(opts.LogoAnchorX*float64(plot.Width()))
	cy := plot.Bottom - int(opts.LogoAnchorY*float64(plot.Height()))
	logoArea := overlayLogo(rgba, in.Logo, opts.LogoZoom, cx, cy)

	return &Figure{
		Image:        rgba,
		PlotArea:     plotArea,
		LogoArea:     logoArea,
		SeasonMarker: markerDrawn,
	}, nil
}

// appendRolling adds one line per run of consecutive present values.
// Runs of a single point have nothing to connect and are skipped.
func appendRolling(series []chart.Series, name string, s *timeseries.Series, style chart.Style) []chart.Series {
	if s == nil {
		return series
	}
	xs, ys := s.Segments()
	for i := range xs {
		if len(xs[i]) < 2 {
			continue
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs[i],
			YValues: ys[i],
			Style:   style,
		})
	}
	return series
}

// appendTrend adds the trend line over [0, maxX].
func appendTrend(series []chart.Series, name string, m *stats.TrendModel, maxX float64, style chart.Style) []chart.Series {
	if m == nil {
		return series
	}
	xs := []float64{0, maxX}
	return append(series, chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: m.EvalRange(xs),
		Style:   style,
	})
}
