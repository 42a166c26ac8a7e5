package render

import (
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// seasonMarker is a vertical dashed line across the plot at X, with a
// rotated label centred on (X+LabelOffset, LabelY) in data coordinates.
// It provides no values, so it never affects the axis ranges.
type seasonMarker struct {
	X           float64
	Label       string
	LabelOffset float64
	LabelY      float64

	Line      chart.Style
	Font      *truetype.Font
	FontSize  float64
	FontColor drawing.Color
}

func (m seasonMarker) GetName() string { return m.Label }

func (m seasonMarker) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }

func (m seasonMarker) GetStyle() chart.Style { return m.Line }

func (m seasonMarker) Validate() error { return nil }

func (m seasonMarker) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	x := canvasBox.Left + xrange.Translate(m.X)

	r.SetStrokeColor(m.Line.StrokeColor)
	r.SetStrokeWidth(m.Line.StrokeWidth)
	r.SetStrokeDashArray(m.Line.StrokeDashArray)
	r.MoveTo(x, canvasBox.Top)
	r.LineTo(x, canvasBox.Bottom)
	r.Stroke()
	r.SetStrokeDashArray(nil)

	if m.Label == "" {
		return
	}

	if m.Font != nil {
		r.SetFont(m.Font)
	}
	r.SetFontSize(m.FontSize)
	r.SetFontColor(m.FontColor)

	tb := r.MeasureText(m.Label)
	lx := canvasBox.Left + xrange.Translate(m.X+m.LabelOffset)
	ly := canvasBox.Bottom - yrange.Translate(m.LabelY)

	// Rotated 270 degrees the text runs upwards from its origin.
	r.SetTextRotation(chart.DegreesToRadians(270))
	r.Text(m.Label, lx+tb.Height()/2, ly+tb.Width()/2)
	r.ClearTextRotation()
}
