package render

import (
	"github.com/golang/freetype/truetype"
	"github.com/wcharczuk/go-chart/v2"
)

// titles draws the title above the plot and the subtitle at its figure position.
func titles(an Annotations, ly Layout, st Style, font *truetype.Font) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, _ chart.Style) {
		r.SetFont(font)

		if an.Title != "" {
			r.SetFontSize(ly.TitleSize)
			r.SetFontColor(st.Text)
			tb := r.MeasureText(an.Title)
			x := canvasBox.Left + int(ly.TitleX*float64(canvasBox.Width())) - tb.Width()/2
			y := canvasBox.Top - ly.points(ly.TitlePad)
			r.Text(an.Title, x, y)
		}

		if an.Subtitle != "" {
			r.SetFontSize(ly.SubtitleSize)
			r.SetFontColor(st.Text.WithAlpha(opacity(st.SubtitleOpacity)))
			tb := r.MeasureText(an.Subtitle)
			x := int(ly.SubtitleX*float64(ly.Width)) - tb.Width()/2
			y := int((1-ly.SubtitleY)*float64(ly.Height)) + tb.Height()
			r.Text(an.Subtitle, x, y)
		}
	}
}
