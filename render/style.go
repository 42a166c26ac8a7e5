package render

import (
	"fmt"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Style holds every color of the figure.
// It is passed to Render explicitly; there is no package level style switch.
type Style struct {
	Background drawing.Color
	Text       drawing.Color
	Primary    drawing.Color // rolling xG line
	Secondary  drawing.Color // rolling xGA line
	Trend      drawing.Color
	Grid       drawing.Color
	Marker     drawing.Color

	LineWidth       float64
	TrendDashes     []float64
	MarkerDashes    []float64
	SubtitleOpacity float64
	LabelOpacity    float64
}

// DarkStyle returns the dark background style.
func DarkStyle() Style {
	return Style{
		Background:      drawing.ColorBlack,
		Text:            drawing.ColorWhite,
		Primary:         drawing.ColorFromHex("FFFFFF"),
		Secondary:       drawing.ColorFromHex("132257"),
		Trend:           drawing.ColorFromHex("FFFFFF"),
		Grid:            drawing.ColorFromHex("808080"),
		Marker:          drawing.ColorWhite.WithAlpha(opacity(0.65)),
		LineWidth:       2,
		TrendDashes:     []float64{6, 3},
		MarkerDashes:    []float64{6, 6},
		SubtitleOpacity: 0.76,
		LabelOpacity:    0.7,
	}
}

// ParseColor parses "#RRGGBB" or "RRGGBB".
func ParseColor(hex string) (drawing.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return drawing.Color{}, fmt.Errorf("invalid color %q", hex)
	}
	for _, c := range strings.ToLower(h) {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return drawing.Color{}, fmt.Errorf("invalid color %q", hex)
		}
	}
	return drawing.ColorFromHex(h), nil
}

func opacity(alpha float64) uint8 {
	if alpha <= 0 {
		return 0
	}
	if alpha >= 1 {
		return 255
	}
	return uint8(alpha*255 + 0.5)
}
