package render

// XAxisSequentialIndex places match i at x = i, ignoring calendar spacing.
const XAxisSequentialIndex = "sequential-index"

// Annotations holds the texts and the season marker position.
type Annotations struct {
	Title    string
	Subtitle string
	YLabel   string

	SeasonLabel         string
	SeasonBoundaryIndex float64
	SeasonLabelY        float64 // data coordinate of the label centre
}

// Layout holds the figure geometry. Margins are figure fractions, as in
// left=0.1, right=0.9, top=0.85, bottom=0.15.
type Layout struct {
	Width  int
	Height int
	DPI    float64

	Left, Right, Top, Bottom float64

	TitleX        float64 // plot width fraction of the title centre
	TitlePad      float64 // points between plot top and title
	TitleSize     float64
	SubtitleX     float64 // figure fraction of the subtitle centre
	SubtitleY     float64 // figure fraction of the subtitle top, from the bottom
	SubtitleSize  float64
	LabelSize     float64
	AxisLabelSize float64
}

// Options controls Render.
type Options struct {
	Style       Style
	Annotations Annotations
	Layout      Layout
	XAxisMode   string

	LogoZoom    float64
	LogoAnchorX float64 // plot fraction, may exceed 1
	LogoAnchorY float64
}

// DefaultOptions returns the options of the season review chart.
func DefaultOptions() Options {
	return Options{
		Style: DarkStyle(),
		Annotations: Annotations{
			Title:               "Tottenham's performances have varied under Ange Postecoglu",
			Subtitle:            "xG & xGA rolling 5-game average | Premier League",
			YLabel:              "Rolling xG & xGA Average",
			SeasonLabel:         "24-25 Season",
			SeasonBoundaryIndex: 39,
			SeasonLabelY:        1.21,
		},
		Layout: Layout{
			Width:         1000,
			Height:        600,
			DPI:           100,
			Left:          0.1,
			Right:         0.9,
			Top:           0.85,
			Bottom:        0.15,
			TitleX:        0.39,
			TitlePad:      40,
			TitleSize:     14,
			SubtitleX:     0.268,
			SubtitleY:     0.915,
			SubtitleSize:  10,
			LabelSize:     7,
			AxisLabelSize: 10,
		},
		XAxisMode:   XAxisSequentialIndex,
		LogoZoom:    0.25,
		LogoAnchorX: 0.95,
		LogoAnchorY: 1.09,
	}
}

// points converts a size in points to pixels.
func (l Layout) points(pt float64) int {
	dpi := l.DPI
	if dpi <= 0 {
		dpi = 100
	}
	return int(pt*dpi/72 + 0.5)
}
