package diagram

import "slices"

// LineCap is the stroke-linecap attribute.
type LineCap string

// Line cap values.
const (
	LineCapButt   LineCap = "butt"
	LineCapRound  LineCap = "round"
	LineCapSquare LineCap = "square"
)

// LineJoin is the stroke-linejoin attribute.
type LineJoin string

// Line join values.
const (
	LineJoinMiter LineJoin = "miter"
	LineJoinRound LineJoin = "round"
	LineJoinBevel LineJoin = "bevel"
)

// TextAnchor is the horizontal alignment of text relative to its origin.
type TextAnchor string

// Text anchor values.
const (
	TextAnchorStart  TextAnchor = "start"
	TextAnchorMiddle TextAnchor = "middle"
	TextAnchorEnd    TextAnchor = "end"
)

// DefaultFontSize is the font size assumed by ScaleText when a text leaf
// has none set.
const DefaultFontSize = 18.0

// Style holds the paint attributes of a node. Colors are kept as strings
// ("red", "#ff0000", "none") and resolved by the renderer.
type Style struct {
	Stroke          Optional[string]
	Fill            Optional[string]
	Opacity         Optional[float64]
	StrokeWidth     Optional[float64]
	StrokeLineCap   Optional[LineCap]
	StrokeLineJoin  Optional[LineJoin]
	StrokeDashArray Optional[[]float64]
	VectorEffect    Optional[string]
}

func (s Style) clone() Style {
	if dash, ok := s.StrokeDashArray.Get(); ok {
		s.StrokeDashArray = Some(slices.Clone(dash))
	}
	return s
}

// TextData holds the font and placement attributes of a text leaf. The
// text color lives in Style (see Diagram.TextFill).
type TextData struct {
	Text       string
	FontFamily Optional[string]
	FontSize   Optional[float64]
	FontWeight Optional[string]
	FontStyle  Optional[string]
	FontScale  Optional[string]
	TextAnchor Optional[TextAnchor]
	// DY is the baseline offset, e.g. "0.25em".
	DY    Optional[string]
	Angle Optional[float64]
}

// ImageData references the raster content of an image leaf.
type ImageData struct {
	Src string
}

// SpanStyle holds per-span overrides of a multiline text.
type SpanStyle struct {
	FontFamily    Optional[string]
	FontSize      Optional[float64]
	FontWeight    Optional[string]
	FontStyle     Optional[string]
	Fill          Optional[string]
	BaselineShift Optional[string]
}

// TextSpan is a run of text sharing one SpanStyle. A span whose Text is
// "\n" starts a new line.
type TextSpan struct {
	Text  string
	Style SpanStyle
}

// MultilineData is the content of a multiline text leaf.
type MultilineData struct {
	Spans       []TextSpan
	ScaleFactor float64
}

func (m MultilineData) clone() MultilineData {
	m.Spans = slices.Clone(m.Spans)
	return m
}

// Lines splits the spans at "\n" spans.
func (m MultilineData) Lines() [][]TextSpan {
	lines := [][]TextSpan{nil}
	for _, s := range m.Spans {
		if s.Text == "\n" {
			lines = append(lines, nil)
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], s)
	}
	return lines
}
