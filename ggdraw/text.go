package ggdraw

import (
	"fmt"
	"strconv"
	"strings"

	diagram "github.com/gogpu/gg-diagram"
	"github.com/gogpu/gg/text"
)

const (
	defaultTextFill   = "black"
	defaultTextDY     = "0.25em"
	lineHeight        = 1.2
	fontScaleNative   = "native"
	defaultTextAnchor = diagram.TextAnchorMiddle
)

// anchorFraction converts text-anchor to the fraction of the text width
// that lies left of the origin.
func anchorFraction(a diagram.TextAnchor) float64 {
	switch a {
	case diagram.TextAnchorStart:
		return 0
	case diagram.TextAnchorEnd:
		return 1
	default:
		return 0.5
	}
}

// parseLength converts "0.25em", "3px" or "3" to pixels. Plain numbers and
// px are multiplied by unit.
func parseLength(s string, em, unit float64) (float64, error) {
	s = strings.TrimSpace(s)
	factor := unit
	if v, ok := strings.CutSuffix(s, "em"); ok {
		s, factor = v, em
	} else if v, ok := strings.CutSuffix(s, "px"); ok {
		s = v
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return v * factor, nil
}

func (p *painter) fontSource() (*text.FontSource, error) {
	if p.font != nil {
		return p.font, nil
	}
	src, err := defaultFont()
	if err != nil {
		return nil, fmt.Errorf("ggdraw: load default font: %w", err)
	}
	p.font = src
	return src, nil
}

// textUnit returns the pixel size of one font-size unit: 1 by default, the
// frame scale for "native" font scaling.
func (p *painter) textUnit(td diagram.TextData) float64 {
	if td.FontScale.Or("") == fontScaleNative {
		return p.frame.Scale()
	}
	return 1
}

// baseline returns the pixel position of the first baseline and the
// anchor fraction of a text leaf.
func (p *painter) baseline(n *diagram.Diagram, td diagram.TextData, size, unit float64) (diagram.Vector2, float64) {
	pos := p.frame.Apply(n.Origin())
	dy, err := parseLength(td.DY.Or(defaultTextDY), size, unit)
	if err != nil {
		diagram.Logger().Warn("ggdraw: ignoring text dy", "err", err)
		dy = 0
	}
	if angle, ok := td.Angle.Get(); ok && angle != 0 {
		diagram.Logger().Debug("ggdraw: text rotation is not rendered", "angle", angle)
	}
	pos.Y += dy
	return pos, anchorFraction(td.TextAnchor.Or(defaultTextAnchor))
}

func (p *painter) paintText(n *diagram.Diagram) error {
	td := n.TextData()
	st := n.Style()
	opacity := st.Opacity.Or(1)
	fill, ok := p.color(n, "fill", st.Fill.Or(defaultTextFill))
	if !ok || opacity <= 0 || td.Text == "" {
		return nil
	}
	src, err := p.fontSource()
	if err != nil {
		return err
	}

	unit := p.textUnit(td)
	size := td.FontSize.Or(diagram.DefaultFontSize) * unit
	pos, ax := p.baseline(n, td, size, unit)

	p.dc.SetFont(src.Face(size))
	p.setColor(fill, opacity)
	p.dc.DrawStringAnchored(td.Text, pos.X, pos.Y, ax, 0)
	return nil
}

// paintMultiline lays the spans out line by line. Each span may override
// the font size and fill; a line is anchored as a whole.
func (p *painter) paintMultiline(n *diagram.Diagram) error {
	td := n.TextData()
	md := n.MultilineData()
	st := n.Style()
	opacity := st.Opacity.Or(1)
	if opacity <= 0 {
		return nil
	}
	src, err := p.fontSource()
	if err != nil {
		return err
	}

	unit := p.textUnit(td) * md.ScaleFactor
	base := td.FontSize.Or(diagram.DefaultFontSize) * unit
	pos, ax := p.baseline(n, td, base, unit)
	nodeFill := st.Fill.Or(defaultTextFill)

	for i, line := range md.Lines() {
		faces := make([]text.Face, len(line))
		var width float64
		for j, span := range line {
			faces[j] = src.Face(span.Style.FontSize.Or(td.FontSize.Or(diagram.DefaultFontSize)) * unit)
			p.dc.SetFont(faces[j])
			w, _ := p.dc.MeasureString(span.Text)
			width += w
		}

		x := pos.X - width*ax
		y := pos.Y + float64(i)*lineHeight*base
		for j, span := range line {
			p.dc.SetFont(faces[j])
			w, _ := p.dc.MeasureString(span.Text)
			if fill, ok := p.color(n, "fill", span.Style.Fill.Or(nodeFill)); ok {
				p.setColor(fill, opacity)
				p.dc.DrawString(span.Text, x, y)
			}
			x += w
		}
	}
	return nil
}
