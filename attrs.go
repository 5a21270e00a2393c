package diagram

import "slices"

var (
	// Paint attributes of shapes do not apply to text nodes, whose color is
	// set with TextFill and TextStroke.
	shapeOnly = kinds(KindText, KindMultilineText)
	// Text paint does not apply to shapes.
	textOnly = kinds(KindPolygon, KindCurve)
)

// UpdateStyle calls set on the style of every leaf in the tree whose kind
// is not in exclude. Composite nodes carry no style of their own.
func (d *Diagram) UpdateStyle(set func(s *Style), exclude ...Kind) *Diagram {
	return d.updateStyle(kinds(exclude...), set)
}

func (d *Diagram) updateStyle(excluded kindSet, set func(s *Style)) *Diagram {
	return d.rewrite(func(n *Diagram, _ bool) {
		if n.kind == KindComposite || excluded.has(n.kind) {
			return
		}
		set(&n.style)
	})
}

// UpdateTextData calls set on the text attributes of every text and
// multiline text leaf in the tree.
func (d *Diagram) UpdateTextData(set func(td *TextData)) *Diagram {
	return d.rewrite(func(n *Diagram, _ bool) {
		if n.kind.IsText() {
			set(&n.textdata)
		}
	})
}

// Fill sets the fill color of shapes. Text is not affected.
func (d *Diagram) Fill(color string) *Diagram {
	return d.updateStyle(shapeOnly, func(s *Style) { s.Fill = Some(color) })
}

// Stroke sets the stroke color of shapes. Text is not affected.
func (d *Diagram) Stroke(color string) *Diagram {
	return d.updateStyle(shapeOnly, func(s *Style) { s.Stroke = Some(color) })
}

// Opacity sets the opacity of every leaf.
func (d *Diagram) Opacity(opacity float64) *Diagram {
	return d.updateStyle(0, func(s *Style) { s.Opacity = Some(opacity) })
}

// StrokeWidth sets the stroke width of shapes.
func (d *Diagram) StrokeWidth(width float64) *Diagram {
	return d.updateStyle(shapeOnly, func(s *Style) { s.StrokeWidth = Some(width) })
}

// StrokeLineCap sets the line cap of shapes.
func (d *Diagram) StrokeLineCap(lineCap LineCap) *Diagram {
	return d.updateStyle(shapeOnly, func(s *Style) { s.StrokeLineCap = Some(lineCap) })
}

// StrokeLineJoin sets the line join of shapes.
func (d *Diagram) StrokeLineJoin(join LineJoin) *Diagram {
	return d.updateStyle(shapeOnly, func(s *Style) { s.StrokeLineJoin = Some(join) })
}

// StrokeDashArray sets the dash pattern of shapes. An empty pattern draws
// solid lines.
func (d *Diagram) StrokeDashArray(dashes ...float64) *Diagram {
	return d.updateStyle(shapeOnly, func(s *Style) { s.StrokeDashArray = Some(slices.Clone(dashes)) })
}

// VectorEffect sets the vector-effect attribute of shapes, e.g.
// "non-scaling-stroke".
func (d *Diagram) VectorEffect(effect string) *Diagram {
	return d.updateStyle(shapeOnly, func(s *Style) { s.VectorEffect = Some(effect) })
}

// TextFill sets the color of text. Polygons and curves are not affected.
func (d *Diagram) TextFill(color string) *Diagram {
	return d.updateStyle(textOnly, func(s *Style) { s.Fill = Some(color) })
}

// TextStroke sets the outline color of text.
func (d *Diagram) TextStroke(color string) *Diagram {
	return d.updateStyle(textOnly, func(s *Style) { s.Stroke = Some(color) })
}

// TextStrokeWidth sets the outline width of text.
func (d *Diagram) TextStrokeWidth(width float64) *Diagram {
	return d.updateStyle(textOnly, func(s *Style) { s.StrokeWidth = Some(width) })
}

// FontFamily sets the font family of text.
func (d *Diagram) FontFamily(family string) *Diagram {
	return d.UpdateTextData(func(td *TextData) { td.FontFamily = Some(family) })
}

// FontSize sets the font size of text.
func (d *Diagram) FontSize(size float64) *Diagram {
	return d.UpdateTextData(func(td *TextData) { td.FontSize = Some(size) })
}

// FontWeight sets the font weight of text, e.g. "bold" or "600".
func (d *Diagram) FontWeight(weight string) *Diagram {
	return d.UpdateTextData(func(td *TextData) { td.FontWeight = Some(weight) })
}

// FontStyle sets the font style of text, e.g. "italic".
func (d *Diagram) FontStyle(style string) *Diagram {
	return d.UpdateTextData(func(td *TextData) { td.FontStyle = Some(style) })
}

// FontScale sets how the renderer scales text, e.g. "auto" or "native".
func (d *Diagram) FontScale(scale string) *Diagram {
	return d.UpdateTextData(func(td *TextData) { td.FontScale = Some(scale) })
}

// AnchorText sets the horizontal alignment of text around its origin.
func (d *Diagram) AnchorText(anchor TextAnchor) *Diagram {
	return d.UpdateTextData(func(td *TextData) { td.TextAnchor = Some(anchor) })
}

// TextAngle sets the rotation of text in radians.
func (d *Diagram) TextAngle(angle float64) *Diagram {
	return d.UpdateTextData(func(td *TextData) { td.Angle = Some(angle) })
}

// ScaleText multiplies the font size of text leaves and the scale factor
// of multiline text leaves by scale. Geometry is unchanged. Text without
// an explicit size starts from DefaultFontSize.
func (d *Diagram) ScaleText(scale float64) *Diagram {
	return d.rewrite(func(n *Diagram, _ bool) {
		switch n.kind {
		case KindText:
			n.textdata.FontSize = Some(n.textdata.FontSize.Or(DefaultFontSize) * scale)
		case KindMultilineText:
			n.multiline.ScaleFactor *= scale
		}
	})
}

// Text alignment used by MoveOriginText, indexed by anchor column and row.
var (
	textAnchorByColumn = [...]TextAnchor{TextAnchorStart, TextAnchorMiddle, TextAnchorEnd}
	textDYByRow        = [...]string{"0.75em", "0.25em", "-0.25em"}
)

// MoveOriginText aligns text so that it renders as if its origin were the
// given anchor of the text box: the column selects text-anchor
// (start/middle/end) and the row the baseline offset (0.75em, 0.25em,
// -0.25em for top, center, bottom). Shapes are not affected.
func (d *Diagram) MoveOriginText(a Anchor) *Diagram {
	anchor := textAnchorByColumn[a.horizontal()]
	dy := textDYByRow[a.vertical()]
	return d.UpdateTextData(func(td *TextData) {
		td.TextAnchor = Some(anchor)
		td.DY = Some(dy)
	})
}
