package diagram

import "strconv"

// DebugOption configures the overlay produced by Debug.
//
// Example:
//
//	overlay := d.Debug(diagram.WithPointIndices(false))
type DebugOption func(*debugOptions)

type debugOptions struct {
	indices   bool
	bboxStyle func(*Diagram) *Diagram
	fontSize  float64
}

func defaultDebugOptions() debugOptions {
	return debugOptions{
		indices: true,
		bboxStyle: func(d *Diagram) *Diagram {
			return d.Fill("none").Stroke("gray").StrokeDashArray(5, 5)
		},
		fontSize: 7,
	}
}

// WithPointIndices controls whether path points are labelled with their
// index. Enabled by default.
func WithPointIndices(show bool) DebugOption {
	return func(o *debugOptions) {
		o.indices = show
	}
}

// WithBBoxStyle replaces the styling applied to the bounding box rectangle.
func WithBBoxStyle(style func(*Diagram) *Diagram) DebugOption {
	return func(o *debugOptions) {
		if style != nil {
			o.bboxStyle = style
		}
	}
}

// WithIndexFontSize sets the font size of point index labels.
func WithIndexFontSize(size float64) DebugOption {
	return func(o *debugOptions) {
		o.fontSize = size
	}
}

// DebugBBox returns an overlay of the bounding box rectangle and a marker
// at the origin. The overlay is not combined with d.
func (d *Diagram) DebugBBox(opts ...DebugOption) *Diagram {
	o := defaultDebugOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return d.debugBBox(o)
}

func (d *Diagram) debugBBox(o debugOptions) *Diagram {
	box := d.BoundingBox()
	rect := o.bboxStyle(Polygon(box.Min, V2(box.Max.X, box.Min.Y), box.Max, V2(box.Min.X, box.Max.Y)))
	marker := Text("+").TextFill("red").MoveOriginText(CenterCenter).Position(d.origin)
	return Combine(rect, marker)
}

// Debug returns d combined with its DebugBBox overlay. For polygons and
// curves the points are also labelled with their index, skipping points
// closer than a tenth of the bounding box diagonal to the last labelled
// point so that labels stay readable.
func (d *Diagram) Debug(opts ...DebugOption) *Diagram {
	o := defaultDebugOptions()
	for _, opt := range opts {
		opt(&o)
	}
	parts := []*Diagram{d, d.debugBBox(o)}
	if o.indices && (d.kind == KindPolygon || d.kind == KindCurve) {
		parts = append(parts, d.indexLabels(o)...)
	}
	return Combine(parts...)
}

func (d *Diagram) indexLabels(o debugOptions) []*Diagram {
	minDist := d.BoundingBox().Diagonal() / 10
	var (
		labels []*Diagram
		last   Vector2
	)
	for i, p := range d.mustPath("Debug").points {
		if len(labels) > 0 && p.Distance(last) < minDist {
			continue
		}
		label := Text(strconv.Itoa(i)).
			TextFill("blue").
			FontSize(o.fontSize).
			MoveOriginText(CenterCenter).
			Position(p)
		labels = append(labels, label)
		last = p
	}
	return labels
}
