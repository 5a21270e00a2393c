package ggdraw

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	diagram "github.com/gogpu/gg-diagram"
	"github.com/gogpu/gg/text"
)

const (
	defaultStroke      = "black"
	defaultFill        = "none"
	defaultStrokeWidth = 1.0
	nonScalingStroke   = "non-scaling-stroke"
)

// Render draws d on a new canvas fitted to its bounding box. The caller
// owns the returned context and must Close it.
func Render(d *diagram.Diagram, opts ...Option) (*gg.Context, error) {
	o := newOptions(opts)
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}

	dc := gg.NewContext(o.width, o.height)
	dc.ClearWithColor(o.background)
	frame := NewFrame(d.BoundingBox(), o.width, o.height, o.padding)
	if err := draw(dc, d, frame, o); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// Draw paints every leaf of d onto dc through frame, in tree order.
// Only the font option applies; the canvas options are ignored.
func Draw(dc *gg.Context, d *diagram.Diagram, frame Frame, opts ...Option) error {
	return draw(dc, d, frame, newOptions(opts))
}

func draw(dc *gg.Context, d *diagram.Diagram, frame Frame, o options) error {
	p := &painter{dc: dc, frame: frame, font: o.font}
	flat := d.Flatten()
	if flat.Kind() != diagram.KindComposite {
		return p.paint(flat)
	}
	for _, leaf := range flat.Children() {
		if err := p.paint(leaf); err != nil {
			return err
		}
	}
	return nil
}

// painter holds the per-call drawing state.
type painter struct {
	dc    *gg.Context
	frame Frame
	font  *text.FontSource
}

func (p *painter) paint(n *diagram.Diagram) error {
	switch n.Kind() {
	case diagram.KindPolygon, diagram.KindCurve:
		return p.paintPath(n)
	case diagram.KindText:
		return p.paintText(n)
	case diagram.KindMultilineText:
		return p.paintMultiline(n)
	case diagram.KindImage:
		p.paintImage(n)
		return nil
	default:
		// Empty groups survive flattening as the root only.
		return nil
	}
}

// color resolves a style color, logging and skipping unknown values.
func (p *painter) color(n *diagram.Diagram, attr, value string) (gg.RGBA, bool) {
	c, ok, err := ParseColor(value)
	if err != nil {
		diagram.Logger().Warn("ggdraw: not painting attribute", "kind", n.Kind(), "attr", attr, "err", err)
		return gg.RGBA{}, false
	}
	return c, ok
}

func (p *painter) setColor(c gg.RGBA, opacity float64) {
	p.dc.SetRGBA(c.R, c.G, c.B, c.A*opacity)
}

func (p *painter) paintPath(n *diagram.Diagram) error {
	pts := n.Path().Points()
	if len(pts) == 0 {
		return nil
	}
	st := n.Style()
	opacity := st.Opacity.Or(1)
	fill, doFill := p.color(n, "fill", st.Fill.Or(defaultFill))
	stroke, doStroke := p.color(n, "stroke", st.Stroke.Or(defaultStroke))
	if opacity <= 0 || (!doFill && !doStroke) {
		return nil
	}

	p.dc.ClearPath()
	start := p.frame.Apply(pts[0])
	p.dc.MoveTo(start.X, start.Y)
	for _, pt := range pts[1:] {
		q := p.frame.Apply(pt)
		p.dc.LineTo(q.X, q.Y)
	}
	if n.Kind() == diagram.KindPolygon {
		p.dc.ClosePath()
	}

	if doFill {
		p.setColor(fill, opacity)
		if err := p.dc.FillPreserve(); err != nil {
			return fmt.Errorf("ggdraw: fill %s: %w", n.Kind(), err)
		}
	}
	if !doStroke {
		p.dc.ClearPath()
		return nil
	}
	p.applyStroke(st)
	p.setColor(stroke, opacity)
	if err := p.dc.Stroke(); err != nil {
		return fmt.Errorf("ggdraw: stroke %s: %w", n.Kind(), err)
	}
	return nil
}

func (p *painter) applyStroke(st diagram.Style) {
	unit := 1.0
	if st.VectorEffect.Or(nonScalingStroke) != nonScalingStroke {
		unit = p.frame.Scale()
	}
	p.dc.SetLineWidth(st.StrokeWidth.Or(defaultStrokeWidth) * unit)

	dashes, _ := st.StrokeDashArray.Get()
	scaled := make([]float64, len(dashes))
	for i, l := range dashes {
		scaled[i] = l * unit
	}
	p.dc.SetDash(scaled...)

	switch st.StrokeLineCap.Or(diagram.LineCapButt) {
	case diagram.LineCapRound:
		p.dc.SetLineCap(gg.LineCapRound)
	case diagram.LineCapSquare:
		p.dc.SetLineCap(gg.LineCapSquare)
	default:
		p.dc.SetLineCap(gg.LineCapButt)
	}
	switch st.StrokeLineJoin.Or(diagram.LineJoinMiter) {
	case diagram.LineJoinRound:
		p.dc.SetLineJoin(gg.LineJoinRound)
	case diagram.LineJoinBevel:
		p.dc.SetLineJoin(gg.LineJoinBevel)
	default:
		p.dc.SetLineJoin(gg.LineJoinMiter)
	}
}

// paintImage draws the image file into the pixel box of the node's path.
// Rotation and skew of the path are not reproduced.
func (p *painter) paintImage(n *diagram.Diagram) {
	opacity := n.Style().Opacity.Or(1)
	if opacity <= 0 {
		return
	}
	src := n.ImageData().Src
	img, err := gg.LoadImage(src)
	if err != nil {
		diagram.Logger().Warn("ggdraw: skipping image", "src", src, "err", err)
		return
	}
	box := n.BoundingBox()
	a, b := p.frame.Apply(box.Min), p.frame.Apply(box.Max)
	p.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:         math.Min(a.X, b.X),
		Y:         math.Min(a.Y, b.Y),
		DstWidth:  math.Abs(b.X - a.X),
		DstHeight: math.Abs(b.Y - a.Y),
		Opacity:   min(opacity, 1),
	})
}
