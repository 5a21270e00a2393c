package ggdraw

import (
	"math"

	diagram "github.com/gogpu/gg-diagram"
)

// Frame maps diagram coordinates (y up) to pixel coordinates (y down).
type Frame struct {
	m     diagram.Matrix
	scale float64
}

// NewFrame fits box into a width x height canvas with padding pixels on
// every side. The scale is uniform and the box is centred. A box that is
// degenerate along one axis is fitted along the other; a single point is
// drawn at scale 1 in the middle of the canvas.
func NewFrame(box diagram.Rect, width, height int, padding float64) Frame {
	w, h := float64(width), float64(height)
	scale := math.Inf(1)
	if bw := box.Width(); bw > 0 {
		scale = (w - 2*padding) / bw
	}
	if bh := box.Height(); bh > 0 {
		scale = min(scale, (h-2*padding)/bh)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}
	c := box.Center()
	m := diagram.Translate(w/2, h/2).
		Multiply(diagram.Scale(scale, -scale)).
		Multiply(diagram.Translate(-c.X, -c.Y))
	return Frame{m: m, scale: scale}
}

// Apply maps a diagram point to pixel coordinates.
func (f Frame) Apply(p diagram.Vector2) diagram.Vector2 {
	return f.m.TransformPoint(p)
}

// Scale returns the number of pixels per diagram unit.
func (f Frame) Scale() float64 {
	return f.scale
}

// Matrix returns the diagram-to-pixel transform.
func (f Frame) Matrix() diagram.Matrix {
	return f.m
}
