package diagram

import "slices"

// Transform applies f to the origin, to every path point and, recursively,
// to every descendant. It is the primitive behind every rigid transform.
func (d *Diagram) Transform(f func(Vector2) Vector2) *Diagram {
	return d.rewrite(func(n *Diagram, owned bool) {
		n.origin = f(n.origin)
		if n.path != nil {
			n.path = n.path.editable(owned)
			n.path.transform(f)
		}
	})
}

// TransformMatrix applies an affine matrix to the whole tree.
func (d *Diagram) TransformMatrix(m Matrix) *Diagram {
	return d.Transform(m.TransformPoint)
}

// Translate moves the diagram by v.
func (d *Diagram) Translate(v Vector2) *Diagram {
	return d.TransformMatrix(Translate(v.X, v.Y))
}

// Rotate rotates the diagram counter-clockwise by angle radians around its
// origin.
func (d *Diagram) Rotate(angle float64) *Diagram {
	return d.RotateAbout(angle, d.origin)
}

// RotateAbout rotates the diagram counter-clockwise by angle radians around
// pivot.
func (d *Diagram) RotateAbout(angle float64, pivot Vector2) *Diagram {
	return d.TransformMatrix(Rotate(angle).About(pivot))
}

// Scale scales the diagram uniformly around its origin.
func (d *Diagram) Scale(factor float64) *Diagram {
	return d.ScaleAbout(V2(factor, factor), d.origin)
}

// ScaleXY scales each axis separately around the origin.
func (d *Diagram) ScaleXY(factor Vector2) *Diagram {
	return d.ScaleAbout(factor, d.origin)
}

// ScaleAbout scales each axis separately around center.
func (d *Diagram) ScaleAbout(factor, center Vector2) *Diagram {
	return d.TransformMatrix(Scale(factor.X, factor.Y).About(center))
}

// SkewX shears the diagram horizontally by angle radians, keeping the
// horizontal line through the origin fixed.
func (d *Diagram) SkewX(angle float64) *Diagram {
	return d.SkewXAbout(angle, d.origin)
}

// SkewXAbout shears horizontally, keeping the horizontal line through base
// fixed.
func (d *Diagram) SkewXAbout(angle float64, base Vector2) *Diagram {
	return d.TransformMatrix(SkewX(angle).About(base))
}

// SkewY shears the diagram vertically by angle radians, keeping the
// vertical line through the origin fixed.
func (d *Diagram) SkewY(angle float64) *Diagram {
	return d.SkewYAbout(angle, d.origin)
}

// SkewYAbout shears vertically, keeping the vertical line through base
// fixed.
func (d *Diagram) SkewYAbout(angle float64, base Vector2) *Diagram {
	return d.TransformMatrix(SkewY(angle).About(base))
}

// Reflect mirrors the diagram through its own origin.
func (d *Diagram) Reflect() *Diagram {
	return d.ReflectOverPoint(d.origin)
}

// ReflectOverPoint mirrors the diagram through p.
func (d *Diagram) ReflectOverPoint(p Vector2) *Diagram {
	return d.Transform(func(v Vector2) Vector2 { return v.ReflectOverPoint(p) })
}

// ReflectOverLine mirrors the diagram across the line through p1 and p2.
func (d *Diagram) ReflectOverLine(p1, p2 Vector2) *Diagram {
	return d.Transform(func(v Vector2) Vector2 { return v.ReflectOverLine(p1, p2) })
}

// VFlip mirrors the diagram across the horizontal line through its origin.
func (d *Diagram) VFlip() *Diagram {
	return d.VFlipAt(d.origin.Y)
}

// VFlipAt mirrors the diagram across the horizontal line y = a.
func (d *Diagram) VFlipAt(a float64) *Diagram {
	return d.Transform(func(v Vector2) Vector2 { return V2(v.X, 2*a-v.Y) })
}

// HFlip mirrors the diagram across the vertical line through its origin.
func (d *Diagram) HFlip() *Diagram {
	return d.HFlipAt(d.origin.X)
}

// HFlipAt mirrors the diagram across the vertical line x = a.
func (d *Diagram) HFlipAt(a float64) *Diagram {
	return d.Transform(func(v Vector2) Vector2 { return V2(2*a-v.X, v.Y) })
}

// Position translates the diagram so that its origin lands on v.
func (d *Diagram) Position(v Vector2) *Diagram {
	return d.Translate(v.Sub(d.origin))
}

// MoveOrigin sets the origin to p without moving any geometry.
func (d *Diagram) MoveOrigin(p Vector2) *Diagram {
	return d.update(func(n *Diagram, _ bool) {
		n.origin = p
	})
}

// MoveOriginTo sets the origin to the given anchor of the bounding box
// without moving any geometry.
func (d *Diagram) MoveOriginTo(a Anchor) *Diagram {
	return d.MoveOrigin(d.GetAnchor(a))
}

// ToCurve turns polygons into open curves, recursively. Other kinds are
// left unchanged.
func (d *Diagram) ToCurve() *Diagram {
	return d.rewrite(func(n *Diagram, _ bool) {
		if n.kind == KindPolygon {
			n.kind = KindCurve
		}
	})
}

// ToPolygon turns curves into closed polygons, recursively. Other kinds
// are left unchanged.
func (d *Diagram) ToPolygon() *Diagram {
	return d.rewrite(func(n *Diagram, _ bool) {
		if n.kind == KindCurve {
			n.kind = KindPolygon
		}
	})
}

// AddPoints appends points to the path of a polygon or curve. On a
// composite only the last child receives the points (recursively, so the
// deepest last leaf is extended). Other kinds are unchanged.
func (d *Diagram) AddPoints(points ...Vector2) *Diagram {
	return d.addPoints(false, points)
}

func (d *Diagram) addPoints(owned bool, points []Vector2) *Diagram {
	out, owned := d.editable(owned)
	switch out.kind {
	case KindPolygon, KindCurve:
		out.path = out.mustPath("AddPoints").editable(owned)
		out.path.points = append(out.path.points, points...)
	case KindComposite:
		if last := len(out.children) - 1; last >= 0 {
			out.children[last] = out.children[last].addPoints(owned, points)
		}
	}
	return out
}

// ReversePath reverses the point order of this node's own path. It does
// not descend into children.
func (d *Diagram) ReversePath() *Diagram {
	return d.update(func(n *Diagram, owned bool) {
		if n.path != nil {
			n.path = n.path.editable(owned)
			slices.Reverse(n.path.points)
		}
	})
}
