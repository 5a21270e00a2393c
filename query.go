package diagram

import "fmt"

// BoundingBox returns the axis-aligned box of the tree.
//
// Paths contribute their points, text leaves the degenerate box at their
// origin (text extent is only known at render time), and composites the
// union of their children. A tree with no geometry at all, such as an
// empty composite, yields the zero-size box at its origin.
func (d *Diagram) BoundingBox() Rect {
	if r, ok := d.bounds(); ok {
		return r
	}
	return PointRect(d.origin)
}

// bounds returns false when the subtree holds no geometry, so that empty
// groups do not stretch their parent's box.
func (d *Diagram) bounds() (Rect, bool) {
	switch d.kind {
	case KindComposite:
		var box Rect
		found := false
		for _, c := range d.children {
			cb, ok := c.bounds()
			switch {
			case !ok:
			case !found:
				box, found = cb, true
			default:
				box = box.Union(cb)
			}
		}
		return box, found
	case KindPolygon, KindCurve, KindImage:
		return d.mustPath("BoundingBox").BoundingBox()
	case KindText, KindMultilineText:
		return PointRect(d.origin), true
	default:
		panic(invariant("BoundingBox", d.kind, "unknown kind"))
	}
}

// GetAnchor returns a named point of the bounding box. Top is the maximum
// y, left the minimum x. It panics if a is not one of the nine anchors.
func (d *Diagram) GetAnchor(a Anchor) Vector2 {
	return d.BoundingBox().Anchor(a)
}

// PathLength returns the length of the node's path, or the sum over all
// descendants for a composite. The closing edge of a polygon is not
// counted. Text and image nodes have no path length.
func (d *Diagram) PathLength() (float64, error) {
	switch d.kind {
	case KindComposite:
		var total float64
		for _, c := range d.children {
			l, err := c.PathLength()
			if err != nil {
				return 0, err
			}
			total += l
		}
		return total, nil
	case KindPolygon, KindCurve:
		return d.mustPath("PathLength").Length(), nil
	case KindText, KindMultilineText, KindImage:
		return 0, fmt.Errorf("%w: %s", ErrNoPathLength, d.kind)
	default:
		panic(invariant("PathLength", d.kind, "unknown kind"))
	}
}

// ParametricPoint returns the point at fraction t in [0, 1] of the
// diagram's path. Polygons include their closing edge.
//
// A composite splits [0, 1] between its children in proportion to their
// PathLength, finds the first child whose cumulative share reaches t and
// asks it for the remapped parameter. Composites must have a positive
// total length.
func (d *Diagram) ParametricPoint(t float64) (Vector2, error) {
	if t < 0 || t > 1 {
		return Vector2{}, fmt.Errorf("%w: got %g", ErrParameterOutOfRange, t)
	}
	switch d.kind {
	case KindComposite:
		if len(d.children) == 0 {
			return Vector2{}, ErrEmptyDiagram
		}
		cumulative := make([]float64, len(d.children))
		var total float64
		for i, c := range d.children {
			l, err := c.PathLength()
			if err != nil {
				return Vector2{}, err
			}
			total += l
			cumulative[i] = total
		}
		if total == 0 {
			return Vector2{}, ErrZeroLength
		}
		for i := range cumulative {
			cumulative[i] /= total
		}
		child, local := locateSegment(cumulative, t)
		return d.children[child].ParametricPoint(min(max(local, 0), 1))
	case KindPolygon, KindCurve, KindImage:
		return d.mustPath("ParametricPoint").ParametricPoint(t, d.kind == KindPolygon)
	case KindText, KindMultilineText:
		return Vector2{}, fmt.Errorf("%w: %s", ErrNoPathLength, d.kind)
	default:
		panic(invariant("ParametricPoint", d.kind, "unknown kind"))
	}
}

// SegmentPoint returns the point at local fraction t of one segment.
//
// On a path leaf, segment indexes the path's segments (a polygon's closing
// edge is the last one) and t may extrapolate beyond [0, 1]. On a composite,
// segment selects a child and t is that child's ParametricPoint parameter.
func (d *Diagram) SegmentPoint(t float64, segment int) (Vector2, error) {
	switch d.kind {
	case KindComposite:
		if segment < 0 || segment >= len(d.children) {
			return Vector2{}, fmt.Errorf("%w: child %d of %d", ErrSegmentOutOfRange, segment, len(d.children))
		}
		return d.children[segment].ParametricPoint(t)
	case KindPolygon, KindCurve, KindImage:
		return d.mustPath("SegmentPoint").SegmentPoint(t, d.kind == KindPolygon, segment)
	case KindText, KindMultilineText:
		return Vector2{}, fmt.Errorf("%w: %s", ErrNoPathLength, d.kind)
	default:
		panic(invariant("SegmentPoint", d.kind, "unknown kind"))
	}
}

// Walk calls fn for d and each descendant in pre-order. If fn returns
// false the node's children are skipped. Walk never modifies the tree.
func (d *Diagram) Walk(fn func(n *Diagram) bool) {
	if !fn(d) {
		return
	}
	for _, c := range d.children {
		c.Walk(fn)
	}
}
