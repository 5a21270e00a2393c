package diagram

import (
	"fmt"
	"slices"
)

// Path is an ordered sequence of points forming an open or closed
// polyline. Whether the path is closed is decided by the diagram that owns
// it (polygons close, curves do not).
//
// A Path is immutable by default: Reverse, AddPoints and Transform return a
// modified copy. After Mut they edit the receiver in place instead.
type Path struct {
	points  []Vector2
	mutable bool
}

// NewPath creates an immutable path from a copy of points.
func NewPath(points ...Vector2) *Path {
	return &Path{points: slices.Clone(points)}
}

// Points returns a copy of the path's points.
func (p *Path) Points() []Vector2 {
	return slices.Clone(p.points)
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// At returns the i-th point. It panics if i is out of range.
func (p *Path) At(i int) Vector2 {
	return p.points[i]
}

// IsMutable reports whether the path is edited in place.
func (p *Path) IsMutable() bool {
	return p.mutable
}

// Mut marks the path as mutable and returns it.
func (p *Path) Mut() *Path {
	p.mutable = true
	return p
}

// Immut returns an immutable copy of the path.
func (p *Path) Immut() *Path {
	return p.Copy()
}

// Copy returns a deep, immutable clone of the path.
func (p *Path) Copy() *Path {
	return &Path{points: slices.Clone(p.points)}
}

// CopyIfNotMutable returns p itself when it is mutable, otherwise a copy.
// Every modifying operation goes through this gate.
func (p *Path) CopyIfNotMutable() *Path {
	if p.mutable {
		return p
	}
	return p.Copy()
}

// editable is CopyIfNotMutable for callers that may already hold a private
// copy of the owning tree.
func (p *Path) editable(owned bool) *Path {
	if owned {
		return p
	}
	return p.CopyIfNotMutable()
}

// Reverse returns the path with its point order reversed.
func (p *Path) Reverse() *Path {
	out := p.CopyIfNotMutable()
	slices.Reverse(out.points)
	return out
}

// AddPoints returns the path with points appended.
func (p *Path) AddPoints(points ...Vector2) *Path {
	out := p.CopyIfNotMutable()
	out.points = append(out.points, points...)
	return out
}

// Transform returns the path with f applied to every point.
func (p *Path) Transform(f func(Vector2) Vector2) *Path {
	out := p.CopyIfNotMutable()
	out.transform(f)
	return out
}

func (p *Path) transform(f func(Vector2) Vector2) {
	for i, pt := range p.points {
		p.points[i] = f(pt)
	}
}

// Length returns the sum of distances between consecutive points.
// Paths with fewer than two points have length 0.
func (p *Path) Length() float64 {
	var length float64
	for i := 1; i < len(p.points); i++ {
		length += p.points[i].Distance(p.points[i-1])
	}
	return length
}

// BoundingBox returns the box spanned by the points. The second result is
// false for an empty path.
func (p *Path) BoundingBox() (Rect, bool) {
	return BoundsOf(p.points)
}

// vertices returns the points of the path, with the first point repeated at
// the end when closed so the closing edge becomes an ordinary segment.
func (p *Path) vertices(closed bool) []Vector2 {
	if closed && len(p.points) > 0 {
		return append(slices.Clone(p.points), p.points[0])
	}
	return p.points
}

// ParametricPoint returns the point at arc-length fraction t of the path.
// A closed path includes the segment from the last point back to the first.
// t must lie in [0, 1].
func (p *Path) ParametricPoint(t float64, closed bool) (Vector2, error) {
	if t < 0 || t > 1 {
		return Vector2{}, fmt.Errorf("%w: got %g", ErrParameterOutOfRange, t)
	}
	pts := p.vertices(closed)
	switch len(pts) {
	case 0:
		return Vector2{}, ErrEmptyPath
	case 1:
		return pts[0], nil
	}

	cumulative := make([]float64, len(pts)-1)
	var total float64
	for i := 1; i < len(pts); i++ {
		total += pts[i].Distance(pts[i-1])
		cumulative[i-1] = total
	}
	if total == 0 {
		Logger().Debug("diagram: parametric point on zero-length path", "points", len(pts))
		return pts[0], nil
	}
	for i := range cumulative {
		cumulative[i] /= total
	}

	seg, local := locateSegment(cumulative, t)
	return pts[seg].Lerp(pts[seg+1], local), nil
}

// SegmentPoint returns the point at local fraction t along a single
// segment. t is not clamped, so values outside [0, 1] extrapolate along the
// segment's line.
func (p *Path) SegmentPoint(t float64, closed bool, segment int) (Vector2, error) {
	pts := p.vertices(closed)
	if segment < 0 || segment >= len(pts)-1 {
		return Vector2{}, fmt.Errorf("%w: %d of %d segments", ErrSegmentOutOfRange, segment, max(len(pts)-1, 0))
	}
	return pts[segment].Lerp(pts[segment+1], t), nil
}

// locateSegment finds the first segment whose cumulative fraction reaches t
// and returns it together with t remapped into that segment. A segment of
// zero length maps to its start.
func locateSegment(cumulative []float64, t float64) (int, float64) {
	seg := 0
	for i, c := range cumulative {
		if t <= c {
			seg = i
			break
		}
	}
	start := 0.0
	if seg > 0 {
		start = cumulative[seg-1]
	}
	end := cumulative[seg]
	if end == start {
		return seg, 0
	}
	return seg, (t - start) / (end - start)
}
