package diagram

import "math"

// Rect is an axis-aligned bounding box given by its minimum and maximum
// corners.
type Rect struct {
	Min, Max Vector2
}

// PointRect returns the degenerate box containing only p.
func PointRect(p Vector2) Rect {
	return Rect{Min: p, Max: p}
}

// BoundsOf returns the smallest box containing every point.
// The second result is false when points is empty.
func BoundsOf(points []Vector2) (Rect, bool) {
	if len(points) == 0 {
		return Rect{}, false
	}
	r := PointRect(points[0])
	for _, p := range points[1:] {
		r = r.Extend(p)
	}
	return r, true
}

// Extend returns the smallest box containing r and p.
func (r Rect) Extend(p Vector2) Rect {
	return Rect{
		Min: Vector2{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Vector2{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both boxes.
func (r Rect) Union(other Rect) Rect {
	return r.Extend(other.Min).Extend(other.Max)
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the extent as a vector.
func (r Rect) Size() Vector2 { return r.Max.Sub(r.Min) }

// Center returns the midpoint of the box.
func (r Rect) Center() Vector2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// Diagonal returns the length of the box diagonal.
func (r Rect) Diagonal() float64 {
	return r.Size().Length()
}

// Contains reports whether p lies inside or on the box.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Anchor returns the named reference point of the box.
// "top" is the maximum y and "left" the minimum x.
func (r Rect) Anchor(a Anchor) Vector2 {
	var x, y float64
	switch a.horizontal() {
	case 0:
		x = r.Min.X
	case 1:
		x = (r.Min.X + r.Max.X) / 2
	default:
		x = r.Max.X
	}
	switch a.vertical() {
	case 0:
		y = r.Max.Y
	case 1:
		y = (r.Min.Y + r.Max.Y) / 2
	default:
		y = r.Min.Y
	}
	return Vector2{X: x, Y: y}
}
