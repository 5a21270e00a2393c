package diagram

import "math"

// Vector2 is a 2D point or displacement. It is a value type: every
// operation returns a new value and none mutate the receiver.
//
// Diagrams use a y-up convention, so "top" means larger Y.
type Vector2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vector2.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// MulElem returns the componentwise product of two vectors.
func (v Vector2) MulElem(w Vector2) Vector2 {
	return Vector2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Neg returns the negated vector.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z component of the 3D cross product).
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the Euclidean length of the vector.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSq returns the squared length of the vector.
func (v Vector2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and yields NaN components; callers
// must guard against it.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Rotate returns the vector rotated by angle radians counter-clockwise.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Rotate90 returns the vector rotated by 90 degrees counter-clockwise.
func (v Vector2) Rotate90() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Angle returns atan2(y, x) in radians, in the range [-Pi, Pi].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// ReflectOverPoint returns the point mirrored through p.
func (v Vector2) ReflectOverPoint(p Vector2) Vector2 {
	return p.Scale(2).Sub(v)
}

// ReflectOverLine returns the point mirrored across the infinite line
// through p1 and p2. The line's direction rotated by 90 degrees is the normal.
func (v Vector2) ReflectOverLine(p1, p2 Vector2) Vector2 {
	n := p2.Sub(p1).Rotate90().Normalize()
	d := v.Sub(p1)
	return v.Sub(n.Scale(2 * d.Dot(n)))
}

// Lerp performs linear interpolation. t=0 returns v, t=1 returns w;
// values outside [0, 1] extrapolate.
func (v Vector2) Lerp(w Vector2, t float64) Vector2 {
	return Vector2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// Distance returns the distance between two points.
func (v Vector2) Distance(w Vector2) float64 {
	return v.Sub(w).Length()
}

// Approx returns true if the vectors are approximately equal within epsilon.
func (v Vector2) Approx(w Vector2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}
