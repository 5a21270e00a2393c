package diagram

import "math"

// DefaultCircleSegments is the number of polygon vertices used by Circle.
const DefaultCircleSegments = 50

// Line returns a two-point curve from start to end.
func Line(start, end Vector2) *Diagram {
	return Curve(start, end)
}

// Rectangle returns a width x height polygon centred on (0, 0), with
// vertices counter-clockwise from the bottom-left corner.
func Rectangle(width, height float64) *Diagram {
	w, h := width/2, height/2
	return Polygon(V2(-w, -h), V2(w, -h), V2(w, h), V2(-w, h))
}

// Square returns a side x side polygon centred on (0, 0).
func Square(side float64) *Diagram {
	return Rectangle(side, side)
}

// RegularPolygon returns an n-sided polygon with circumradius radius
// centred on (0, 0). The first vertex points straight up.
func RegularPolygon(n int, radius float64) *Diagram {
	points := make([]Vector2, n)
	step := 2 * math.Pi / float64(n)
	for i := range points {
		points[i] = V2(0, radius).Rotate(step * float64(i))
	}
	return Polygon(points...)
}

// Circle returns a circle approximated by a DefaultCircleSegments-gon.
func Circle(radius float64) *Diagram {
	return CircleSegments(radius, DefaultCircleSegments)
}

// CircleSegments returns a circle approximated by an n-gon whose first
// vertex lies on the positive x axis.
func CircleSegments(radius float64, n int) *Diagram {
	points := make([]Vector2, n)
	step := 2 * math.Pi / float64(n)
	for i := range points {
		points[i] = V2(radius, 0).Rotate(step * float64(i))
	}
	return Polygon(points...)
}

// Arc returns an open curve along the circle of the given radius around
// (0, 0), from angle 0 counter-clockwise to angle (radians).
func Arc(radius, angle float64) *Diagram {
	n := max(int(math.Ceil(math.Abs(angle)/(2*math.Pi)*DefaultCircleSegments)), 1)
	points := make([]Vector2, n+1)
	for i := range points {
		points[i] = V2(radius, 0).Rotate(angle * float64(i) / float64(n))
	}
	return Curve(points...)
}
