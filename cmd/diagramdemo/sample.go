package main

import (
	"math"

	diagram "github.com/gogpu/gg-diagram"
)

// sampleScene builds a row of labelled shapes with a title.
func sampleScene() (*diagram.Diagram, error) {
	shapes := []*diagram.Diagram{
		diagram.Circle(1).Fill("lightblue"),
		diagram.Square(2).Rotate(math.Pi / 8).Fill("gold"),
		diagram.RegularPolygon(6, 1).Fill("salmon").StrokeWidth(2),
		diagram.Arc(1, 3*math.Pi/2).Stroke("purple").StrokeDashArray(6, 3),
		diagram.Curve(diagram.V2(-1, -1), diagram.V2(-0.3, 1), diagram.V2(0.3, -1), diagram.V2(1, 1)).StrokeLineJoin(diagram.LineJoinRound).StrokeWidth(3),
	}
	names := []string{"circle", "square", "hexagon", "arc", "zigzag"}

	columns := make([]*diagram.Diagram, len(shapes))
	for i, s := range shapes {
		label := diagram.Text(names[i]).FontSize(14).MoveOriginText(diagram.TopCenter)
		label = label.Position(s.GetAnchor(diagram.BottomCenter).Sub(diagram.V2(0, 0.3)))
		columns[i] = s.Combine(label).AppendTags("column")
	}

	row, err := diagram.DistributeHorizontalAndAlign(columns, 0.8, diagram.AlignBottom)
	if err != nil {
		return nil, err
	}

	title := diagram.Text("gg-diagram").FontSize(24).TextFill("darkslategray")
	title = title.Position(row.GetAnchor(diagram.TopCenter).Add(diagram.V2(0, 1)))
	return row.Combine(title), nil
}
