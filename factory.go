package diagram

import (
	"fmt"
	"slices"

	"golang.org/x/text/unicode/norm"
)

// NewLeaf builds a path-carrying leaf of the given kind. It is the
// construction contract shape libraries build on; kind must be KindPolygon,
// KindCurve or KindImage and path must be non-nil. The leaf takes a private
// copy of path.
func NewLeaf(kind Kind, path *Path, tags ...string) (*Diagram, error) {
	if !kind.HasPath() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, kind)
	}
	if path == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPath, kind)
	}
	return newPathLeaf(kind, path.Copy()).AppendTags(tags...), nil
}

func newPathLeaf(kind Kind, path *Path) *Diagram {
	return &Diagram{kind: kind, path: path}
}

// Empty returns an empty composite with its origin at (0, 0).
func Empty() *Diagram {
	return &Diagram{}
}

// Polygon returns a closed path through points. The origin is (0, 0).
func Polygon(points ...Vector2) *Diagram {
	return newPathLeaf(KindPolygon, NewPath(points...))
}

// Curve returns an open path through points. The origin is (0, 0).
func Curve(points ...Vector2) *Diagram {
	return newPathLeaf(KindCurve, NewPath(points...))
}

// Text returns a text leaf at (0, 0). The string is stored in Unicode
// normalization form C.
func Text(s string) *Diagram {
	return &Diagram{
		kind:     KindText,
		textdata: TextData{Text: norm.NFC.String(s)},
	}
}

// MultilineText returns a multiline text leaf at (0, 0) with a scale
// factor of 1. Span texts are stored in Unicode normalization form C.
func MultilineText(spans ...TextSpan) *Diagram {
	content := slices.Clone(spans)
	for i := range content {
		content[i].Text = norm.NFC.String(content[i].Text)
	}
	return &Diagram{
		kind:      KindMultilineText,
		multiline: MultilineData{Spans: content, ScaleFactor: 1},
	}
}

// Image returns an image leaf of the given size centred on (0, 0). Its
// path holds the four corners, counter-clockwise from the bottom-left, so
// transforms move the image like any other shape.
func Image(src string, width, height float64) *Diagram {
	w, h := width/2, height/2
	d := newPathLeaf(KindImage, NewPath(V2(-w, -h), V2(w, -h), V2(w, h), V2(-w, h)))
	d.imgdata = ImageData{Src: src}
	return d
}
