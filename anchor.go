package diagram

import "fmt"

// Anchor names one of the nine reference points of a bounding box: the
// product of {top, center, bottom} and {left, center, right}.
type Anchor uint8

// Anchors in row-major order, top row first.
const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	CenterLeft
	CenterCenter
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = [...]string{
	TopLeft:      "top-left",
	TopCenter:    "top-center",
	TopRight:     "top-right",
	CenterLeft:   "center-left",
	CenterCenter: "center-center",
	CenterRight:  "center-right",
	BottomLeft:   "bottom-left",
	BottomCenter: "bottom-center",
	BottomRight:  "bottom-right",
}

// ParseAnchor converts names such as "top-left" or "center-center" into an
// Anchor.
func ParseAnchor(s string) (Anchor, error) {
	for i, name := range anchorNames {
		if name == s {
			return Anchor(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAnchor, s)
}

// Valid reports whether a is one of the nine defined anchors.
func (a Anchor) Valid() bool {
	return int(a) < len(anchorNames)
}

// String returns the hyphenated anchor name.
func (a Anchor) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
	return anchorNames[a]
}

// vertical returns 0 for top, 1 for center and 2 for bottom.
func (a Anchor) vertical() int {
	a.mustBeValid()
	return int(a) / 3
}

// horizontal returns 0 for left, 1 for center and 2 for right.
func (a Anchor) horizontal() int {
	a.mustBeValid()
	return int(a) % 3
}

func (a Anchor) mustBeValid() {
	if !a.Valid() {
		panic(fmt.Errorf("%w: %s", ErrUnknownAnchor, a))
	}
}
