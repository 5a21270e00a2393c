package diagram

import "fmt"

// Alignment selects the reference line used by AlignVertical and
// AlignHorizontal.
type Alignment uint8

// Alignment values. AlignVertical accepts AlignCenter, AlignLeft and
// AlignRight; AlignHorizontal accepts AlignCenter, AlignTop and AlignBottom.
const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
	AlignTop
	AlignBottom
)

var alignmentNames = [...]string{
	AlignCenter: "center",
	AlignLeft:   "left",
	AlignRight:  "right",
	AlignTop:    "top",
	AlignBottom: "bottom",
}

// ParseAlignment converts "center", "left", "right", "top" or "bottom".
func ParseAlignment(s string) (Alignment, error) {
	for i, name := range alignmentNames {
		if name == s {
			return Alignment(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
}

func (a Alignment) String() string {
	if int(a) >= len(alignmentNames) {
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
	return alignmentNames[a]
}

// AlignVertical lines diagrams up in a column: each is moved horizontally
// so that its left edge, center or right edge matches the first diagram's.
// The result is their combination.
func AlignVertical(ds []*Diagram, align Alignment) (*Diagram, error) {
	var anchor Anchor
	switch align {
	case AlignCenter:
		anchor = CenterCenter
	case AlignLeft:
		anchor = CenterLeft
	case AlignRight:
		anchor = CenterRight
	default:
		return nil, fmt.Errorf("%w: %s for vertical alignment", ErrUnknownAlignment, align)
	}
	if len(ds) == 0 {
		return Empty(), nil
	}
	x := ds[0].GetAnchor(anchor).X
	aligned := make([]*Diagram, len(ds))
	for i, d := range ds {
		aligned[i] = d.Translate(V2(x-d.GetAnchor(anchor).X, 0))
	}
	return Combine(aligned...), nil
}

// AlignHorizontal lines diagrams up in a row: each is moved vertically so
// that its top edge, center or bottom edge matches the first diagram's.
func AlignHorizontal(ds []*Diagram, align Alignment) (*Diagram, error) {
	var anchor Anchor
	switch align {
	case AlignCenter:
		anchor = CenterCenter
	case AlignTop:
		anchor = TopCenter
	case AlignBottom:
		anchor = BottomCenter
	default:
		return nil, fmt.Errorf("%w: %s for horizontal alignment", ErrUnknownAlignment, align)
	}
	if len(ds) == 0 {
		return Empty(), nil
	}
	y := ds[0].GetAnchor(anchor).Y
	aligned := make([]*Diagram, len(ds))
	for i, d := range ds {
		aligned[i] = d.Translate(V2(0, y-d.GetAnchor(anchor).Y))
	}
	return Combine(aligned...), nil
}

// DistributeHorizontal places diagrams left to right, each one space units
// after the right edge of the previous one. The first stays in place.
func DistributeHorizontal(ds []*Diagram, space float64) *Diagram {
	if len(ds) == 0 {
		return Empty()
	}
	placed := make([]*Diagram, len(ds))
	placed[0] = ds[0]
	for i := 1; i < len(ds); i++ {
		right := placed[i-1].GetAnchor(CenterRight).X
		left := ds[i].GetAnchor(CenterLeft).X
		placed[i] = ds[i].Translate(V2(right-left+space, 0))
	}
	return Combine(placed...)
}

// DistributeVertical places diagrams top to bottom, each one space units
// below the bottom edge of the previous one. The first stays in place.
func DistributeVertical(ds []*Diagram, space float64) *Diagram {
	if len(ds) == 0 {
		return Empty()
	}
	placed := make([]*Diagram, len(ds))
	placed[0] = ds[0]
	for i := 1; i < len(ds); i++ {
		bottom := placed[i-1].GetAnchor(BottomCenter).Y
		top := ds[i].GetAnchor(TopCenter).Y
		placed[i] = ds[i].Translate(V2(0, bottom-top-space))
	}
	return Combine(placed...)
}

// DistributeHorizontalAndAlign distributes diagrams in a row and then
// aligns them with AlignHorizontal.
func DistributeHorizontalAndAlign(ds []*Diagram, space float64, align Alignment) (*Diagram, error) {
	return AlignHorizontal(DistributeHorizontal(ds, space).children, align)
}

// DistributeVerticalAndAlign distributes diagrams in a column and then
// aligns them with AlignVertical.
func DistributeVerticalAndAlign(ds []*Diagram, space float64, align Alignment) (*Diagram, error) {
	return AlignVertical(DistributeVertical(ds, space).children, align)
}
