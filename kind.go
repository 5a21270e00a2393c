package diagram

// Kind discriminates the node variants of a Diagram. The set is closed;
// every switch over Kind in this package panics with an InvariantError on
// values outside it.
type Kind uint8

const (
	// KindComposite is a group node owning child diagrams. It is the zero
	// value, so a zero Diagram is an empty group.
	KindComposite Kind = iota
	// KindPolygon is a closed path.
	KindPolygon
	// KindCurve is an open path.
	KindCurve
	// KindText is a single styled string placed at the origin.
	KindText
	// KindImage is a raster image spanning the box of its path.
	KindImage
	// KindMultilineText is a sequence of styled spans placed at the origin.
	KindMultilineText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindComposite:
		return "diagram"
	case KindPolygon:
		return "polygon"
	case KindCurve:
		return "curve"
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindMultilineText:
		return "multilinetext"
	default:
		return "unknown"
	}
}

// HasPath reports whether diagrams of this kind carry a Path.
func (k Kind) HasPath() bool {
	return k == KindPolygon || k == KindCurve || k == KindImage
}

// IsText reports whether diagrams of this kind carry text data.
func (k Kind) IsText() bool {
	return k == KindText || k == KindMultilineText
}

// kindSet is a small bit set of kinds used by attribute setters to skip
// node types an attribute does not apply to.
type kindSet uint8

func kinds(ks ...Kind) kindSet {
	var s kindSet
	for _, k := range ks {
		s |= 1 << k
	}
	return s
}

func (s kindSet) has(k Kind) bool {
	return s&(1<<k) != 0
}
