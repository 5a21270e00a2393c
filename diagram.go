package diagram

import "slices"

// Diagram is a node of an immutable scene graph. A node is either a leaf
// carrying geometry (polygon, curve, image), text, or a composite owning
// child diagrams. Every node has an origin, a style and a set of tags.
//
// Diagrams are persistent by default: every method that changes a diagram
// deep-copies it first and returns the copy, so earlier references are
// never observably altered. Mut switches a tree to in-place editing; the
// returned pointer is then the receiver itself. In-place editing is not
// safe for concurrent use.
//
// The zero Diagram is an empty composite with its origin at (0, 0).
type Diagram struct {
	kind      Kind
	origin    Vector2
	style     Style
	textdata  TextData
	imgdata   ImageData
	multiline MultilineData
	path      *Path
	children  []*Diagram
	tags      []string
	mutable   bool
}

// Kind returns the node variant.
func (d *Diagram) Kind() Kind {
	return d.kind
}

// Origin returns the reference point used by Position and as the default
// pivot of Rotate, Scale, Skew and Reflect.
func (d *Diagram) Origin() Vector2 {
	return d.origin
}

// Style returns a copy of the node's own paint attributes.
func (d *Diagram) Style() Style {
	return d.style.clone()
}

// Path returns the node's path. It panics if the kind carries no path
// (see Kind.HasPath).
func (d *Diagram) Path() *Path {
	if !d.kind.HasPath() {
		panic(&KindError{Method: "Diagram.Path", Kind: d.kind})
	}
	return d.mustPath("Path")
}

// TextData returns the text attributes. It panics unless the node is a
// text or multiline text leaf.
func (d *Diagram) TextData() TextData {
	if !d.kind.IsText() {
		panic(&KindError{Method: "Diagram.TextData", Kind: d.kind})
	}
	return d.textdata
}

// ImageData returns the image reference. It panics unless the node is an image.
func (d *Diagram) ImageData() ImageData {
	if d.kind != KindImage {
		panic(&KindError{Method: "Diagram.ImageData", Kind: d.kind})
	}
	return d.imgdata
}

// MultilineData returns the span content. It panics unless the node is a
// multiline text leaf.
func (d *Diagram) MultilineData() MultilineData {
	if d.kind != KindMultilineText {
		panic(&KindError{Method: "Diagram.MultilineData", Kind: d.kind})
	}
	return d.multiline.clone()
}

// Children returns a copy of the child list. Leaves have no children.
func (d *Diagram) Children() []*Diagram {
	return slices.Clone(d.children)
}

// NumChildren returns the number of direct children.
func (d *Diagram) NumChildren() int {
	return len(d.children)
}

// Child returns the i-th child. It panics if i is out of range.
func (d *Diagram) Child(i int) *Diagram {
	return d.children[i]
}

// Tags returns a copy of the node's tags in insertion order.
func (d *Diagram) Tags() []string {
	return slices.Clone(d.tags)
}

// IsMutable reports whether the node is edited in place.
func (d *Diagram) IsMutable() bool {
	return d.mutable
}

func (d *Diagram) mustPath(op string) *Path {
	if d.path == nil {
		panic(invariant(op, d.kind, "leaf has no path"))
	}
	return d.path
}

// Copy returns a deep clone of the diagram, including its path and every
// descendant. Mutability flags are preserved.
func (d *Diagram) Copy() *Diagram {
	out := &Diagram{
		kind:      d.kind,
		origin:    d.origin,
		style:     d.style.clone(),
		textdata:  d.textdata,
		imgdata:   d.imgdata,
		multiline: d.multiline.clone(),
		tags:      slices.Clone(d.tags),
		mutable:   d.mutable,
	}
	if d.path != nil {
		out.path = d.path.Copy()
		out.path.mutable = d.path.mutable
	}
	if len(d.children) > 0 {
		out.children = make([]*Diagram, len(d.children))
		for i, c := range d.children {
			out.children[i] = c.Copy()
		}
	}
	return out
}

// copyIfNotMutable returns d itself when it is mutable, otherwise a deep copy.
func (d *Diagram) copyIfNotMutable() *Diagram {
	if d.mutable {
		return d
	}
	return d.Copy()
}

// editable is copyIfNotMutable for recursive rewrites. Once a node has
// been deep-copied its whole subtree is private to the rewrite, so owned is
// passed down and no descendant is copied a second time.
func (d *Diagram) editable(owned bool) (*Diagram, bool) {
	if owned || d.mutable {
		return d, owned
	}
	return d.Copy(), true
}

// rewrite applies edit to every node of the tree, pre-order, honouring the
// copy-on-write discipline at each level. edit receives owned so it can
// edit the node's path through Path.editable.
func (d *Diagram) rewrite(edit func(n *Diagram, owned bool)) *Diagram {
	return d.rewriteOwned(false, edit)
}

func (d *Diagram) rewriteOwned(owned bool, edit func(n *Diagram, owned bool)) *Diagram {
	out, owned := d.editable(owned)
	edit(out, owned)
	for i, c := range out.children {
		out.children[i] = c.rewriteOwned(owned, edit)
	}
	return out
}

// update applies edit to this node only.
func (d *Diagram) update(edit func(n *Diagram, owned bool)) *Diagram {
	out, owned := d.editable(false)
	edit(out, owned)
	return out
}

// Mut marks the diagram, its path and all descendants as mutable, in
// place, and returns the receiver. Subsequent modifying calls edit the tree
// in place instead of copying it.
func (d *Diagram) Mut() *Diagram {
	d.mutable = true
	if d.path != nil {
		d.path.mutable = true
	}
	for _, c := range d.children {
		c.Mut()
	}
	return d
}

// MutParentOnly marks only this node and its path as mutable. Children
// keep copying themselves when changed.
func (d *Diagram) MutParentOnly() *Diagram {
	d.mutable = true
	if d.path != nil {
		d.path.mutable = true
	}
	return d
}

// Immut returns a deep copy in which every node and path is immutable.
func (d *Diagram) Immut() *Diagram {
	out := d.Copy()
	out.clearMutable()
	return out
}

func (d *Diagram) clearMutable() {
	d.mutable = false
	if d.path != nil {
		d.path.mutable = false
	}
	for _, c := range d.children {
		c.clearMutable()
	}
}

// AppendTags adds tags that are not yet present, keeping insertion order.
func (d *Diagram) AppendTags(tags ...string) *Diagram {
	return d.update(func(n *Diagram, _ bool) {
		for _, tag := range tags {
			if !slices.Contains(n.tags, tag) {
				n.tags = append(n.tags, tag)
			}
		}
	})
}

// RemoveTags removes every occurrence of the given tags.
func (d *Diagram) RemoveTags(tags ...string) *Diagram {
	return d.update(func(n *Diagram, _ bool) {
		n.tags = slices.DeleteFunc(n.tags, func(t string) bool {
			return slices.Contains(tags, t)
		})
	})
}

// ResetTags removes all tags.
func (d *Diagram) ResetTags() *Diagram {
	return d.update(func(n *Diagram, _ bool) {
		n.tags = nil
	})
}

// ContainsTag reports whether the node carries tag.
func (d *Diagram) ContainsTag(tag string) bool {
	return slices.Contains(d.tags, tag)
}

// ContainsAllTags reports whether the node carries every one of tags.
// It is true for an empty list.
func (d *Diagram) ContainsAllTags(tags ...string) bool {
	for _, tag := range tags {
		if !d.ContainsTag(tag) {
			return false
		}
	}
	return true
}

// Equal reports whether two trees are structurally identical: same kinds,
// origins, attributes, tags, points and children in the same order.
// Mutability flags are ignored.
func (d *Diagram) Equal(other *Diagram) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	if d.kind != other.kind || d.origin != other.origin ||
		d.textdata != other.textdata || d.imgdata != other.imgdata ||
		!slices.Equal(d.tags, other.tags) ||
		!styleEqual(d.style, other.style) ||
		!multilineEqual(d.multiline, other.multiline) {
		return false
	}
	if (d.path == nil) != (other.path == nil) {
		return false
	}
	if d.path != nil && !slices.Equal(d.path.points, other.path.points) {
		return false
	}
	return slices.EqualFunc(d.children, other.children, (*Diagram).Equal)
}

func styleEqual(a, b Style) bool {
	da, _ := a.StrokeDashArray.Get()
	db, _ := b.StrokeDashArray.Get()
	return a.Stroke == b.Stroke &&
		a.Fill == b.Fill &&
		a.Opacity == b.Opacity &&
		a.StrokeWidth == b.StrokeWidth &&
		a.StrokeLineCap == b.StrokeLineCap &&
		a.StrokeLineJoin == b.StrokeLineJoin &&
		a.VectorEffect == b.VectorEffect &&
		a.StrokeDashArray.IsSet() == b.StrokeDashArray.IsSet() &&
		slices.Equal(da, db)
}

func multilineEqual(a, b MultilineData) bool {
	return a.ScaleFactor == b.ScaleFactor && slices.Equal(a.Spans, b.Spans)
}
