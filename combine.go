package diagram

// Combine groups diagrams into one composite, in order.
//
// Each input is cloned unless it is mutable, in which case the composite
// holds the caller's node itself. The result is mutable only if every input
// is mutable, and its origin is the first input's origin, so that a later
// Position call moves the group by its first member. With no inputs
// Combine returns Empty().
func Combine(ds ...*Diagram) *Diagram {
	if len(ds) == 0 {
		return Empty()
	}
	mutable := true
	children := make([]*Diagram, len(ds))
	for i, d := range ds {
		children[i] = d.copyIfNotMutable()
		mutable = mutable && d.mutable
	}
	Logger().Debug("diagram: combine", "children", len(children), "mutable", mutable)
	return &Diagram{
		kind:     KindComposite,
		origin:   ds[0].origin,
		children: children,
		mutable:  mutable,
	}
}

// Combine groups d with ds; see the package-level Combine.
func (d *Diagram) Combine(ds ...*Diagram) *Diagram {
	return Combine(append([]*Diagram{d}, ds...)...)
}

// Flatten replaces the children of a composite with all of its
// non-composite descendants, in pre-order. Nested composite wrappers are
// dropped; leaves are kept unchanged. Leaves are returned as they are.
func (d *Diagram) Flatten() *Diagram {
	return d.update(func(n *Diagram, _ bool) {
		if n.kind != KindComposite {
			return
		}
		n.children = appendLeaves(make([]*Diagram, 0, len(n.children)), n.children)
		Logger().Debug("diagram: flatten", "leaves", len(n.children))
	})
}

func appendLeaves(dst, children []*Diagram) []*Diagram {
	for _, c := range children {
		if c.kind == KindComposite {
			dst = appendLeaves(dst, c.children)
			continue
		}
		dst = append(dst, c)
	}
	return dst
}

// Apply returns fn applied to (a copy-on-write clone of) d.
func (d *Diagram) Apply(fn func(*Diagram) *Diagram) *Diagram {
	return fn(d.copyIfNotMutable())
}

// ApplyRecursive applies fn to d and then to every descendant, pre-order.
// Children are taken from the result of fn, so a function that replaces
// children sees its own replacements on the way down.
func (d *Diagram) ApplyRecursive(fn func(*Diagram) *Diagram) *Diagram {
	in := d.copyIfNotMutable()
	out := fn(in)
	if len(out.children) == 0 {
		return out
	}
	if out != in {
		out = out.copyIfNotMutable()
	}
	for i, c := range out.children {
		out.children[i] = c.ApplyRecursive(fn)
	}
	return out
}

// ApplyToTaggedRecursive is ApplyRecursive where fn only runs on nodes that
// carry all of tags. Untagged nodes are still descended into.
func (d *Diagram) ApplyToTaggedRecursive(tags []string, fn func(*Diagram) *Diagram) *Diagram {
	return d.ApplyRecursive(func(n *Diagram) *Diagram {
		if n.ContainsAllTags(tags...) {
			return fn(n)
		}
		return n
	})
}
