// Package diagram provides an immutable 2D scene graph for building
// diagrams.
//
// # Overview
//
// A Diagram is a tree: leaves carry geometry (polygons, curves, images) or
// text, and composite nodes group children. Shapes are built with factory
// functions, arranged with a fluent transformation API and finally handed
// to a renderer such as the ggdraw sub-package.
//
// # Quick Start
//
//	import "github.com/gogpu/gg-diagram"
//
//	sq := diagram.Square(2).Fill("lightblue")
//	label := diagram.Text("A").Position(sq.GetAnchor(diagram.TopCenter))
//	d := diagram.Combine(sq, label).Translate(diagram.V2(5, 5))
//
// # Immutability
//
// Methods never alter their receiver: they deep-copy the tree, apply the
// change and return the copy. For hot loops, Mut switches a tree to
// in-place editing and Immut returns to the persistent discipline.
// Combine keeps mutable inputs by reference, so the group and the caller
// share them.
//
// # Coordinate System
//
// Diagrams use mathematical coordinates:
//   - X increases right
//   - Y increases up, so the "top" anchors have the largest y
//   - Angles in radians, counter-clockwise
//
// Renderers that draw into y-down pixel space flip the axis themselves.
//
// # Concurrency
//
// Immutable diagrams may be shared between goroutines. A mutable tree must
// be confined to one goroutine at a time.
//
// # Recursion
//
// Transforms, queries and combinators recurse to the depth of the tree.
// Flatten collapses deep nesting into a single level of leaves.
package diagram
