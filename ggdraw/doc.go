// Package ggdraw rasterizes diagrams with github.com/gogpu/gg.
//
// Diagrams live in a y-up coordinate space with arbitrary units. A Frame
// fits a bounding box into a pixel canvas and flips the y axis; Draw paints
// every leaf of a diagram onto a gg.Context through that frame, and Render
// does both on a fresh context.
//
// Quick start:
//
//	d := diagram.Circle(1).Fill("lightblue").Combine(diagram.Text("hi"))
//	dc, err := ggdraw.Render(d, ggdraw.WithSize(400, 300))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dc.Close()
//	_ = dc.SavePNG("out.png")
//
// Style values are resolved as follows. Shapes default to a black 1 px
// stroke and no fill. Stroke widths and dash lengths are pixels unless the
// node's vector-effect is set to something other than "non-scaling-stroke".
// Font sizes are pixels, or diagram units when font-scale is "native".
// Text defaults to anchor "middle" and a baseline offset of 0.25em so that
// it is roughly centred on its origin.
//
// Nodes that cannot be painted (unknown colors, unreadable images) are
// skipped with a warning on diagram.Logger().
package ggdraw
