// Command diagramdemo renders a diagram scene to PNG.
//
// Without -scene it draws a built-in sample; with -scene it reads a TOML
// file of [[shape]] entries (see testdata/demo.toml).
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	diagram "github.com/gogpu/gg-diagram"
	"github.com/gogpu/gg-diagram/ggdraw"
)

func main() {
	var (
		scene   = flag.String("scene", "", "TOML scene file (default: built-in sample)")
		output  = flag.String("output", "diagram.png", "output file")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		padding = flag.Float64("padding", 20, "margin around the diagram in pixels")
		debug   = flag.Bool("debug", false, "overlay bounding boxes and point indices")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	diagram.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var (
		d   *diagram.Diagram
		err error
	)
	if *scene != "" {
		d, err = loadScene(*scene)
	} else {
		d, err = sampleScene()
	}
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}
	if *debug {
		d = debugOverlay(d)
	}

	dc, err := ggdraw.Render(d,
		ggdraw.WithSize(*width, *height),
		ggdraw.WithPadding(*padding),
	)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	defer func() { _ = dc.Close() }()

	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Diagram saved to %s (%dx%d)\n", *output, *width, *height)
}

func leafBBox(b *diagram.Diagram) *diagram.Diagram {
	return b.Fill("none").Stroke("orange").StrokeDashArray(3, 3)
}

// debugOverlay adds a bounding box overlay for every leaf and the whole
// scene.
func debugOverlay(d *diagram.Diagram) *diagram.Diagram {
	parts := []*diagram.Diagram{d.DebugBBox()}
	d.Walk(func(n *diagram.Diagram) bool {
		switch n.Kind() {
		case diagram.KindComposite:
			return true
		case diagram.KindPolygon, diagram.KindCurve:
			// Debug returns the node itself first; keep only the overlay.
			parts = append(parts, n.Debug(diagram.WithBBoxStyle(leafBBox)).Children()[1:]...)
		default:
			parts = append(parts, n.DebugBBox())
		}
		return false
	})
	return d.Combine(parts...)
}
