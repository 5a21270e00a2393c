package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	diagram "github.com/gogpu/gg-diagram"
)

var errBadShape = errors.New("bad shape")

// sceneFile is the TOML layout of a scene:
//
//	[[shape]]
//	kind = "circle"
//	radius = 1
//	fill = "lightblue"
//
//	[layout]
//	direction = "horizontal"
//	space = 0.5
//	align = "bottom"
type sceneFile struct {
	Shapes []shapeEntry `toml:"shape"`
	Layout *layoutEntry `toml:"layout"`
}

type shapeEntry struct {
	Kind        string      `toml:"kind"`
	Points      [][]float64 `toml:"points"`
	Width       float64     `toml:"width"`
	Height      float64     `toml:"height"`
	Size        float64     `toml:"size"`
	Radius      float64     `toml:"radius"`
	Sides       int         `toml:"sides"`
	Text        string      `toml:"text"`
	Fill        string      `toml:"fill"`
	Stroke      string      `toml:"stroke"`
	StrokeWidth float64     `toml:"stroke_width"`
	Dash        []float64   `toml:"dash"`
	Opacity     *float64    `toml:"opacity"`
	FontSize    float64     `toml:"font_size"`
	Translate   []float64   `toml:"translate"`
	Rotate      float64     `toml:"rotate"` // degrees
	Scale       *float64    `toml:"scale"`
	Tags        []string    `toml:"tags"`
}

type layoutEntry struct {
	Direction string  `toml:"direction"`
	Space     float64 `toml:"space"`
	Align     string  `toml:"align"`
}

// loadScene decodes a scene file. Entries that cannot be built are logged
// and skipped; a malformed file or layout is an error.
func loadScene(path string) (*diagram.Diagram, error) {
	var scene sceneFile
	meta, err := toml.DecodeFile(path, &scene)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		diagram.Logger().Warn("diagramdemo: unknown scene key", "file", path, "key", key.String())
	}

	shapes := make([]*diagram.Diagram, 0, len(scene.Shapes))
	for i, s := range scene.Shapes {
		d, err := buildShape(s)
		if err != nil {
			diagram.Logger().Warn("diagramdemo: skipping shape", "file", path, "index", i, "err", err)
			continue
		}
		shapes = append(shapes, d)
	}

	d, err := arrange(shapes, scene.Layout)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func arrange(shapes []*diagram.Diagram, layout *layoutEntry) (*diagram.Diagram, error) {
	if layout == nil {
		return diagram.Combine(shapes...), nil
	}
	align := diagram.AlignCenter
	if layout.Align != "" {
		a, err := diagram.ParseAlignment(layout.Align)
		if err != nil {
			return nil, fmt.Errorf("[layout].align: %w", err)
		}
		align = a
	}
	switch strings.ToLower(layout.Direction) {
	case "", "horizontal":
		return diagram.DistributeHorizontalAndAlign(shapes, layout.Space, align)
	case "vertical":
		return diagram.DistributeVerticalAndAlign(shapes, layout.Space, align)
	default:
		return nil, fmt.Errorf("[layout].direction must be horizontal or vertical, got %q", layout.Direction)
	}
}

func buildShape(s shapeEntry) (*diagram.Diagram, error) {
	d, err := baseShape(s)
	if err != nil {
		return nil, err
	}

	if d.Kind() == diagram.KindText {
		if s.FontSize > 0 {
			d = d.FontSize(s.FontSize)
		}
		if s.Fill != "" {
			d = d.TextFill(s.Fill)
		}
		if s.Stroke != "" {
			d = d.TextStroke(s.Stroke)
		}
	} else {
		if s.Fill != "" {
			d = d.Fill(s.Fill)
		}
		if s.Stroke != "" {
			d = d.Stroke(s.Stroke)
		}
		if s.StrokeWidth > 0 {
			d = d.StrokeWidth(s.StrokeWidth)
		}
		if len(s.Dash) > 0 {
			d = d.StrokeDashArray(s.Dash...)
		}
	}
	if s.Opacity != nil {
		d = d.Opacity(*s.Opacity)
	}

	if s.Scale != nil {
		d = d.Scale(*s.Scale)
	}
	if s.Rotate != 0 {
		d = d.Rotate(s.Rotate * math.Pi / 180)
	}
	if len(s.Translate) > 0 {
		v, err := vec(s.Translate)
		if err != nil {
			return nil, fmt.Errorf("%w: translate: %w", errBadShape, err)
		}
		d = d.Translate(v)
	}
	return d.AppendTags(s.Tags...), nil
}

func baseShape(s shapeEntry) (*diagram.Diagram, error) {
	kind := strings.ToLower(s.Kind)
	switch kind {
	case "polygon", "curve", "line":
		points, err := vecs(s.Points)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "polygon":
			return diagram.Polygon(points...), nil
		case "line":
			if len(points) != 2 {
				return nil, fmt.Errorf("%w: line needs 2 points, got %d", errBadShape, len(points))
			}
			return diagram.Line(points[0], points[1]), nil
		default:
			return diagram.Curve(points...), nil
		}
	case "rectangle":
		return diagram.Rectangle(s.Width, s.Height), nil
	case "square":
		return diagram.Square(s.Size), nil
	case "circle":
		return diagram.Circle(s.Radius), nil
	case "regular-polygon":
		if s.Sides < 3 {
			return nil, fmt.Errorf("%w: regular-polygon needs at least 3 sides, got %d", errBadShape, s.Sides)
		}
		return diagram.RegularPolygon(s.Sides, s.Radius), nil
	case "text":
		return diagram.Text(s.Text), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errBadShape, s.Kind)
	}
}

func vec(xy []float64) (diagram.Vector2, error) {
	if len(xy) != 2 {
		return diagram.Vector2{}, fmt.Errorf("want [x, y], got %v", xy)
	}
	return diagram.V2(xy[0], xy[1]), nil
}

func vecs(points [][]float64) ([]diagram.Vector2, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no points", errBadShape)
	}
	out := make([]diagram.Vector2, len(points))
	for i, p := range points {
		v, err := vec(p)
		if err != nil {
			return nil, fmt.Errorf("%w: point %d: %w", errBadShape, i, err)
		}
		out[i] = v
	}
	return out, nil
}
