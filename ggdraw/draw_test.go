package ggdraw

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	diagram "github.com/gogpu/gg-diagram"
)

func pixel(dc *gg.Context, x, y int) gg.RGBA {
	return gg.FromColor(dc.Image().At(x, y))
}

func isWhite(c gg.RGBA) bool {
	return c.R > 0.9 && c.G > 0.9 && c.B > 0.9
}

func render(t *testing.T, d *diagram.Diagram, opts ...Option) *gg.Context {
	t.Helper()
	dc, err := Render(d, append([]Option{WithSize(60, 60), WithPadding(10)}, opts...)...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	t.Cleanup(func() { _ = dc.Close() })
	return dc
}

// captureWarnings routes the shared logger into a buffer for one test.
func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := diagram.Logger()
	t.Cleanup(func() { diagram.SetLogger(orig) })
	var buf bytes.Buffer
	diagram.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	return &buf
}

func TestRender_FilledSquare(t *testing.T) {
	dc := render(t, diagram.Square(2).Fill("red").Stroke("none"))
	if dc.Width() != 60 || dc.Height() != 60 {
		t.Fatalf("canvas = %dx%d, want 60x60", dc.Width(), dc.Height())
	}
	if c := pixel(dc, 30, 30); c.R < 0.9 || c.G > 0.1 || c.B > 0.1 {
		t.Errorf("centre pixel = %+v, want red", c)
	}
	if c := pixel(dc, 3, 3); !isWhite(c) {
		t.Errorf("padding pixel = %+v, want white background", c)
	}
}

func TestRender_Unpainted(t *testing.T) {
	tests := []struct {
		name string
		d    *diagram.Diagram
	}{
		{"no fill by default", diagram.Square(2)},
		{"zero opacity", diagram.Square(2).Fill("red").Opacity(0)},
		{"fill none", diagram.Square(2).Fill("none").Stroke("none")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := render(t, tt.d)
			if c := pixel(dc, 30, 30); !isWhite(c) {
				t.Errorf("centre pixel = %+v, want white", c)
			}
		})
	}
}

func TestRender_DefaultStroke(t *testing.T) {
	// The square spans pixels 10..50, so its left edge runs through x = 10.
	dc := render(t, diagram.Square(2).StrokeWidth(4))
	if c := pixel(dc, 10, 30); c.R > 0.5 || c.G > 0.5 || c.B > 0.5 {
		t.Errorf("edge pixel = %+v, want black", c)
	}
}

func TestRender_Background(t *testing.T) {
	dc := render(t, diagram.Empty(), WithBackground(gg.RGBA{B: 1, A: 1}))
	if c := pixel(dc, 0, 0); c.B < 0.9 || c.R > 0.1 {
		t.Errorf("background = %+v, want blue", c)
	}
}

func TestRender_InvalidSize(t *testing.T) {
	if _, err := Render(diagram.Square(1), WithSize(0, 10)); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Render() error = %v, want ErrInvalidSize", err)
	}
}

func TestRender_UnknownColorIsSkipped(t *testing.T) {
	buf := captureWarnings(t)
	dc := render(t, diagram.Square(2).Fill("blurple").Stroke("none"))
	if c := pixel(dc, 30, 30); !isWhite(c) {
		t.Errorf("centre pixel = %+v, want white", c)
	}
	if !strings.Contains(buf.String(), "blurple") {
		t.Errorf("warning not logged: %q", buf.String())
	}
}

func TestRender_Image(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := range 4 {
		for x := range 4 {
			src.Set(x, y, color.NRGBA{B: 255, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "blue.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	dc := render(t, diagram.Image(path, 2, 2))
	if c := pixel(dc, 30, 30); c.B < 0.9 || c.R > 0.1 {
		t.Errorf("centre pixel = %+v, want blue", c)
	}
}

func TestRender_MissingImageIsSkipped(t *testing.T) {
	buf := captureWarnings(t)
	missing := filepath.Join(t.TempDir(), "missing.png")
	dc := render(t, diagram.Image(missing, 2, 2))
	if c := pixel(dc, 30, 30); !isWhite(c) {
		t.Errorf("centre pixel = %+v, want white", c)
	}
	if !strings.Contains(buf.String(), "skipping image") {
		t.Errorf("warning not logged: %q", buf.String())
	}
}

func TestRender_Text(t *testing.T) {
	d := diagram.Text("MMMM").FontSize(24)
	dc := render(t, d, WithSize(120, 60))

	bounds := dc.Image().Bounds()
	inked := false
	for y := bounds.Min.Y; y < bounds.Max.Y && !inked; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if c := pixel(dc, x, y); c.R < 0.5 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("text left no dark pixels")
	}
}

func TestRender_MultilineText(t *testing.T) {
	d := diagram.MultilineText(
		diagram.TextSpan{Text: "top"},
		diagram.TextSpan{Text: "\n"},
		diagram.TextSpan{Text: "red", Style: diagram.SpanStyle{Fill: diagram.Some("red")}},
	).MoveOriginText(diagram.TopLeft)
	if _, err := Render(d, WithSize(80, 80)); err != nil {
		t.Errorf("Render() error = %v", err)
	}
}

func TestDraw_OntoExistingContext(t *testing.T) {
	dc := gg.NewContext(40, 40)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)

	d := diagram.Combine(diagram.Square(1).Fill("lime").Stroke("none"))
	frame := NewFrame(diagram.Rect{Min: diagram.V2(-2, -2), Max: diagram.V2(2, 2)}, 40, 40, 0)
	if err := Draw(dc, d, frame); err != nil {
		t.Fatal(err)
	}
	if c := pixel(dc, 20, 20); c.G < 0.9 || c.R > 0.1 {
		t.Errorf("centre pixel = %+v, want lime", c)
	}
	if c := pixel(dc, 2, 2); !isWhite(c) {
		t.Errorf("corner pixel = %+v, want white", c)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0.25em", 5},
		{"-0.5em", -10},
		{"3px", 6},
		{"3", 6},
	}
	for _, tt := range tests {
		got, err := parseLength(tt.in, 20, 2)
		if err != nil || got != tt.want {
			t.Errorf("parseLength(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := parseLength("1.5xx", 20, 1); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("parseLength(1.5xx) error = %v", err)
	}
}
