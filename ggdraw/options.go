package ggdraw

import (
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Option configures Render and Draw.
//
// Example:
//
//	dc, err := ggdraw.Render(d,
//	    ggdraw.WithSize(1024, 768),
//	    ggdraw.WithBackground(gg.Hex("#f8f8f8")),
//	)
type Option func(*options)

type options struct {
	width, height int
	padding       float64
	background    gg.RGBA
	font          *text.FontSource
}

func defaultOptions() options {
	return options{
		width:      800,
		height:     600,
		padding:    20,
		background: gg.White,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSize sets the canvas size in pixels used by Render.
// The default is 800x600.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithPadding sets the margin in pixels between the diagram's bounding box
// and the canvas edge. The default is 20.
func WithPadding(padding float64) Option {
	return func(o *options) {
		o.padding = padding
	}
}

// WithBackground sets the color Render clears the canvas with.
// The default is white.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithFontSource sets the font used for text. The caller keeps ownership
// of src. By default text is set in Go Regular.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.font = src
	}
}

// defaultFont parses the embedded Go Regular font once per process.
var defaultFont = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})
