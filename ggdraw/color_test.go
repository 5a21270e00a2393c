package ggdraw

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in    string
		want  gg.RGBA
		paint bool
	}{
		{"red", gg.RGBA{R: 1, A: 1}, true},
		{"  Blue ", gg.RGBA{B: 1, A: 1}, true},
		{"#00ff00", gg.RGBA{G: 1, A: 1}, true},
		{"#fff", gg.RGBA{R: 1, G: 1, B: 1, A: 1}, true},
		{"#000000ff", gg.RGBA{A: 1}, true},
		{"none", gg.RGBA{}, false},
		{"", gg.RGBA{}, false},
		{"transparent", gg.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, paint, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if paint != tt.paint || got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, %v; want %+v, %v", tt.in, got, paint, tt.want, tt.paint)
			}
		})
	}
}

func TestParseColorRejects(t *testing.T) {
	for _, in := range []string{"#ab", "#ggg", "#12345", "notacolor", "#+12"} {
		if _, _, err := ParseColor(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrUnknownColor", in, err)
		}
	}
}
