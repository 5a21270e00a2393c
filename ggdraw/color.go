package ggdraw

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a style color. It accepts "#rgb", "#rgba",
// "#rrggbb", "#rrggbbaa" and the SVG color names, case-insensitively.
// The second result is false for "", "none" and "transparent", which
// mean the attribute is not painted.
func ParseColor(s string) (gg.RGBA, bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "transparent":
		return gg.RGBA{}, false, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if !isHexColor(hex) {
			return gg.RGBA{}, false, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return gg.Hex(hex), true, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return gg.FromColor(c), true, nil
	}
	return gg.RGBA{}, false, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// isHexColor reports whether s has one of the lengths gg.Hex understands
// and only hex digits. gg.Hex itself maps malformed input to black.
func isHexColor(s string) bool {
	switch len(s) {
	case 3, 4, 6, 8:
		_, err := strconv.ParseUint(s, 16, 32)
		return err == nil
	default:
		return false
	}
}
