package ggdraw

import "errors"

var (
	// ErrUnknownColor is returned by ParseColor for strings that are neither
	// hex colors nor SVG color names.
	ErrUnknownColor = errors.New("ggdraw: unknown color")

	// ErrInvalidSize is returned by Render for a non-positive canvas size.
	ErrInvalidSize = errors.New("ggdraw: invalid canvas size")

	// ErrInvalidLength is returned for malformed lengths such as a text dy
	// of "1.5xx".
	ErrInvalidLength = errors.New("ggdraw: invalid length")
)
