package diagram

import (
	"errors"
	"fmt"
)

// Sentinel errors for precondition violations. Operations wrap them with
// context, so compare with errors.Is.
var (
	// ErrParameterOutOfRange is returned when a parametric t lies outside [0, 1].
	ErrParameterOutOfRange = errors.New("diagram: parameter t must be between 0 and 1")

	// ErrSegmentOutOfRange is returned when a segment index does not name a
	// segment of the path (or a child of a composite).
	ErrSegmentOutOfRange = errors.New("diagram: segment index out of range")

	// ErrEmptyPath is returned when a point is requested from a path without points.
	ErrEmptyPath = errors.New("diagram: path has no points")

	// ErrZeroLength is returned when a composite has no path length to
	// distribute a parameter over.
	ErrZeroLength = errors.New("diagram: total path length is zero")

	// ErrEmptyDiagram is returned by path queries on a composite without children.
	ErrEmptyDiagram = errors.New("diagram: composite has no children")

	// ErrNoPathLength is returned by path queries on kinds without a path
	// length, such as text and images.
	ErrNoPathLength = errors.New("diagram: kind has no path length")

	// ErrUnknownAnchor is returned by ParseAnchor for names outside the
	// nine top/center/bottom x left/center/right combinations.
	ErrUnknownAnchor = errors.New("diagram: unknown anchor")

	// ErrUnknownAlignment is returned for alignment keywords that do not exist.
	ErrUnknownAlignment = errors.New("diagram: unknown alignment")

	// ErrInvalidKind is returned by NewLeaf when the kind does not carry a path.
	ErrInvalidKind = errors.New("diagram: kind cannot be built from a path")

	// ErrMissingPath is returned by NewLeaf when no path is given.
	ErrMissingPath = errors.New("diagram: leaf requires a path")
)

// InvariantError reports a malformed tree, such as a polygon without a
// path or a kind outside the closed set. It is raised with panic because
// it can only come from a programming error, never from caller data.
type InvariantError struct {
	Op   string
	Kind Kind
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("diagram: %s on %s: %s", e.Op, e.Kind, e.Msg)
}

// KindError is the panic value of accessors called on a diagram of the
// wrong kind, for example Path on a text leaf.
type KindError struct {
	Method string
	Kind   Kind
}

func (e *KindError) Error() string {
	return "diagram: call of " + e.Method + " on " + e.Kind.String() + " diagram"
}

func invariant(op string, k Kind, msg string) *InvariantError {
	return &InvariantError{Op: op, Kind: k, Msg: msg}
}
