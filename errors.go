package main

import "errors"

// Planning failures surfaced by the geometric core. These replace fatal
// precondition aborts so a caller can report "unplannable polygon" instead
// of crashing.
var (
	// ErrDegeneratePolygon is returned when a polygon has fewer than three
	// vertices.
	ErrDegeneratePolygon = errors.New("polygon has fewer than 3 vertices")
	// ErrIndexOutOfRange is returned for a vertex index outside the
	// polygon's vertex ring.
	ErrIndexOutOfRange = errors.New("vertex index out of range")
	// ErrInvalidSplit is returned for a split diagonal whose endpoints are
	// identical or adjacent (a zero-area split).
	ErrInvalidSplit = errors.New("invalid split diagonal")
	// ErrNoValidSplit is returned when decomposition finds no valid diagonal
	// even after allowing concave-to-convex splits.
	ErrNoValidSplit = errors.New("no valid split diagonal found")
	// ErrInvalidOffset is returned when the sweep offset is not positive;
	// the sweep line would never advance.
	ErrInvalidOffset = errors.New("sweep offset must be positive")
	// ErrTooManySubregions is returned when the subregion count exceeds the
	// configured bound for the factorial visiting-order search.
	ErrTooManySubregions = errors.New("too many subregions for visiting-order search")
	// ErrRouterDiverged is returned when the boundary router exceeds its
	// iteration cap without converging.
	ErrRouterDiverged = errors.New("boundary router exceeded iteration cap")
)
