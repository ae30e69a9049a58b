package svgar

import "errors"

// ErrCoordinateLength is returned when a coordinate array cannot be split
// into whole 8-number cubic segments.
var ErrCoordinateLength = errors.New("svgar: coordinate array length not a multiple of 8")

// ErrZoomCollapse is returned when a zoom would collapse or invert the
// camera viewport.
var ErrZoomCollapse = errors.New("svgar: cannot zoom beyond a zero-width camera")
