package svgar

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Viewport is the camera rectangle of a cube: the visible coordinate range
// from Minimum to Maximum.
type Viewport struct {
	Minimum vec.Vec2
	Maximum vec.Vec2
}

// Width returns the horizontal extent.
func (v Viewport) Width() float64 {
	return v.Maximum.X - v.Minimum.X
}

// Height returns the vertical extent.
func (v Viewport) Height() float64 {
	return v.Maximum.Y - v.Minimum.Y
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() vec.Vec2 {
	return v.Minimum.Add(v.Maximum).Mul(0.5)
}

// Rect returns the viewport as a rectangle.
func (v Viewport) Rect() rect.Rect {
	return rect.Rect{
		LLx: v.Minimum.X,
		LLy: v.Minimum.Y,
		URx: v.Maximum.X,
		URy: v.Maximum.Y,
	}
}

// IsEmpty returns true if the viewport has zero or negative area.
func (v Viewport) IsEmpty() bool {
	return v.Width() <= 0 || v.Height() <= 0
}

// ViewMatrix returns the transform mapping scene coordinates inside the
// viewport onto a width x height output area with the origin at the top
// left, like an SVG viewBox with preserveAspectRatio="none".
// An empty viewport maps everything onto the origin.
func (v Viewport) ViewMatrix(width, height float64) matrix.Matrix {
	if v.IsEmpty() {
		return matrix.Matrix{0, 0, 0, 0, 0, 0}
	}
	sx := width / v.Width()
	sy := height / v.Height()
	return matrix.Matrix{sx, 0, 0, sy, -v.Minimum.X * sx, -v.Minimum.Y * sy}
}

// zoomed returns the viewport shrunk by amount on every side, or false if
// that would collapse or invert it.
func (v Viewport) zoomed(amount float64) (Viewport, bool) {
	if 2*amount >= v.Width() || 2*amount >= v.Height() {
		return v, false
	}
	d := vec.Vec2{X: amount, Y: amount}
	return Viewport{
		Minimum: v.Minimum.Add(d),
		Maximum: v.Maximum.Sub(d),
	}, true
}

// anchored returns the viewport recentred on c with the same size.
func (v Viewport) anchored(c vec.Vec2) Viewport {
	half := vec.Vec2{X: v.Width() / 2, Y: v.Height() / 2}
	return Viewport{
		Minimum: c.Sub(half),
		Maximum: c.Add(half),
	}
}

// panned returns the viewport translated by d.
func (v Viewport) panned(d vec.Vec2) Viewport {
	return Viewport{
		Minimum: v.Minimum.Add(d),
		Maximum: v.Maximum.Add(d),
	}
}
