package svgar

import (
	"math"

	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// FixedAdder accumulates cubic curves in 26.6 fixed point. The method set
// is a subset of the rasterx Adder interface, so rasterx fillers and
// strokers can consume paths directly.
type FixedAdder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path.
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop ends the current curve, closing it back to its start if
	// closeLoop is true.
	Stop(closeLoop bool)
}

// subpaths walks the whole segments of p, calling start whenever a segment
// does not begin where the previous one ended, cube for every segment and
// stop at the end of each run. A run is closed when it has two or more
// segments and ends where it started. The walk ends early as soon as a
// callback returns false.
func (p *Path) subpaths(start func(vec.Vec2) bool, cube func(c1, c2, end vec.Vec2) bool, stop func(closed bool) bool) {
	coords := p.coordinates
	var first, cursor vec.Vec2
	run := 0
	for i := 0; i+SegmentSize <= len(coords); i += SegmentSize {
		seg := coords[i : i+SegmentSize]
		a := vec.Vec2{X: seg[0], Y: seg[1]}
		if run == 0 || a != cursor {
			if run > 0 && !stop(run > 1 && cursor == first) {
				return
			}
			if !start(a) {
				return
			}
			first = a
			run = 0
		}
		end := vec.Vec2{X: seg[6], Y: seg[7]}
		if !cube(vec.Vec2{X: seg[2], Y: seg[3]}, vec.Vec2{X: seg[4], Y: seg[5]}, end) {
			return
		}
		cursor = end
		run++
	}
	if run > 0 {
		stop(run > 1 && cursor == first)
	}
}

// GeomPath returns the path as a seehuhn geometry iterator: one MoveTo per
// continuous run of segments, one CubeTo per segment, and a Close when a
// run of two or more segments ends at its own start.
// A trailing partial segment is ignored. The iterator reads the
// coordinates held at the time of the call; later updates do not affect it.
func (p *Path) GeomPath() path.Path {
	snapshot := &Path{coordinates: p.coordinates}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		snapshot.subpaths(
			func(a vec.Vec2) bool {
				return yield(path.CmdMoveTo, []vec.Vec2{a})
			},
			func(c1, c2, end vec.Vec2) bool {
				return yield(path.CmdCubeTo, []vec.Vec2{c1, c2, end})
			},
			func(closed bool) bool {
				if !closed {
					return true
				}
				return yield(path.CmdClose, nil)
			},
		)
	}
}

// AddTo feeds the path to a fixed-point adder after transforming it by m,
// typically a cube's Scope().ViewMatrix(width, height).
func (p *Path) AddTo(a FixedAdder, m matrix.Matrix) {
	pt := func(v vec.Vec2) fixed.Point26_6 {
		return toFixed(applyMatrix(m, v))
	}
	p.subpaths(
		func(v vec.Vec2) bool {
			a.Start(pt(v))
			return true
		},
		func(c1, c2, end vec.Vec2) bool {
			a.CubeBezier(pt(c1), pt(c2), pt(end))
			return true
		},
		func(closed bool) bool {
			a.Stop(closed)
			return true
		},
	)
}

// Bounds returns the bounding box of all segment points, control points
// included. Empty paths return the zero rectangle.
func (p *Path) Bounds() rect.Rect {
	n := p.Segments() * SegmentSize
	if n == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for i := 0; i < n; i += 2 {
		x, y := p.coordinates[i], p.coordinates[i+1]
		r.LLx = min(r.LLx, x)
		r.LLy = min(r.LLy, y)
		r.URx = max(r.URx, x)
		r.URy = max(r.URy, y)
	}
	return r
}

// applyMatrix maps v through the PDF-style matrix {a b c d e f}.
func applyMatrix(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// toFixed rounds v to the nearest 1/64.
func toFixed(v vec.Vec2) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(v.X * 64)),
		Y: fixed.Int26_6(math.Round(v.Y * 64)),
	}
}
