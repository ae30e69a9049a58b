// path_builder.go

package svgar

import "seehuhn.de/go/geom/vec"

// PolylineBuilder converts straight-line waypoints into a Path.
// All methods except Build and CurrentCoordinates return the builder for
// chaining.
//
// Each pair of consecutive waypoints A, B becomes one cubic segment whose
// control points both sit on the midpoint of AB. All four points are
// colinear, so the segment draws a straight line while using the same
// encoding as curved paths.
type PolylineBuilder struct {
	points []vec.Vec2
}

// BuildPolyline starts a new polyline at (x, y).
func BuildPolyline(x, y float64) *PolylineBuilder {
	return &PolylineBuilder{points: []vec.Vec2{{X: x, Y: y}}}
}

// LineTo adds a waypoint at (x, y).
func (b *PolylineBuilder) LineTo(x, y float64) *PolylineBuilder {
	b.points = append(b.points, vec.Vec2{X: x, Y: y})
	return b
}

// VerticalTo adds a waypoint at y, keeping the last x.
func (b *PolylineBuilder) VerticalTo(y float64) *PolylineBuilder {
	return b.LineTo(b.last().X, y)
}

// HorizontalTo adds a waypoint at x, keeping the last y.
func (b *PolylineBuilder) HorizontalTo(x float64) *PolylineBuilder {
	return b.LineTo(x, b.last().Y)
}

// Close adds a waypoint back at the start point.
func (b *PolylineBuilder) Close() *PolylineBuilder {
	b.points = append(b.points, b.points[0])
	return b
}

// Build returns a new Path with one segment per waypoint pair.
// A builder holding only its start point yields an empty path.
func (b *PolylineBuilder) Build(opts ...PathOption) *Path {
	coords := make([]float64, 0, (len(b.points)-1)*SegmentSize)
	for i := 0; i+1 < len(b.points); i++ {
		a, c := b.points[i], b.points[i+1]
		m := a.Add(c).Mul(0.5)
		coords = append(coords, a.X, a.Y, m.X, m.Y, m.X, m.Y, c.X, c.Y)
	}
	return NewPath(coords, opts...)
}

// CurrentCoordinates returns a copy of the waypoints as flat x, y pairs.
func (b *PolylineBuilder) CurrentCoordinates() []float64 {
	out := make([]float64, 0, 2*len(b.points))
	for _, p := range b.points {
		out = append(out, p.X, p.Y)
	}
	return out
}

func (b *PolylineBuilder) last() vec.Vec2 {
	return b.points[len(b.points)-1]
}
