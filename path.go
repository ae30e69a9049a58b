package svgar

// SegmentSize is the number of values encoding one cubic segment:
// start point, two control points and end point.
const SegmentSize = 8

// Path is a leaf geometry node: an ordered sequence of cubic segments plus
// identity and style metadata.
//
// Coordinates are stored flat, eight values per segment:
//
//	[startX, startY, c1X, c1Y, c2X, c2Y, endX, endY]
//
// Consecutive segments are expected to share end and start points; this is
// not enforced. NewPath accepts any length so empty or partial paths can be
// built cheaply; Update().Path(p).Coordinates().To validates the length.
type Path struct {
	id          string
	tag         string
	elevation   float64
	coordinates []float64
	flags       flags
}

// NewPath creates a path over a copy of coords.
func NewPath(coords []float64, opts ...PathOption) *Path {
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Path{
		id:          o.id,
		tag:         o.tag,
		elevation:   o.elevation,
		coordinates: append([]float64(nil), coords...),
		flags:       newFlags("path", ScopeGeometry),
	}
}

// ID returns the caller-assigned identifier.
func (p *Path) ID() string { return p.id }

// Tag returns the free-form grouping label.
func (p *Path) Tag() string { return p.tag }

// Elevation returns the path elevation.
func (p *Path) Elevation() float64 { return p.elevation }

// SetTag sets the grouping label. It does not raise any scope.
func (p *Path) SetTag(tag string) { p.tag = tag }

// Coordinates returns a copy of the flat segment coordinates.
func (p *Path) Coordinates() []float64 {
	return append([]float64(nil), p.coordinates...)
}

// Segments returns the number of whole segments in the path.
func (p *Path) Segments() int {
	return len(p.coordinates) / SegmentSize
}

// Segment returns the i-th segment.
// Panics if i is out of range, like a slice index.
func (p *Path) Segment(i int) [SegmentSize]float64 {
	var seg [SegmentSize]float64
	copy(seg[:], p.coordinates[i*SegmentSize:(i+1)*SegmentSize])
	return seg
}

// Valid reports whether the coordinates split into whole segments.
// Paths built with NewPath may hold a trailing partial segment.
func (p *Path) Valid() bool {
	return len(p.coordinates)%SegmentSize == 0
}

// IsEmpty returns true if the path has no segments.
func (p *Path) IsEmpty() bool {
	return p.Segments() == 0
}

// Compile checkpoints the path and clears its change scopes.
func (p *Path) Compile() {
	p.flags.clear()
}

// CheckFlag reports whether the scope changed since the last Compile.
// Paths only track ScopeGeometry.
func (p *Path) CheckFlag(s Scope) bool {
	return p.flags.check(s)
}

// IsDirty returns true if any tracked scope changed since the last Compile.
func (p *Path) IsDirty() bool {
	return p.flags.any()
}
