package svgar

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// UpdateContext is the entry point of a scene mutation.
// Create one per mutation with Update.
type UpdateContext struct{}

// Update starts a new mutation.
//
// Example:
//
//	svgar.Update().Slab(walls).State().To("hover")
//	svgar.Update().Slab(walls).Styles().Remove(func(s svgar.Style) bool {
//	    return s.Attributes["stroke"] == "red"
//	})
//	if err := svgar.Update().Cube(cube).Camera().WithZoom(2); err != nil {
//	    // viewport too small, left unchanged
//	}
//
// Each field update raises the matching scope on the owning entity.
func Update() *UpdateContext {
	return &UpdateContext{}
}

// Path returns the field updaters of p.
func (*UpdateContext) Path(p *Path) *PathUpdate {
	return &PathUpdate{p: p}
}

// Slab returns the field updaters of s.
func (*UpdateContext) Slab(s *Slab) *SlabUpdate {
	return &SlabUpdate{s: s}
}

// Cube returns the field updaters of c.
func (*UpdateContext) Cube(c *Cube) *CubeUpdate {
	return &CubeUpdate{c: c}
}

// FieldUpdate replaces a single value.
type FieldUpdate[T any] struct {
	field *T
	raise func()
}

// To replaces the value and raises the field's scope, if any.
func (u *FieldUpdate[T]) To(v T) {
	*u.field = v
	if u.raise != nil {
		u.raise()
	}
}

// ListUpdate replaces, extends or filters an ordered collection.
type ListUpdate[T any] struct {
	list  *[]T
	clone func([]T) []T
	raise func()
}

// To replaces the whole collection.
func (u *ListUpdate[T]) To(items []T) {
	*u.list = u.copyOf(items)
	u.raise()
}

// Add appends one or more entries.
func (u *ListUpdate[T]) Add(items ...T) {
	*u.list = append(*u.list, u.copyOf(items)...)
	u.raise()
}

// Remove evicts every entry for which fn returns true and keeps the rest in
// their original order. To keep only matches, invert the predicate.
func (u *ListUpdate[T]) Remove(fn func(T) bool) {
	*u.list = evict(*u.list, fn)
	u.raise()
}

func (u *ListUpdate[T]) copyOf(items []T) []T {
	if u.clone != nil {
		return u.clone(items)
	}
	return append([]T(nil), items...)
}

// PathUpdate holds the field updaters of a path.
type PathUpdate struct {
	p *Path
}

// ID updates the identifier. No scope is raised.
func (u *PathUpdate) ID() *FieldUpdate[string] {
	return &FieldUpdate[string]{field: &u.p.id}
}

// Tag updates the grouping label. No scope is raised.
func (u *PathUpdate) Tag() *FieldUpdate[string] {
	return &FieldUpdate[string]{field: &u.p.tag}
}

// Elevation updates the elevation. No scope is raised.
func (u *PathUpdate) Elevation() *FieldUpdate[float64] {
	return &FieldUpdate[float64]{field: &u.p.elevation}
}

// Coordinates updates the segment coordinates.
func (u *PathUpdate) Coordinates() *CoordinatesUpdate {
	return &CoordinatesUpdate{p: u.p}
}

// CoordinatesUpdate replaces a path's coordinates.
type CoordinatesUpdate struct {
	p *Path
}

// To replaces the coordinates and raises ScopeGeometry.
// It returns an error wrapping ErrCoordinateLength, and leaves the path
// untouched, if len(coords) is not a multiple of SegmentSize.
func (u *CoordinatesUpdate) To(coords []float64) error {
	if len(coords)%SegmentSize != 0 {
		Logger().Warn("svgar: coordinate update rejected",
			"path", u.p.id, "length", len(coords))
		return fmt.Errorf("%w: got %d values", ErrCoordinateLength, len(coords))
	}
	u.p.coordinates = append([]float64(nil), coords...)
	u.p.flags.raise(ScopeGeometry)
	return nil
}

// SlabUpdate holds the field updaters of a slab.
type SlabUpdate struct {
	s *Slab
}

func (u *SlabUpdate) raiser(scope Scope) func() {
	return func() { u.s.flags.raise(scope) }
}

// State updates the current state name and raises ScopeState.
func (u *SlabUpdate) State() *FieldUpdate[string] {
	return &FieldUpdate[string]{field: &u.s.currentState, raise: u.raiser(ScopeState)}
}

// Name updates the slab name and raises ScopeStyle, since the default
// style's key derives from the name.
func (u *SlabUpdate) Name() *FieldUpdate[string] {
	return &FieldUpdate[string]{field: &u.s.name, raise: u.raiser(ScopeStyle)}
}

// ID updates the identifier. No scope is raised.
func (u *SlabUpdate) ID() *FieldUpdate[string] {
	return &FieldUpdate[string]{field: &u.s.id}
}

// Elevation updates the elevation. No scope is raised.
func (u *SlabUpdate) Elevation() *FieldUpdate[float64] {
	return &FieldUpdate[float64]{field: &u.s.elevation}
}

// States updates the state list. Every operation raises ScopeState.
func (u *SlabUpdate) States() *ListUpdate[State] {
	return &ListUpdate[State]{list: &u.s.states, clone: cloneStates, raise: u.raiser(ScopeState)}
}

// Styles updates the custom style list. Every operation raises ScopeStyle.
//
// The protected default style lives outside this list and is never looked
// up by name: To replaces only the custom entries, and Remove
// never offers the default to its predicate. A custom entry named
// DefaultStyleName is kept as a custom entry.
func (u *SlabUpdate) Styles() *ListUpdate[Style] {
	return &ListUpdate[Style]{list: &u.s.styles.custom, clone: cloneStyles, raise: u.raiser(ScopeStyle)}
}

// Geometry updates the path list. Every operation raises ScopeGeometry.
func (u *SlabUpdate) Geometry() *ListUpdate[*Path] {
	return &ListUpdate[*Path]{list: &u.s.geometry, raise: u.raiser(ScopeGeometry)}
}

// ClipPath updates the clip reference and raises ScopeClipPath.
func (u *SlabUpdate) ClipPath() *RefUpdate {
	return &RefUpdate{ref: &u.s.clip, raise: u.raiser(ScopeClipPath)}
}

// Mask updates the mask reference and raises ScopeMask.
func (u *SlabUpdate) Mask() *RefUpdate {
	return &RefUpdate{ref: &u.s.mask, raise: u.raiser(ScopeMask)}
}

// RefUpdate sets a clip or mask reference.
type RefUpdate struct {
	ref   **Slab
	raise func()
}

// To points the reference at s. Passing nil clears it.
func (u *RefUpdate) To(s *Slab) {
	*u.ref = s
	u.raise()
}

// CubeUpdate holds the field updaters of a cube.
type CubeUpdate struct {
	c *Cube
}

// Camera updates the viewport.
func (u *CubeUpdate) Camera() *CameraUpdate {
	return &CameraUpdate{c: u.c}
}

// Slabs updates the slab list. Every operation raises ScopeRoot.
// Removing a slab does not touch slabs it references as clip or mask.
func (u *CubeUpdate) Slabs() *ListUpdate[*Slab] {
	return &ListUpdate[*Slab]{list: &u.c.slabs, raise: func() { u.c.flags.raise(ScopeRoot) }}
}

// CameraUpdate moves and scales a cube's viewport. Every successful
// operation raises ScopeRoot.
type CameraUpdate struct {
	c *Cube
}

// ExtentsTo sets the viewport corners directly.
func (u *CameraUpdate) ExtentsTo(minX, minY, maxX, maxY float64) {
	u.set(Viewport{
		Minimum: vec.Vec2{X: minX, Y: minY},
		Maximum: vec.Vec2{X: maxX, Y: maxY},
	})
}

// AnchorTo recentres the viewport on (x, y), keeping its width and height.
func (u *CameraUpdate) AnchorTo(x, y float64) {
	u.set(u.c.scope.anchored(vec.Vec2{X: x, Y: y}))
}

// WithPan translates the viewport by (dx, dy).
func (u *CameraUpdate) WithPan(dx, dy float64) {
	u.set(u.c.scope.panned(vec.Vec2{X: dx, Y: dy}))
}

// WithZoom shrinks the viewport by amount on every side; a negative amount
// grows it. It returns an error wrapping ErrZoomCollapse, and leaves the
// viewport untouched, if 2*amount reaches the current width or height.
func (u *CameraUpdate) WithZoom(amount float64) error {
	v, ok := u.c.scope.zoomed(amount)
	if !ok {
		Logger().Warn("svgar: zoom rejected",
			"cube", u.c.name, "amount", amount,
			"width", u.c.scope.Width(), "height", u.c.scope.Height())
		return fmt.Errorf("%w: amount %g on %gx%g viewport",
			ErrZoomCollapse, amount, u.c.scope.Width(), u.c.scope.Height())
	}
	u.set(v)
	return nil
}

func (u *CameraUpdate) set(v Viewport) {
	u.c.scope = v
	u.c.flags.raise(ScopeRoot)
}
