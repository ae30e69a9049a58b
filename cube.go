package svgar

import (
	"iter"

	"seehuhn.de/go/geom/vec"
)

// Cube is the root of a scene. It owns an ordered list of slabs (and,
// through them, every path) plus the camera viewport.
type Cube struct {
	name  string
	slabs []*Slab
	scope Viewport
	flags flags
}

// NewCube creates an empty cube. The viewport is zero until Compile sets
// it, unless WithExtents is given.
func NewCube(name string, opts ...CubeOption) *Cube {
	o := defaultCubeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Cube{
		name:  name,
		slabs: o.slabs,
		scope: o.scope,
		flags: newFlags("cube", ScopeRoot),
	}
}

// Name returns the cube name.
func (c *Cube) Name() string { return c.name }

// Slabs returns the slab list in order. The slice is a copy; the slabs are
// shared.
func (c *Cube) Slabs() []*Slab {
	return append([]*Slab(nil), c.slabs...)
}

// Scope returns the camera viewport.
func (c *Cube) Scope() Viewport { return c.scope }

// Compile establishes a clean checkpoint: the viewport becomes
// (0, 0)-(width, height) and every scope on the cube, its slabs and their
// paths is cleared.
func (c *Cube) Compile(width, height float64) {
	c.scope = Viewport{
		Minimum: vec.Vec2{},
		Maximum: vec.Vec2{X: width, Y: height},
	}
	c.flags.clear()
	for _, s := range c.slabs {
		s.Compile()
	}
}

// CheckFlag reports whether the scope changed since the last Compile.
// Cubes only track ScopeRoot.
func (c *Cube) CheckFlag(s Scope) bool {
	return c.flags.check(s)
}

// DirtySlabs yields the slabs that changed since the last Compile, either
// in their own scopes or through one of their paths, in slab order.
func (c *Cube) DirtySlabs() iter.Seq[*Slab] {
	return func(yield func(*Slab) bool) {
		for _, s := range c.slabs {
			if !s.IsDirty() {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}

// allPaths yields every path in slab order, then geometry order.
func (c *Cube) allPaths() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		for _, s := range c.slabs {
			for _, p := range s.geometry {
				if !yield(p) {
					return
				}
			}
		}
	}
}
