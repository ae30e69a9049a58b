package svgar

import "iter"

// Slab is a named container node. It owns its geometry, states and styles
// and holds non-owning clip and mask references to other slabs.
//
// Clip and mask are plain references. The referenced slab need not belong
// to any cube, and removing either slab from a cube leaves the other alone.
// A slab may reference itself or any slab in its own subtree, so renderers
// walking clip/mask chains must guard against cycles.
type Slab struct {
	id           string
	name         string
	elevation    float64
	currentState string

	clip *Slab
	mask *Slab

	states   []State
	styles   styleSet
	geometry []*Path

	flags flags
}

// NewSlab creates a slab with the given name, an empty geometry list and
// the protected default style.
func NewSlab(name string, opts ...SlabOption) *Slab {
	o := defaultSlabOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Slab{
		id:           o.id,
		name:         name,
		elevation:    o.elevation,
		currentState: o.currentState,
		states:       o.states,
		styles:       newStyleSet(o.defaultAttrs),
		flags: newFlags("slab",
			ScopeState, ScopeStyle, ScopeGeometry, ScopeClipPath, ScopeMask),
	}
}

// ID returns the slab identifier.
func (s *Slab) ID() string { return s.id }

// Name returns the slab name.
func (s *Slab) Name() string { return s.name }

// Elevation returns the slab elevation.
func (s *Slab) Elevation() float64 { return s.elevation }

// CurrentState returns the name of the active state.
func (s *Slab) CurrentState() string { return s.currentState }

// Clip returns the clip slab, or nil if none is set.
func (s *Slab) Clip() *Slab { return s.clip }

// Mask returns the mask slab, or nil if none is set.
func (s *Slab) Mask() *Slab { return s.mask }

// AllStates returns a copy of the state list.
func (s *Slab) AllStates() []State { return cloneStates(s.states) }

// AllStyles returns a copy of the custom styles followed by the default
// style. The result always has at least one entry, and the last entry is
// always the protected default. A custom style may also be named
// DefaultStyleName; it stays a custom entry.
func (s *Slab) AllStyles() []Style { return s.styles.all() }

// AllGeometry returns the owned paths in order. The slice is a copy; the
// paths are shared.
func (s *Slab) AllGeometry() []*Path {
	return append([]*Path(nil), s.geometry...)
}

// ActiveState returns the state named by CurrentState.
// When several states share the name, the first wins.
func (s *Slab) ActiveState() (State, bool) {
	for _, st := range s.states {
		if st.Name == s.currentState {
			return st.clone(), true
		}
	}
	return State{}, false
}

// DefaultStyle returns a copy of the protected default style.
func (s *Slab) DefaultStyle() Style {
	return s.styles.protected.clone()
}

// DefaultStyleKey returns the rendering key of the default style. It is
// derived from the slab name, which is why renaming a slab raises
// ScopeStyle.
func (s *Slab) DefaultStyleKey() string {
	return s.name + "-" + DefaultStyleName
}

// Compile checkpoints the slab and every path it owns.
func (s *Slab) Compile() {
	s.flags.clear()
	for _, p := range s.geometry {
		p.Compile()
	}
}

// CheckFlag reports whether the scope changed since the last Compile.
// Slabs track ScopeState, ScopeStyle, ScopeGeometry, ScopeClipPath and
// ScopeMask.
func (s *Slab) CheckFlag(scope Scope) bool {
	return s.flags.check(scope)
}

// DirtyScopes lists the slab's own dirty scopes in ascending order.
func (s *Slab) DirtyScopes() []Scope {
	return s.flags.dirtyScopes()
}

// IsDirty returns true if the slab or any path it owns changed since the
// last Compile.
func (s *Slab) IsDirty() bool {
	if s.flags.any() {
		return true
	}
	for _, p := range s.geometry {
		if p.IsDirty() {
			return true
		}
	}
	return false
}

// DirtyPaths yields the owned paths whose geometry changed since the last
// Compile, in geometry order.
func (s *Slab) DirtyPaths() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		for _, p := range s.geometry {
			if !p.IsDirty() {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}
