package svgar

import "github.com/gogpu/svgar/internal/dirty"

// Scope identifies a category of change tracked on a scene entity.
type Scope uint8

// Scope constants. Each entity tracks a fixed subset:
//
//	Path: ScopeGeometry
//	Slab: ScopeState, ScopeStyle, ScopeGeometry, ScopeClipPath, ScopeMask
//	Cube: ScopeRoot
const (
	// ScopeGeometry covers path coordinates and slab geometry lists.
	ScopeGeometry Scope = iota
	// ScopeState covers the active state and the state list.
	ScopeState
	// ScopeStyle covers slab styles and the slab name.
	ScopeStyle
	// ScopeClipPath covers the clip reference.
	ScopeClipPath
	// ScopeMask covers the mask reference.
	ScopeMask
	// ScopeRoot covers the camera and the cube's slab list.
	ScopeRoot
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "unknown"

var scopeNames = [...]string{
	ScopeGeometry: "geometry",
	ScopeState:    "state",
	ScopeStyle:    "style",
	ScopeClipPath: "clipPath",
	ScopeMask:     "mask",
	ScopeRoot:     "root",
}

// String returns the scope name used by renderers ("geometry", "clipPath", ...).
func (s Scope) String() string {
	if int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return unknownStr
}

// ParseScope maps a scope name back to its constant.
func ParseScope(name string) (Scope, bool) {
	for i, n := range scopeNames {
		if n == name {
			return Scope(i), true
		}
	}
	return 0, false
}

// flags wraps a dirty.Set with Scope-typed accessors and logging.
type flags struct {
	set   dirty.Set
	owner string
}

func newFlags(owner string, scopes ...Scope) flags {
	idx := make([]int, len(scopes))
	for i, s := range scopes {
		idx[i] = int(s)
	}
	return flags{set: dirty.New(idx...), owner: owner}
}

func (f *flags) raise(s Scope) {
	if f.set.IsDirty(int(s)) {
		return
	}
	f.set.Mark(int(s))
	Logger().Debug("svgar: scope raised", "entity", f.owner, "scope", s.String())
}

func (f *flags) clear() {
	if n := f.set.Count(); n > 0 {
		Logger().Debug("svgar: compiled", "entity", f.owner, "cleared", n)
	}
	f.set.Clear()
}

func (f *flags) check(s Scope) bool {
	return f.set.IsDirty(int(s))
}

func (f *flags) any() bool {
	return !f.set.IsEmpty()
}

// dirtyScopes lists the dirty scopes in ascending order.
func (f *flags) dirtyScopes() []Scope {
	var out []Scope
	f.set.ForEachDirty(func(scope int) {
		out = append(out, Scope(scope))
	})
	return out
}
