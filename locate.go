package svgar

import "golang.org/x/text/unicode/norm"

// LocateContext is the entry point of a read-only scene query.
// Create one per query with Locate.
type LocateContext struct{}

// Locate starts a new query.
//
// Example:
//
//	walls := svgar.Locate().Slab().WithName("walls").InCube(cube)
//	door := svgar.Locate().Path().WithID("door").InSlab(walls)
//
// Queries never mutate the scene and report misses with nil.
func Locate() *LocateContext {
	return &LocateContext{}
}

// Slab returns a slab locator with no filters.
func (*LocateContext) Slab() *SlabLocator {
	return &SlabLocator{}
}

// Path returns a path locator with no filters.
func (*LocateContext) Path() *PathLocator {
	return &PathLocator{}
}

// SlabLocator finds a slab by id and/or name.
type SlabLocator struct {
	id   string
	name string
}

// WithID filters on the slab identifier. An empty id clears the filter.
// Identifiers match exactly or after NFC normalization, so "caf\u00e9"
// finds a slab whose id is "cafe\u0301".
func (l *SlabLocator) WithID(id string) *SlabLocator {
	l.id = id
	return l
}

// WithName filters on the slab name. An empty name clears the filter.
// Names match exactly or after NFC normalization.
func (l *SlabLocator) WithName(name string) *SlabLocator {
	l.name = name
	return l
}

// InCube returns the first id match in slab order, or the first name match
// if no slab has the id. Returns nil when nothing matches or no filter is
// set.
func (l *SlabLocator) InCube(c *Cube) *Slab {
	if c == nil {
		return nil
	}
	var candidates []*Slab
	if l.id != "" {
		for _, s := range c.slabs {
			if sameKey(s.id, l.id) {
				candidates = append(candidates, s)
			}
		}
	}
	if l.name != "" {
		for _, s := range c.slabs {
			if sameKey(s.name, l.name) {
				candidates = append(candidates, s)
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}

// PathLocator finds a path by id.
type PathLocator struct {
	id string
}

// WithID filters on the path identifier. An empty id clears the filter.
// Identifiers match exactly or after NFC normalization.
func (l *PathLocator) WithID(id string) *PathLocator {
	l.id = id
	return l
}

// InCube returns the first path with the id across all slabs, in slab order
// then geometry order. Returns nil when no id filter is set.
func (l *PathLocator) InCube(c *Cube) *Path {
	if l.id == "" || c == nil {
		return nil
	}
	for p := range c.allPaths() {
		if sameKey(p.id, l.id) {
			return p
		}
	}
	return nil
}

// InSlab returns the first path in the slab's geometry with the id.
// Returns nil when no id filter is set.
func (l *PathLocator) InSlab(s *Slab) *Path {
	if l.id == "" || s == nil {
		return nil
	}
	for _, p := range s.geometry {
		if sameKey(p.id, l.id) {
			return p
		}
	}
	return nil
}

// sameKey compares identifiers and names after NFC normalization, so
// composed and decomposed spellings of the same text match.
func sameKey(a, b string) bool {
	if a == b {
		return true
	}
	return norm.NFC.String(a) == norm.NFC.String(b)
}
