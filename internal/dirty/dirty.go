// Package dirty provides the change-flag bitmask shared by all scene entities.
package dirty

import "math/bits"

// MaxScopes is the number of distinct scopes a Set can hold.
const MaxScopes = 32

// Set tracks which change scopes of a single scene entity are dirty.
//
// Each scope is one bit. A Set only accepts marks for the scopes it was
// created with; marking or querying any other scope is a no-op that reports
// clean. The zero value tracks nothing.
//
// Set is not safe for concurrent mutation. Scene entities are expected to
// be driven from a single update pass at a time.
type Set struct {
	// bits holds the dirty state, bit i = scope i.
	bits uint32

	// tracked is the mask of scopes this set accepts.
	tracked uint32
}

// New creates a clean set tracking the given scopes.
// Out-of-range scopes are ignored.
func New(scopes ...int) Set {
	var s Set
	for _, scope := range scopes {
		if scope < 0 || scope >= MaxScopes {
			continue
		}
		s.tracked |= 1 << scope
	}
	return s
}

// Mark marks a single scope as dirty.
// Marking an already dirty scope leaves it dirty.
// Does nothing if the scope is not tracked.
func (s *Set) Mark(scope int) {
	if !s.Tracks(scope) {
		return
	}
	s.bits |= 1 << scope
}

// Clear marks every tracked scope as clean.
func (s *Set) Clear() {
	s.bits = 0
}

// IsDirty returns true if the scope is tracked and marked dirty.
func (s Set) IsDirty(scope int) bool {
	if !s.Tracks(scope) {
		return false
	}
	return s.bits&(1<<scope) != 0
}

// Tracks returns true if the set accepts marks for the scope.
func (s Set) Tracks(scope int) bool {
	if scope < 0 || scope >= MaxScopes {
		return false
	}
	return s.tracked&(1<<scope) != 0
}

// IsEmpty returns true if no scope is dirty.
func (s Set) IsEmpty() bool {
	return s.bits == 0
}

// Count returns the number of dirty scopes.
func (s Set) Count() int {
	return bits.OnesCount32(s.bits)
}

// ForEachDirty calls fn for each dirty scope in ascending order
// without clearing anything.
func (s Set) ForEachDirty(fn func(scope int)) {
	if fn == nil {
		return
	}
	word := s.bits
	for word != 0 {
		scope := bits.TrailingZeros32(word)
		fn(scope)
		word &^= 1 << scope
	}
}
