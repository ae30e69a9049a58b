package dirty

import (
	"slices"
	"testing"
)

func TestSet_New(t *testing.T) {
	tests := []struct {
		name    string
		scopes  []int
		tracked []int
		ignored []int
	}{
		{"single", []int{0}, []int{0}, []int{1, 31}},
		{"several", []int{1, 2, 5}, []int{1, 2, 5}, []int{0, 3, 4}},
		{"out of range", []int{-1, 32, 100, 3}, []int{3}, []int{-1, 32, 100}},
		{"none", nil, nil, []int{0, 1, 31}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.scopes...)
			for _, scope := range tt.tracked {
				if !s.Tracks(scope) {
					t.Errorf("Tracks(%d) = false, want true", scope)
				}
			}
			for _, scope := range tt.ignored {
				if s.Tracks(scope) {
					t.Errorf("Tracks(%d) = true, want false", scope)
				}
			}
			// New set should be clean
			if !s.IsEmpty() {
				t.Error("new Set should be empty")
			}
		})
	}
}

func TestSet_Mark(t *testing.T) {
	s := New(0, 1, 2)

	s.Mark(1)

	if !s.IsDirty(1) {
		t.Error("Mark(1) did not set dirty flag")
	}
	if s.IsDirty(0) || s.IsDirty(2) {
		t.Error("unmarked scopes should stay clean")
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestSet_MarkIdempotent(t *testing.T) {
	s := New(4)
	s.Mark(4)
	s.Mark(4)
	s.Mark(4)

	if !s.IsDirty(4) {
		t.Error("repeated Mark should keep scope dirty")
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}
}

func TestSet_MarkUntracked(t *testing.T) {
	s := New(0)

	// These should not panic and should be no-ops
	s.Mark(1)
	s.Mark(-1)
	s.Mark(MaxScopes)
	s.Mark(1000)

	if !s.IsEmpty() {
		t.Error("untracked marks should not set any dirty flags")
	}
	if s.IsDirty(1) {
		t.Error("IsDirty on untracked scope should be false")
	}
}

func TestSet_Clear(t *testing.T) {
	s := New(0, 1, 2, 3)
	for i := range 4 {
		s.Mark(i)
	}
	if s.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", s.Count())
	}

	s.Clear()

	if !s.IsEmpty() {
		t.Error("Set should be empty after Clear")
	}
	// Tracking survives Clear
	s.Mark(2)
	if !s.IsDirty(2) {
		t.Error("Mark after Clear should still work")
	}
}

func TestSet_ForEachDirty(t *testing.T) {
	s := New(1, 3, 7, 30)
	s.Mark(30)
	s.Mark(3)
	s.Mark(7)

	var got []int
	s.ForEachDirty(func(scope int) {
		got = append(got, scope)
	})

	want := []int{3, 7, 30}
	if !slices.Equal(got, want) {
		t.Errorf("ForEachDirty visited %v, want %v", got, want)
	}

	// ForEachDirty must not clear
	if s.Count() != 3 {
		t.Errorf("Count() after ForEachDirty = %d, want 3", s.Count())
	}

	// nil callback is a no-op
	s.ForEachDirty(nil)
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set
	s.Mark(0)
	if !s.IsEmpty() {
		t.Error("zero Set tracks nothing and should stay empty")
	}
}
