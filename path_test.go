package svgar

import (
	"errors"
	"slices"
	"testing"
)

func TestNewPath(t *testing.T) {
	coords := []float64{0, 0, 5, 5, 5, 5, 10, 10}
	p := NewPath(coords, WithPathID("a"), WithTag("walls"), WithPathElevation(3))

	if p.ID() != "a" {
		t.Errorf("ID() = %q, want %q", p.ID(), "a")
	}
	if p.Tag() != "walls" {
		t.Errorf("Tag() = %q, want %q", p.Tag(), "walls")
	}
	if p.Elevation() != 3 {
		t.Errorf("Elevation() = %v, want 3", p.Elevation())
	}
	if p.Segments() != 1 {
		t.Errorf("Segments() = %d, want 1", p.Segments())
	}
	if p.IsDirty() {
		t.Error("new path should be clean")
	}

	// NewPath copies its input
	coords[0] = 99
	if p.Coordinates()[0] != 0 {
		t.Error("NewPath should copy the coordinate slice")
	}
}

func TestNewPathAcceptsPartialSegments(t *testing.T) {
	p := NewPath([]float64{1, 2, 3})
	if p.Valid() {
		t.Error("Valid() = true for 3 coordinates")
	}
	if p.Segments() != 0 {
		t.Errorf("Segments() = %d, want 0", p.Segments())
	}
	if len(p.Coordinates()) != 3 {
		t.Errorf("len(Coordinates()) = %d, want 3", len(p.Coordinates()))
	}
}

func TestPathCoordinatesIsCopy(t *testing.T) {
	p := NewPath([]float64{0, 0, 1, 1, 1, 1, 2, 2})
	c := p.Coordinates()
	c[0] = 42
	if p.Coordinates()[0] != 0 {
		t.Error("Coordinates() should return a defensive copy")
	}
}

func TestPathSegment(t *testing.T) {
	p := NewPath([]float64{
		0, 0, 1, 1, 2, 2, 3, 3,
		3, 3, 4, 4, 5, 5, 6, 6,
	})
	got := p.Segment(1)
	want := [SegmentSize]float64{3, 3, 4, 4, 5, 5, 6, 6}
	if got != want {
		t.Errorf("Segment(1) = %v, want %v", got, want)
	}
}

func TestPathSetTagRaisesNothing(t *testing.T) {
	p := NewPath(nil)
	p.Compile()
	p.SetTag("test")
	if p.Tag() != "test" {
		t.Errorf("Tag() = %q, want %q", p.Tag(), "test")
	}
	if p.IsDirty() {
		t.Error("SetTag should not raise any scope")
	}
}

func TestPathCheckFlagUntrackedScopes(t *testing.T) {
	p := NewPath(nil)
	_ = Update().Path(p).Coordinates().To(make([]float64, 8))

	for _, s := range []Scope{ScopeState, ScopeStyle, ScopeClipPath, ScopeMask, ScopeRoot, Scope(200)} {
		if p.CheckFlag(s) {
			t.Errorf("CheckFlag(%v) = true on a path", s)
		}
	}
	if !p.CheckFlag(ScopeGeometry) {
		t.Error("CheckFlag(ScopeGeometry) = false after coordinate update")
	}
}

func TestPathCoordinateUpdateProperty(t *testing.T) {
	for n := range 33 {
		coords := make([]float64, n)
		for i := range coords {
			coords[i] = float64(i)
		}
		prior := []float64{9, 9, 9, 9, 9, 9, 9, 9}
		p := NewPath(prior)
		p.Compile()

		err := Update().Path(p).Coordinates().To(coords)

		if n%SegmentSize == 0 {
			if err != nil {
				t.Fatalf("len %d: unexpected error %v", n, err)
			}
			if p.Segments() != n/SegmentSize {
				t.Errorf("len %d: Segments() = %d, want %d", n, p.Segments(), n/SegmentSize)
			}
			if !p.CheckFlag(ScopeGeometry) {
				t.Errorf("len %d: geometry scope not raised", n)
			}
			continue
		}
		if !errors.Is(err, ErrCoordinateLength) {
			t.Fatalf("len %d: err = %v, want ErrCoordinateLength", n, err)
		}
		if !slices.Equal(p.Coordinates(), prior) {
			t.Errorf("len %d: coordinates changed on rejected update", n)
		}
		if p.CheckFlag(ScopeGeometry) {
			t.Errorf("len %d: geometry scope raised on rejected update", n)
		}
	}
}
