package svgar

import (
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestNewCube(t *testing.T) {
	c := NewCube("plan")

	if c.Name() != "plan" {
		t.Errorf("Name() = %q, want %q", c.Name(), "plan")
	}
	if len(c.Slabs()) != 0 {
		t.Errorf("len(Slabs()) = %d, want 0", len(c.Slabs()))
	}
	if c.Scope() != (Viewport{}) {
		t.Errorf("Scope() = %+v, want zero viewport", c.Scope())
	}
	if c.CheckFlag(ScopeRoot) {
		t.Error("new cube should be clean")
	}
}

func TestNewCubeOptions(t *testing.T) {
	a, b := NewSlab("a"), NewSlab("b")
	c := NewCube("plan", WithSlabs(a), WithSlabs(b), WithExtents(-5, -5, 5, 5))

	if got := c.Slabs(); !slices.Equal(got, []*Slab{a, b}) {
		t.Errorf("Slabs() = %v, want [a b]", got)
	}
	want := Viewport{Minimum: vec.Vec2{X: -5, Y: -5}, Maximum: vec.Vec2{X: 5, Y: 5}}
	if c.Scope() != want {
		t.Errorf("Scope() = %+v, want %+v", c.Scope(), want)
	}
}

func TestCubeCompile(t *testing.T) {
	p := NewPath(nil)
	s := NewSlab("walls")
	Update().Slab(s).Geometry().Add(p)
	c := NewCube("plan", WithSlabs(s), WithExtents(3, 3, 4, 4))

	Update().Cube(c).Camera().WithPan(1, 1)
	Update().Slab(s).State().To("hover")
	_ = Update().Path(p).Coordinates().To(make([]float64, 8))

	c.Compile(800, 600)

	want := Viewport{Maximum: vec.Vec2{X: 800, Y: 600}}
	if c.Scope() != want {
		t.Errorf("Scope() = %+v, want %+v", c.Scope(), want)
	}
	if c.CheckFlag(ScopeRoot) {
		t.Error("root scope should be cleared")
	}
	if s.IsDirty() || p.IsDirty() {
		t.Error("Compile should cascade to slabs and paths")
	}
}

func TestCubeSlabsIsCopy(t *testing.T) {
	s := NewSlab("a")
	c := NewCube("plan", WithSlabs(s))

	got := c.Slabs()
	got[0] = nil
	if c.Slabs()[0] != s {
		t.Error("Slabs() should return a copy of the slice")
	}
}

func TestCubeDirtySlabs(t *testing.T) {
	a, b, d := NewSlab("a"), NewSlab("b"), NewSlab("d")
	p := NewPath(nil)
	Update().Slab(d).Geometry().Add(p)
	c := NewCube("plan", WithSlabs(a, b, d))
	c.Compile(10, 10)

	Update().Slab(a).Mask().To(b)
	_ = Update().Path(p).Coordinates().To(make([]float64, 8))

	var names []string
	for s := range c.DirtySlabs() {
		names = append(names, s.Name())
	}
	if !slices.Equal(names, []string{"a", "d"}) {
		t.Errorf("DirtySlabs() = %v, want [a d]", names)
	}
	if c.CheckFlag(ScopeRoot) {
		t.Error("slab changes should not raise the cube's root scope")
	}
}

func TestCubeCheckFlagUntracked(t *testing.T) {
	c := NewCube("plan")
	Update().Cube(c).Camera().ExtentsTo(0, 0, 1, 1)

	for _, s := range []Scope{ScopeGeometry, ScopeState, ScopeStyle, ScopeClipPath, ScopeMask} {
		if c.CheckFlag(s) {
			t.Errorf("CheckFlag(%v) = true on a cube", s)
		}
	}
	if !c.CheckFlag(ScopeRoot) {
		t.Error("CheckFlag(ScopeRoot) = false after camera update")
	}
}

func TestCubeAllPathsOrder(t *testing.T) {
	s1, s2 := NewSlab("one"), NewSlab("two")
	Update().Slab(s1).Geometry().Add(NewPath(nil, WithPathID("1a")), NewPath(nil, WithPathID("1b")))
	Update().Slab(s2).Geometry().Add(NewPath(nil, WithPathID("2a")))
	c := NewCube("plan", WithSlabs(s1, s2))

	var ids []string
	for p := range c.allPaths() {
		ids = append(ids, p.ID())
	}
	if !slices.Equal(ids, []string{"1a", "1b", "2a"}) {
		t.Errorf("allPaths() = %v, want [1a 1b 2a]", ids)
	}
}
