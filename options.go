package svgar

import "seehuhn.de/go/geom/vec"

// PathOption configures a Path during creation.
//
// Example:
//
//	p := svgar.NewPath(coords, svgar.WithPathID("door"), svgar.WithTag("openings"))
type PathOption func(*pathOptions)

type pathOptions struct {
	id        string
	tag       string
	elevation float64
}

func defaultPathOptions() pathOptions {
	return pathOptions{}
}

// WithPathID sets the path identifier.
func WithPathID(id string) PathOption {
	return func(o *pathOptions) {
		o.id = id
	}
}

// WithTag sets the path grouping label.
func WithTag(tag string) PathOption {
	return func(o *pathOptions) {
		o.tag = tag
	}
}

// WithPathElevation sets the path elevation.
func WithPathElevation(elevation float64) PathOption {
	return func(o *pathOptions) {
		o.elevation = elevation
	}
}

// SlabOption configures a Slab during creation.
//
// Example:
//
//	s := svgar.NewSlab("walls",
//	    svgar.WithSlabID("w1"),
//	    svgar.WithDefaultStyle(map[string]string{"stroke": "#000", "stroke-width": "2"}),
//	)
type SlabOption func(*slabOptions)

type slabOptions struct {
	id           string
	elevation    float64
	states       []State
	currentState string
	defaultAttrs map[string]string
}

func defaultSlabOptions() slabOptions {
	return slabOptions{
		defaultAttrs: defaultStyleAttributes(),
	}
}

// WithSlabID sets the slab identifier.
func WithSlabID(id string) SlabOption {
	return func(o *slabOptions) {
		o.id = id
	}
}

// WithSlabElevation sets the slab elevation.
func WithSlabElevation(elevation float64) SlabOption {
	return func(o *slabOptions) {
		o.elevation = elevation
	}
}

// WithState appends a named state. The first state added becomes the
// current state.
func WithState(state State) SlabOption {
	return func(o *slabOptions) {
		if len(o.states) == 0 {
			o.currentState = state.Name
		}
		o.states = append(o.states, state.clone())
	}
}

// WithDefaultStyle replaces the attributes of the protected default style.
func WithDefaultStyle(attrs map[string]string) SlabOption {
	return func(o *slabOptions) {
		o.defaultAttrs = cloneAttrs(attrs)
	}
}

// CubeOption configures a Cube during creation.
type CubeOption func(*cubeOptions)

type cubeOptions struct {
	slabs []*Slab
	scope Viewport
}

func defaultCubeOptions() cubeOptions {
	return cubeOptions{}
}

// WithSlabs seeds the cube's slab list.
func WithSlabs(slabs ...*Slab) CubeOption {
	return func(o *cubeOptions) {
		o.slabs = append(o.slabs, slabs...)
	}
}

// WithExtents sets the initial camera viewport. Compile resets it.
func WithExtents(minX, minY, maxX, maxY float64) CubeOption {
	return func(o *cubeOptions) {
		o.scope = Viewport{
			Minimum: vec.Vec2{X: minX, Y: minY},
			Maximum: vec.Vec2{X: maxX, Y: maxY},
		}
	}
}
