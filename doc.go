// Package svgar provides a retained 2D vector-drawing scene with change
// tracking for incremental rendering.
//
// # Overview
//
// A scene is a [Cube] holding an ordered list of [Slab] containers. Each slab
// owns geometric [Path] values, named states and styles, and optional clip and
// mask references to other slabs. Every path is a sequence of cubic segments
// encoded as eight numbers:
//
//	[startX, startY, ctrl1X, ctrl1Y, ctrl2X, ctrl2Y, endX, endY]
//
// Straight polylines are converted into the same encoding by
// [PolylineBuilder], so renderers only ever deal with one segment kind.
//
// # Quick Start
//
//	cube := svgar.NewCube("plan")
//	walls := svgar.NewSlab("walls")
//
//	outline := svgar.BuildPolyline(0, 0).
//	    HorizontalTo(10).
//	    VerticalTo(10).
//	    HorizontalTo(0).
//	    Close().
//	    Build()
//
//	svgar.Update().Slab(walls).Geometry().Add(outline)
//	svgar.Update().Cube(cube).Slabs().Add(walls)
//
//	cube.Compile(800, 600) // checkpoint: all flags clean
//
//	svgar.Update().Cube(cube).Camera().WithPan(25, 0)
//	cube.CheckFlag(svgar.ScopeRoot) // true
//
// # Predicates
//
// [Locate] and [Update] return a fresh context per call. Locate never mutates
// the scene and reports misses with nil. Update mutates one field at a time and
// raises the matching change scope on the owning entity.
//
// # Change Tracking
//
// Every entity carries a small fixed set of change scopes. Compile clears them;
// updates raise them; nothing else changes them. A renderer compiles once per
// frame, lets callers mutate, then reads [Cube.DirtySlabs] or CheckFlag to
// decide what to re-emit.
//
// # Concurrency
//
// The scene is synchronous and performs no locking. Callers must serialize
// access to a given cube, slab or path. Read-only Locate calls may run
// concurrently with each other.
package svgar
