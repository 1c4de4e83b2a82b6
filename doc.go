// Package vg provides a cross-platform 2D vector-graphics scene model for Go.
//
// # Overview
//
// vg models drawable content as vector paths and text runs that are placed
// into a Frame: a renderable surface holding an ordered collection of
// objects. Rendering is pluggable; the raster subpackage provides a CPU
// rasterizer built on golang.org/x/image/vector, and the present subpackage
// ties a frame to a window and event loop.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/vg"
//	    "github.com/gogpu/vg/raster"
//	)
//
//	// Build a path with the geometry DSL.
//	path := vg.Rectangle(100, 50).
//	    Close().
//	    Stroke(vg.NewStroke(vg.Solid{Color: vg.Black}, 2).Finalize()).
//	    Finalize()
//
//	// Render it into a frame.
//	frame := raster.NewFrame()
//	frame.Resize(vg.Pt(200, 200))
//	frame.SetViewport(vg.NewRect(vg.Pt(0, 0), vg.Pt(200, 200)))
//	frame.Add(vg.NewContent(path))
//	if err := frame.Draw(); err != nil {
//	    // handle it
//	}
//	img, _ := frame.Image()
//
// # Scene Model
//
// A Path is an ordered sequence of segments (move, line, quadratic, cubic)
// that implicitly starts at the local origin. Paths carry an optional stroke,
// fill and shadow; each paintable slot accepts any Texture (solid color,
// linear or radial gradient, or an image pattern). Frame.Add returns an
// Object handle; mutating the handle's transform, content or depth is
// observed by the next draw pass.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Concurrency
//
// Frames and object handles are safe for concurrent use. A draw pass observes
// a consistent snapshot of the object list; concurrent Add calls may or may
// not land in an in-flight pass.
package vg
