// Package flatten converts path segments into polyline contours by adaptive
// subdivision of Bezier curves.
package flatten

import (
	"fmt"

	"github.com/gogpu/vg"
)

// DefaultTolerance is the maximum distance between a curve and its polyline
// approximation, in the path's local units.
const DefaultTolerance = 0.1

// maxDepth bounds the recursive subdivision of a single curve.
const maxDepth = 24

// Contour is one flattened subpath.
type Contour struct {
	Points []vg.Point
	Closed bool
}

// Path flattens a segment sequence into contours. The first contour starts
// at the local origin unless the sequence opens with a MoveTo; each MoveTo
// starts a new contour. If closed is set, the final contour is marked
// closed, matching a synthesized closing segment back to its start.
//
// Returns vg.ErrCorruptGeometry if any coordinate is non-finite.
func Path(segments []vg.Segment, closed bool, tolerance float64) ([]Contour, error) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	var contours []Contour
	current := []vg.Point{{}}
	cursor := vg.Point{}

	flush := func() {
		if len(current) > 1 {
			contours = append(contours, Contour{Points: current})
		}
		current = nil
	}

	for i, seg := range segments {
		switch s := seg.(type) {
		case vg.MoveTo:
			if !s.Point.IsFinite() {
				return nil, corrupt(i)
			}
			flush()
			current = []vg.Point{s.Point}
			cursor = s.Point
		case vg.LineTo:
			if !s.Point.IsFinite() {
				return nil, corrupt(i)
			}
			current = append(current, s.Point)
			cursor = s.Point
		case vg.QuadraticTo:
			if !s.Point.IsFinite() || !s.Handle.IsFinite() {
				return nil, corrupt(i)
			}
			current = Quadratic(current, cursor, s.Handle, s.Point, tolerance)
			cursor = s.Point
		case vg.CubicTo:
			if !s.Point.IsFinite() || !s.Handle1.IsFinite() || !s.Handle2.IsFinite() {
				return nil, corrupt(i)
			}
			current = Cubic(current, cursor, s.Handle1, s.Handle2, s.Point, tolerance)
			cursor = s.Point
		}
	}
	flush()

	if closed && len(contours) > 0 {
		contours[len(contours)-1].Closed = true
	}
	return contours, nil
}

// Quadratic appends a polyline approximation of the quadratic Bezier from
// p0 to p1 with control handle to dst, excluding p0.
func Quadratic(dst []vg.Point, p0, handle, p1 vg.Point, tolerance float64) []vg.Point {
	return quadratic(dst, p0, handle, p1, tolerance, 0)
}

func quadratic(dst []vg.Point, p0, handle, p1 vg.Point, tolerance float64, depth int) []vg.Point {
	if depth >= maxDepth || quadFlat(p0, handle, p1, tolerance) {
		return append(dst, p1)
	}
	// de Casteljau split at t=0.5
	h0 := p0.Lerp(handle, 0.5)
	h1 := handle.Lerp(p1, 0.5)
	mid := h0.Lerp(h1, 0.5)
	dst = quadratic(dst, p0, h0, mid, tolerance, depth+1)
	return quadratic(dst, mid, h1, p1, tolerance, depth+1)
}

// Cubic appends a polyline approximation of the cubic Bezier from p0 to p1
// with control handles h1, h2 to dst, excluding p0.
func Cubic(dst []vg.Point, p0, h1, h2, p1 vg.Point, tolerance float64) []vg.Point {
	return cubic(dst, p0, h1, h2, p1, tolerance, 0)
}

func cubic(dst []vg.Point, p0, h1, h2, p1 vg.Point, tolerance float64, depth int) []vg.Point {
	if depth >= maxDepth || cubicFlat(p0, h1, h2, p1, tolerance) {
		return append(dst, p1)
	}
	a0 := p0.Lerp(h1, 0.5)
	a1 := h1.Lerp(h2, 0.5)
	a2 := h2.Lerp(p1, 0.5)
	b0 := a0.Lerp(a1, 0.5)
	b1 := a1.Lerp(a2, 0.5)
	mid := b0.Lerp(b1, 0.5)
	dst = cubic(dst, p0, a0, b0, mid, tolerance, depth+1)
	return cubic(dst, mid, b1, a2, p1, tolerance, depth+1)
}

// quadFlat reports whether the control handle is within tolerance of the
// chord p0-p1.
func quadFlat(p0, handle, p1 vg.Point, tolerance float64) bool {
	// Distance from the handle to the chord midpoint baseline: the curve
	// deviates at most half the handle's deviation.
	mid := p0.Lerp(p1, 0.5)
	dev := handle.Sub(mid)
	return dev.Dot(dev) <= 4*tolerance*tolerance
}

// cubicFlat reports whether both control handles are within tolerance of
// the chord p0-p1.
func cubicFlat(p0, h1, h2, p1 vg.Point, tolerance float64) bool {
	// Compare each handle against its ideal position on the chord.
	d1 := h1.Sub(p0.Lerp(p1, 1.0/3.0))
	d2 := h2.Sub(p0.Lerp(p1, 2.0/3.0))
	limit := (3.0 / 4.0) * tolerance
	return d1.Dot(d1) <= limit*limit && d2.Dot(d2) <= limit*limit
}

func corrupt(index int) error {
	return fmt.Errorf("segment %d: %w", index, vg.ErrCorruptGeometry)
}
