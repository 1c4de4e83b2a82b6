package vg

import "math"

// Path is a drawable vector outline: an ordered sequence of segments that
// implicitly starts at the local origin, plus optional stroke, fill and
// shadow styling and a local transform.
//
// Paths are built through the GeometryBuilder / PathBuilder chain and are
// not mutated after Finalize.
type Path struct {
	// Orientation is the path's local transform, applied on top of the
	// owning object's transform at draw time.
	Orientation Matrix

	// Segments is the outline in drawing order.
	Segments []Segment

	// Stroke, Fill and Shadow are optional; nil disables the pass.
	Stroke *Stroke
	Fill   *Fill
	Shadow *Shadow

	// Closed synthesizes a closing segment back to the subpath start.
	Closed bool
}

func (*Path) rasterizableMarker() {}

// Bounds returns the axis-aligned bounding box of the path's control
// polygon, including the implicit origin start. Curve control handles are
// included, so the box may be slightly larger than the traced curve.
func (p *Path) Bounds() Rect {
	minX, minY := 0.0, 0.0
	maxX, maxY := 0.0, 0.0

	extend := func(pt Point) {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}

	for _, seg := range p.Segments {
		switch s := seg.(type) {
		case MoveTo:
			extend(s.Point)
		case LineTo:
			extend(s.Point)
		case QuadraticTo:
			extend(s.Point)
			extend(s.Handle)
		case CubicTo:
			extend(s.Point)
			extend(s.Handle1)
			extend(s.Handle2)
		}
	}

	return Rect{
		Position: Point{X: minX, Y: minY},
		Size:     Point{X: maxX - minX, Y: maxY - minY},
	}
}
