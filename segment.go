package vg

// Segment is a single drawing instruction in a path's outline.
// This is a sealed interface - only types in this package implement it.
// Segment order is drawing order; a draw pass never reorders segments.
type Segment interface {
	segmentMarker()
}

// MoveTo starts a new subpath at Point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) segmentMarker() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) segmentMarker() {}

// QuadraticTo draws a quadratic Bezier curve to Point with a single
// control handle.
type QuadraticTo struct {
	Point  Point
	Handle Point
}

func (QuadraticTo) segmentMarker() {}

// CubicTo draws a cubic Bezier curve to Point with two control handles.
type CubicTo struct {
	Point   Point
	Handle1 Point
	Handle2 Point
}

func (CubicTo) segmentMarker() {}
