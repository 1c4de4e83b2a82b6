package vg

// cubicCircleRatio is the standard constant for approximating a quarter
// circle with a single cubic Bezier: the control handles sit at
// radius * cubicCircleRatio from the arc endpoints along the tangents,
// i.e. radius * (1 - cubicCircleRatio) from the enclosing corner.
const cubicCircleRatio = 0.5523

// GeometryBuilder accumulates path segments via chained calls and is
// consumed once into a PathBuilder.
type GeometryBuilder struct {
	segments []Segment
}

// NewGeometry starts an empty geometry builder.
func NewGeometry() *GeometryBuilder {
	return &GeometryBuilder{}
}

// MoveTo starts a new subpath at to.
func (g *GeometryBuilder) MoveTo(to Point) *GeometryBuilder {
	g.segments = append(g.segments, MoveTo{Point: to})
	return g
}

// LineTo draws a line to to.
func (g *GeometryBuilder) LineTo(to Point) *GeometryBuilder {
	g.segments = append(g.segments, LineTo{Point: to})
	return g
}

// QuadraticTo draws a quadratic Bezier curve to to with one control handle.
func (g *GeometryBuilder) QuadraticTo(to, handle Point) *GeometryBuilder {
	g.segments = append(g.segments, QuadraticTo{Point: to, Handle: handle})
	return g
}

// BezierTo draws a cubic Bezier curve to to with two control handles.
func (g *GeometryBuilder) BezierTo(to, handle1, handle2 Point) *GeometryBuilder {
	g.segments = append(g.segments, CubicTo{Point: to, Handle1: handle1, Handle2: handle2})
	return g
}

// Done consumes the geometry into a PathBuilder for styling.
func (g *GeometryBuilder) Done() *PathBuilder {
	return NewPathBuilder(g.segments)
}

// PathBuilder finalizes a segment sequence into an immutable Path,
// optionally attaching fill, stroke, shadow and a close flag.
type PathBuilder struct {
	closed   bool
	segments []Segment
	fill     *Fill
	stroke   *Stroke
	shadow   *Shadow
}

// NewPathBuilder starts a path builder over the given segments.
func NewPathBuilder(segments []Segment) *PathBuilder {
	return &PathBuilder{segments: segments}
}

// Close marks the path as closed: a closing segment back to the subpath
// start is synthesized at draw time.
func (b *PathBuilder) Close() *PathBuilder {
	b.closed = true
	return b
}

// Fill sets the fill style.
func (b *PathBuilder) Fill(fill Fill) *PathBuilder {
	b.fill = &fill
	return b
}

// Stroke sets the stroke style.
func (b *PathBuilder) Stroke(stroke Stroke) *PathBuilder {
	b.stroke = &stroke
	return b
}

// Shadow sets the drop shadow.
func (b *PathBuilder) Shadow(shadow Shadow) *PathBuilder {
	b.shadow = &shadow
	return b
}

// Finalize builds the path. The builder must not be reused afterwards.
func (b *PathBuilder) Finalize() *Path {
	return &Path{
		Orientation: Identity(),
		Segments:    b.segments,
		Stroke:      b.stroke,
		Fill:        b.fill,
		Shadow:      b.shadow,
		Closed:      b.closed,
	}
}

// Rectangle synthesizes a width x height rectangle anchored at the local
// origin. Dimensions are not validated; zero or negative values produce a
// degenerate path.
func Rectangle(width, height float64) *PathBuilder {
	return NewPathBuilder([]Segment{
		LineTo{Point: Pt(width, 0)},
		LineTo{Point: Pt(width, height)},
		LineTo{Point: Pt(0, height)},
	})
}

// RoundedRectangle synthesizes a rectangle with circular corner arcs of the
// given radius, each approximated by a single cubic Bezier.
func RoundedRectangle(width, height, radius float64) *PathBuilder {
	k := radius * (1 - cubicCircleRatio)
	return NewPathBuilder([]Segment{
		MoveTo{Point: Pt(radius, 0)},
		LineTo{Point: Pt(width-radius, 0)},
		CubicTo{
			Point:   Pt(width, radius),
			Handle1: Pt(width-k, 0),
			Handle2: Pt(width, k),
		},
		LineTo{Point: Pt(width, height-radius)},
		CubicTo{
			Point:   Pt(width-radius, height),
			Handle1: Pt(width, height-k),
			Handle2: Pt(width-k, height),
		},
		LineTo{Point: Pt(radius, height)},
		CubicTo{
			Point:   Pt(0, height-radius),
			Handle1: Pt(k, height),
			Handle2: Pt(0, height-k),
		},
		LineTo{Point: Pt(0, radius)},
		CubicTo{
			Point:   Pt(radius, 0),
			Handle1: Pt(0, k),
			Handle2: Pt(k, 0),
		},
	})
}

// Square synthesizes a square with the given side length.
func Square(sideLength float64) *PathBuilder {
	return Rectangle(sideLength, sideLength)
}

// RoundedSquare synthesizes a rounded square with the given side length and
// corner radius.
func RoundedSquare(sideLength, radius float64) *PathBuilder {
	return RoundedRectangle(sideLength, sideLength, radius)
}

// Circle synthesizes a circle of the given radius centered at
// (radius, radius), approximated by four cubic Beziers.
func Circle(radius float64) *PathBuilder {
	return Ellipse(radius, radius)
}

// Ellipse synthesizes an ellipse with the given radii, inscribed in the
// box (0,0)-(2rx,2ry).
func Ellipse(rx, ry float64) *PathBuilder {
	kx := rx * cubicCircleRatio
	ky := ry * cubicCircleRatio
	cx, cy := rx, ry
	return NewPathBuilder([]Segment{
		MoveTo{Point: Pt(cx+rx, cy)},
		CubicTo{Point: Pt(cx, cy+ry), Handle1: Pt(cx+rx, cy+ky), Handle2: Pt(cx+kx, cy+ry)},
		CubicTo{Point: Pt(cx-rx, cy), Handle1: Pt(cx-kx, cy+ry), Handle2: Pt(cx-rx, cy+ky)},
		CubicTo{Point: Pt(cx, cy-ry), Handle1: Pt(cx-rx, cy-ky), Handle2: Pt(cx-kx, cy-ry)},
		CubicTo{Point: Pt(cx+rx, cy), Handle1: Pt(cx+kx, cy-ry), Handle2: Pt(cx+rx, cy-ky)},
	})
}
