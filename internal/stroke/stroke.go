// Package stroke converts flattened polyline contours into fillable stroke
// outlines.
//
// A stroke becomes a fill: the outline offsets the polyline by half the
// stroke width on both sides, connects the sides with caps, and shapes the
// corners with joins. Inner corners are left self-intersecting; the
// non-zero winding rule of the rasterizer resolves the overlap.
package stroke

import (
	"math"

	"github.com/gogpu/vg"
)

// arcStep is the angular step, in radians, used when sampling round caps
// and joins.
const arcStep = 0.25

// defaultMiterLimit matches the common SVG default.
const defaultMiterLimit = 4.0

// Options describes the stroke geometry.
type Options struct {
	Width float64
	Cap   vg.StrokeCap
	Join  vg.StrokeJoin

	// MiterLimit is the ratio of miter length to stroke width above which
	// a miter join falls back to a bevel. Zero means the default (4).
	MiterLimit float64
}

// Outline expands one contour into fill rings. An open contour yields a
// single ring; a closed contour yields an outer ring and an opposite-wound
// inner ring so the non-zero fill leaves the middle hollow.
func Outline(pts []vg.Point, closed bool, o Options) [][]vg.Point {
	if o.Width <= 0 {
		return nil
	}
	if o.MiterLimit <= 0 {
		o.MiterLimit = defaultMiterLimit
	}
	pts = dedupe(pts)
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	half := o.Width / 2
	switch len(pts) {
	case 0:
		return nil
	case 1:
		// A zero-length subpath draws a dot only with round caps.
		if o.Cap != vg.CapRound {
			return nil
		}
		return [][]vg.Point{circle(pts[0], half)}
	}

	if closed && len(pts) >= 3 {
		outer := closedSide(pts, half, +1, o)
		inner := closedSide(pts, half, -1, o)
		reverse(inner)
		return [][]vg.Point{outer, inner}
	}
	return [][]vg.Point{openRing(pts, half, o)}
}

// openRing builds the single outline ring of an open polyline: forward
// side, end cap, backward side, start cap.
func openRing(pts []vg.Point, half float64, o Options) []vg.Point {
	ring := side(pts, half, o)

	// End cap around the last point.
	last := pts[len(pts)-1]
	dir := last.Sub(pts[len(pts)-2]).Normalize()
	ring = appendCap(ring, last, leftNormal(dir).Mul(half), o.Cap)

	// Backward side: the left side of the reversed polyline.
	rev := make([]vg.Point, len(pts))
	for i, p := range pts {
		rev[len(pts)-1-i] = p
	}
	ring = append(ring, side(rev, half, o)...)

	// Start cap back toward the ring start.
	first := pts[0]
	backDir := first.Sub(pts[1]).Normalize()
	ring = appendCap(ring, first, leftNormal(backDir).Mul(half), o.Cap)
	return ring
}

// side builds one offset side of an open polyline, joins included.
func side(pts []vg.Point, half float64, o Options) []vg.Point {
	var out []vg.Point
	d0 := pts[1].Sub(pts[0]).Normalize()
	out = append(out, pts[0].Add(leftNormal(d0).Mul(half)))
	for i := 1; i < len(pts)-1; i++ {
		din := pts[i].Sub(pts[i-1]).Normalize()
		dout := pts[i+1].Sub(pts[i]).Normalize()
		out = appendJoin(out, pts[i], din, dout, half, +1, o)
	}
	dl := pts[len(pts)-1].Sub(pts[len(pts)-2]).Normalize()
	return append(out, pts[len(pts)-1].Add(leftNormal(dl).Mul(half)))
}

// closedSide builds one offset ring of a closed polyline with a join at
// every vertex, including the wrap-around.
func closedSide(pts []vg.Point, half float64, sideSign float64, o Options) []vg.Point {
	n := len(pts)
	var out []vg.Point
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		din := pts[i].Sub(prev).Normalize()
		dout := next.Sub(pts[i]).Normalize()
		out = appendJoin(out, pts[i], din, dout, half, sideSign, o)
	}
	return out
}

// appendJoin emits the offset points for one vertex on one side.
// din and dout are the unit directions entering and leaving the vertex.
func appendJoin(out []vg.Point, p, din, dout vg.Point, half, sideSign float64, o Options) []vg.Point {
	n0 := leftNormal(din).Mul(half * sideSign)
	n1 := leftNormal(dout).Mul(half * sideSign)
	a := p.Add(n0)
	b := p.Add(n1)

	cross := din.Cross(dout)
	if math.Abs(cross) < 1e-12 {
		if din.Dot(dout) > 0 {
			// Straight through; one point suffices.
			return append(out, b)
		}
		// Full reversal folds the side back on itself.
		return append(out, a, b)
	}

	// The side is on the outside of the turn when the turn bends away
	// from it.
	outer := cross*sideSign > 0
	if !outer {
		// Inner side of the turn: the adjacent offset lines cross at the
		// inset corner. A near-reversal pushes the crossing far away, so
		// past the miter limit the raw offsets connect directly and
		// winding absorbs the overlap.
		mdir := n0.Add(n1).Normalize()
		cosHalf := mdir.Dot(n0.Normalize())
		if cosHalf > 1e-6 && 1/cosHalf <= o.MiterLimit {
			return append(out, p.Add(mdir.Mul(half/cosHalf)))
		}
		return append(out, a, b)
	}

	switch o.Join {
	case vg.JoinRound:
		out = append(out, a)
		out = appendArc(out, p, n0, n1, sideSign > 0)
		return append(out, b)
	case vg.JoinBevel:
		return append(out, a, b)
	default: // miter
		mdir := n0.Add(n1).Normalize()
		cosHalf := mdir.Dot(n0.Normalize())
		if cosHalf > 1e-6 && 1/cosHalf <= o.MiterLimit {
			return append(out, a, p.Add(mdir.Mul(half/cosHalf)), b)
		}
		return append(out, a, b)
	}
}

// appendCap emits cap geometry from offset +n to offset -n around p.
// Butt caps need no extra points; the ring edges connect directly.
func appendCap(out []vg.Point, p, n vg.Point, style vg.StrokeCap) []vg.Point {
	if style != vg.CapRound {
		return out
	}
	return appendArc(out, p, n, n.Mul(-1), true)
}

// appendArc samples an arc around center from offset vector n0 to n1.
// ccw selects the sweep direction in angle space.
func appendArc(out []vg.Point, center, n0, n1 vg.Point, ccw bool) []vg.Point {
	r := n0.Length()
	a0 := math.Atan2(n0.Y, n0.X)
	a1 := math.Atan2(n1.Y, n1.X)
	if ccw {
		for a1 < a0 {
			a1 += 2 * math.Pi
		}
		for a := a0 + arcStep; a < a1; a += arcStep {
			out = append(out, center.Add(vg.Pt(math.Cos(a)*r, math.Sin(a)*r)))
		}
	} else {
		for a1 > a0 {
			a1 -= 2 * math.Pi
		}
		for a := a0 - arcStep; a > a1; a -= arcStep {
			out = append(out, center.Add(vg.Pt(math.Cos(a)*r, math.Sin(a)*r)))
		}
	}
	return out
}

// circle returns a sampled full circle ring.
func circle(center vg.Point, r float64) []vg.Point {
	var out []vg.Point
	for a := 0.0; a < 2*math.Pi; a += arcStep {
		out = append(out, center.Add(vg.Pt(math.Cos(a)*r, math.Sin(a)*r)))
	}
	return out
}

// leftNormal returns the unit normal on the left of direction d in y-down
// screen coordinates.
func leftNormal(d vg.Point) vg.Point {
	return vg.Point{X: d.Y, Y: -d.X}
}

// reverse flips a ring in place, turning its winding around.
func reverse(pts []vg.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func dedupe(pts []vg.Point) []vg.Point {
	if len(pts) < 2 {
		return pts
	}
	out := pts[:1]
	for _, p := range pts[1:] {
		last := out[len(out)-1]
		if p.Sub(last).Length() > 1e-12 {
			out = append(out, p)
		}
	}
	return out
}
