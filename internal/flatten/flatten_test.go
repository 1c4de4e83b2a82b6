package flatten

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/vg"
)

func TestPathImplicitOriginStart(t *testing.T) {
	contours, err := Path([]vg.Segment{
		vg.LineTo{Point: vg.Pt(10, 0)},
		vg.LineTo{Point: vg.Pt(10, 10)},
	}, false, 0.1)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
	if got := contours[0].Points[0]; got != vg.Pt(0, 0) {
		t.Errorf("first point = %v, want origin", got)
	}
}

func TestPathMoveToBreaksSubpath(t *testing.T) {
	contours, err := Path([]vg.Segment{
		vg.LineTo{Point: vg.Pt(10, 0)},
		vg.MoveTo{Point: vg.Pt(20, 20)},
		vg.LineTo{Point: vg.Pt(30, 20)},
	}, true, 0.1)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if len(contours) != 2 {
		t.Fatalf("got %d contours, want 2", len(contours))
	}
	if contours[0].Closed {
		t.Error("first contour should not be closed")
	}
	if !contours[1].Closed {
		t.Error("closing flag must apply to the final contour")
	}
	if got := contours[1].Points[0]; got != vg.Pt(20, 20) {
		t.Errorf("second contour starts at %v, want (20,20)", got)
	}
}

func TestPathCorruptGeometry(t *testing.T) {
	_, err := Path([]vg.Segment{
		vg.LineTo{Point: vg.Pt(math.NaN(), 0)},
	}, false, 0.1)
	if !errors.Is(err, vg.ErrCorruptGeometry) {
		t.Fatalf("err = %v, want ErrCorruptGeometry", err)
	}
}

// evalQuad evaluates a quadratic Bezier directly.
func evalQuad(p0, handle, p1 vg.Point, t float64) vg.Point {
	a := p0.Lerp(handle, t)
	b := handle.Lerp(p1, t)
	return a.Lerp(b, t)
}

// evalCubic evaluates a cubic Bezier directly.
func evalCubic(p0, h1, h2, p1 vg.Point, t float64) vg.Point {
	a := p0.Lerp(h1, t)
	b := h1.Lerp(h2, t)
	c := h2.Lerp(p1, t)
	ab := a.Lerp(b, t)
	bc := b.Lerp(c, t)
	return ab.Lerp(bc, t)
}

// distToPolyline returns the minimum distance from p to the polyline.
func distToPolyline(pts []vg.Point, p vg.Point) float64 {
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		ab := b.Sub(a)
		t := 0.0
		if l2 := ab.Dot(ab); l2 > 0 {
			t = p.Sub(a).Dot(ab) / l2
			t = math.Max(0, math.Min(1, t))
		}
		if d := p.Distance(a.Lerp(b, t)); d < best {
			best = d
		}
	}
	return best
}

func TestQuadraticWithinTolerance(t *testing.T) {
	p0, handle, p1 := vg.Pt(0, 0), vg.Pt(50, 100), vg.Pt(100, 0)
	const tol = 0.1
	pts := Quadratic([]vg.Point{p0}, p0, handle, p1, tol)

	if pts[len(pts)-1] != p1 {
		t.Fatalf("polyline must end at %v, got %v", p1, pts[len(pts)-1])
	}
	for _, tv := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		on := evalQuad(p0, handle, p1, tv)
		if d := distToPolyline(pts, on); d > tol*2 {
			t.Errorf("t=%v: curve point %v is %v from polyline, want <= %v", tv, on, d, tol*2)
		}
	}
}

func TestCubicWithinTolerance(t *testing.T) {
	p0, h1, h2, p1 := vg.Pt(0, 0), vg.Pt(0, 80), vg.Pt(100, 80), vg.Pt(100, 0)
	const tol = 0.1
	pts := Cubic([]vg.Point{p0}, p0, h1, h2, p1, tol)

	for _, tv := range []float64{0.2, 0.4, 0.6, 0.8} {
		on := evalCubic(p0, h1, h2, p1, tv)
		if d := distToPolyline(pts, on); d > tol*2 {
			t.Errorf("t=%v: curve point is %v from polyline, want <= %v", tv, d, tol*2)
		}
	}
}

func TestQuadraticPromotedToCubicTracesSameCurve(t *testing.T) {
	// Degree elevation: the cubic with handles 2/3 of the way from each
	// endpoint toward the quadratic handle traces exactly the same curve.
	// Sampled parameter values must land on the flattened cubic within the
	// flattening tolerance.
	p0, handle, p1 := vg.Pt(0, 0), vg.Pt(40, 90), vg.Pt(80, 0)
	const tol = 0.05
	h1 := p0.Lerp(handle, 2.0/3.0)
	h2 := p1.Lerp(handle, 2.0/3.0)
	cubicPts := Cubic([]vg.Point{p0}, p0, h1, h2, p1, tol)

	for _, tv := range []float64{0.25, 0.5, 0.75} {
		on := evalQuad(p0, handle, p1, tv)
		if d := distToPolyline(cubicPts, on); d > 2*tol {
			t.Errorf("t=%v: elevated cubic deviates %v from quadratic, want <= %v", tv, d, 2*tol)
		}
	}
}

func TestDegenerateSegmentsDoNotExplode(t *testing.T) {
	// Zero-length curves and repeated points flatten without error.
	contours, err := Path([]vg.Segment{
		vg.LineTo{Point: vg.Pt(0, 0)},
		vg.QuadraticTo{Point: vg.Pt(0, 0), Handle: vg.Pt(0, 0)},
		vg.CubicTo{Point: vg.Pt(0, 0), Handle1: vg.Pt(0, 0), Handle2: vg.Pt(0, 0)},
	}, false, 0.1)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if len(contours) != 1 {
		t.Fatalf("got %d contours, want 1", len(contours))
	}
}
