package raster

import (
	"testing"

	"github.com/gogpu/vg"
)

func TestSurfaceClearAndSnapshot(t *testing.T) {
	s := NewSurface(4, 4)
	s.Clear(vg.Red)
	rgba, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if c := rgba.RGBAAt(2, 2); c.R != 255 || c.G != 0 || c.A != 255 {
		t.Errorf("cleared pixel = %v, want red", c)
	}
}

func TestSurfaceSnapshotIsCopy(t *testing.T) {
	s := NewSurface(2, 2)
	s.Clear(vg.White)
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	s.Clear(vg.Black)
	if c := snap.RGBAAt(0, 0); c.R != 255 {
		t.Errorf("snapshot mutated by later draw: %v", c)
	}
}

func TestSurfaceZeroSized(t *testing.T) {
	s := NewSurface(0, 0)
	s.Clear(vg.Black)
	s.FillRings([][]vg.Point{{vg.Pt(0, 0), vg.Pt(1, 0), vg.Pt(1, 1)}}, paintUniform(vg.Black))
	if _, err := s.Snapshot(); err != nil {
		t.Fatalf("Snapshot on empty surface: %v", err)
	}
}

func TestSurfaceNegativeSizeClamped(t *testing.T) {
	s := NewSurface(-3, 5)
	w, h := s.Size()
	if w != 0 || h != 5 {
		t.Errorf("Size = %d,%d, want 0,5", w, h)
	}
}

func TestSurfaceFillRingsNonZeroWinding(t *testing.T) {
	s := NewSurface(20, 20)
	s.Clear(vg.White)
	// Outer ring clockwise, inner ring counter-clockwise: the hole
	// stays unfilled under non-zero winding.
	outer := []vg.Point{vg.Pt(2, 2), vg.Pt(18, 2), vg.Pt(18, 18), vg.Pt(2, 18)}
	inner := []vg.Point{vg.Pt(6, 6), vg.Pt(6, 14), vg.Pt(14, 14), vg.Pt(14, 6)}
	s.FillRings([][]vg.Point{outer, inner}, paintUniform(vg.Black))

	rgba, err := s.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if c := rgba.RGBAAt(4, 10); c.R > 60 {
		t.Errorf("ring band = %v, want black", c)
	}
	if c := rgba.RGBAAt(10, 10); c.R < 200 {
		t.Errorf("hole = %v, want white", c)
	}
}

func TestSurfaceCompose(t *testing.T) {
	dst := NewSurface(4, 4)
	dst.Clear(vg.White)
	src := NewSurface(4, 4)
	src.FillRings([][]vg.Point{{vg.Pt(0, 0), vg.Pt(4, 0), vg.Pt(4, 4), vg.Pt(0, 4)}},
		paintUniform(vg.RGBA(0, 0, 255, 255)))
	dst.Compose(src)

	rgba, err := dst.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if c := rgba.RGBAAt(2, 2); c.B < 200 {
		t.Errorf("composed pixel = %v, want blue", c)
	}
}
