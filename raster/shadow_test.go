package raster

import (
	"testing"

	"github.com/gogpu/vg"
)

func shadowedRect(shadow vg.Shadow) *vg.Path {
	p := vg.Rectangle(40, 40).Shadow(shadow).Finalize()
	return p
}

func TestShadowPaintedBeneathFill(t *testing.T) {
	f := newTestFrame(120, 120)
	rect := vg.Rectangle(40, 40).
		Fill(solidFill(vg.Red)).
		Shadow(vg.NewShadow(vg.Black).WithOffset(vg.Pt(15, 15))).
		Finalize()
	f.Add(vg.NewContent(rect).WithTransform(vg.Translate(30, 30)))
	rgba := pixels(t, f)

	// The fill covers [30,70]; the shadow pokes out at [70,85].
	if c := rgba.RGBAAt(50, 50); c.R < 200 || c.G > 60 {
		t.Errorf("fill pixel = %v, want red on top of shadow", c)
	}
	if c := rgba.RGBAAt(80, 80); c.R > 60 {
		t.Errorf("offset shadow pixel = %v, want black", c)
	}
	if c := rgba.RGBAAt(110, 110); c.R != 255 || c.G != 255 {
		t.Errorf("pixel outside shadow = %v, want white", c)
	}
}

func TestShadowSpreadGrowsFootprint(t *testing.T) {
	f := newTestFrame(120, 120)
	rect := shadowedRect(vg.NewShadow(vg.Black).WithSpread(6))
	f.Add(vg.NewContent(rect).WithTransform(vg.Translate(40, 40)))
	rgba := pixels(t, f)

	// Geometry spans [40,80]; spread 6 grows the shadow to [34,86].
	if c := rgba.RGBAAt(36, 60); c.R > 60 {
		t.Errorf("spread pixel left of geometry = %v, want black", c)
	}
	if c := rgba.RGBAAt(84, 60); c.R > 60 {
		t.Errorf("spread pixel right of geometry = %v, want black", c)
	}
	if c := rgba.RGBAAt(28, 60); c.R != 255 {
		t.Errorf("pixel beyond spread = %v, want white", c)
	}
}

// countTransition counts scanline pixels that are neither background
// white nor full shadow black, which measures edge softness.
func countTransition(t *testing.T, f *Frame, y int) int {
	t.Helper()
	rgba := pixels(t, f)
	n := 0
	for x := 0; x < rgba.Bounds().Dx(); x++ {
		c := rgba.RGBAAt(x, y)
		if c.R > 20 && c.R < 235 {
			n++
		}
	}
	return n
}

func TestShadowBlurSoftensEdges(t *testing.T) {
	sharp := newTestFrame(120, 120)
	sharp.Add(vg.NewContent(shadowedRect(vg.NewShadow(vg.Black))).
		WithTransform(vg.Translate(40, 40)))

	blurred := newTestFrame(120, 120)
	blurred.Add(vg.NewContent(shadowedRect(vg.NewShadow(vg.Black).WithBlur(6))).
		WithTransform(vg.Translate(40, 40)))

	sharpN := countTransition(t, sharp, 60)
	blurredN := countTransition(t, blurred, 60)
	if blurredN <= sharpN {
		t.Errorf("blurred transition pixels = %d, sharp = %d; blur did not soften the edge",
			blurredN, sharpN)
	}
	// The shadow core stays dark.
	rgba := pixels(t, blurred)
	if c := rgba.RGBAAt(60, 60); c.R > 80 {
		t.Errorf("blurred shadow center = %v, want dark", c)
	}
}

func TestShadowBlurScalesWithPixelRatio(t *testing.T) {
	unit := NewFrame()
	unit.Resize(vg.Pt(120, 120))
	unit.Add(vg.NewContent(shadowedRect(vg.NewShadow(vg.Black).WithBlur(4))).
		WithTransform(vg.Translate(40, 40)))

	dense := NewFrame(WithPixelRatio(2))
	dense.Resize(vg.Pt(120, 120))
	dense.SetViewport(vg.Rect{Size: vg.Pt(120, 120)})
	dense.Add(vg.NewContent(shadowedRect(vg.NewShadow(vg.Black).WithBlur(4))).
		WithTransform(vg.Translate(40, 40)))

	if d, u := countTransition(t, dense, 60), countTransition(t, unit, 60); d <= u {
		t.Errorf("pixel ratio 2 transition = %d, ratio 1 = %d; sigma should scale", d, u)
	}
}
