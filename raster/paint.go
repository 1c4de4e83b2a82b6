package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/vg"
)

// paintSource builds an image source for a texture. Gradient and pattern
// textures are defined in the path's local space, so the source carries
// the inverse of the path-to-device matrix and maps each device pixel
// back through it.
func paintSource(t vg.Texture, m vg.Matrix) (image.Image, error) {
	inv, ok := m.Invert()
	if !ok {
		inv = vg.Identity()
	}
	switch tex := t.(type) {
	case vg.Solid:
		return image.NewUniform(tex.Color), nil
	case *vg.LinearGradient:
		return &linearSource{grad: tex, inv: inv}, nil
	case *vg.RadialGradient:
		return &radialSource{grad: tex, inv: inv}, nil
	case vg.Pattern:
		viewer, ok := tex.Image.(vg.PixelViewer)
		if !ok {
			return nil, fmt.Errorf("raster: pattern image %T: %w", tex.Image, vg.ErrNoPixelAccess)
		}
		buf, err := viewer.PixelBuffer()
		if err != nil {
			return nil, fmt.Errorf("raster: pattern pixels: %w", err)
		}
		return &patternSource{rgba: buf, inv: inv}, nil
	default:
		return nil, fmt.Errorf("raster: unsupported texture %T", t)
	}
}

// paintUniform returns a single-color source.
func paintUniform(c vg.Color) image.Image {
	return image.NewUniform(c)
}

// infinite is the nominal bounds for procedural sources; the rasterizer
// only samples inside the destination rectangle.
var infinite = image.Rect(-1e9, -1e9, 1e9, 1e9)

// stopColorAt interpolates the stop list at offset t with pad extend.
// Stops are taken in the order the caller supplied them; out-of-order
// lists produce the caller's ordering, not a sorted one.
func stopColorAt(stops []vg.GradientStop, t float64) vg.Color {
	if len(stops) == 0 {
		return vg.Transparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			if b.Offset == a.Offset {
				return a.Color
			}
			f := (t - a.Offset) / (b.Offset - a.Offset)
			return a.Color.Lerp(b.Color, f)
		}
	}
	return stops[len(stops)-1].Color
}

type linearSource struct {
	grad *vg.LinearGradient
	inv  vg.Matrix
}

func (s *linearSource) ColorModel() color.Model { return color.RGBAModel }

func (s *linearSource) Bounds() image.Rectangle { return infinite }

func (s *linearSource) At(x, y int) color.Color {
	p := s.inv.TransformPoint(vg.Pt(float64(x)+0.5, float64(y)+0.5))
	axis := s.grad.End.Sub(s.grad.Start)
	den := axis.Dot(axis)
	if den == 0 {
		return stopColorAt(s.grad.Stops, 0)
	}
	t := p.Sub(s.grad.Start).Dot(axis) / den
	return stopColorAt(s.grad.Stops, t)
}

type radialSource struct {
	grad *vg.RadialGradient
	inv  vg.Matrix
}

func (s *radialSource) ColorModel() color.Model { return color.RGBAModel }

func (s *radialSource) Bounds() image.Rectangle { return infinite }

func (s *radialSource) At(x, y int) color.Color {
	p := s.inv.TransformPoint(vg.Pt(float64(x)+0.5, float64(y)+0.5))
	t, ok := radialT(s.grad, p)
	if !ok {
		return vg.Transparent
	}
	return stopColorAt(s.grad.Stops, t)
}

// radialT solves |p - lerp(c0, c1, t)| = lerp(r0, r1, t) for the largest
// valid t. False means no circle of the family reaches the point.
func radialT(g *vg.RadialGradient, p vg.Point) (float64, bool) {
	cd := g.End.Sub(g.Start)
	dr := g.EndRadius - g.StartRadius
	pd := p.Sub(g.Start)

	a := cd.Dot(cd) - dr*dr
	b := pd.Dot(cd) + g.StartRadius*dr
	c := pd.Dot(pd) - g.StartRadius*g.StartRadius

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		if g.StartRadius+t*dr < 0 {
			return 0, false
		}
		return t, true
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	for _, t := range [2]float64{(b + sq) / a, (b - sq) / a} {
		if g.StartRadius+t*dr >= 0 {
			return t, true
		}
	}
	return 0, false
}

type patternSource struct {
	rgba *image.RGBA
	inv  vg.Matrix
}

func (s *patternSource) ColorModel() color.Model { return color.RGBAModel }

func (s *patternSource) Bounds() image.Rectangle { return infinite }

func (s *patternSource) At(x, y int) color.Color {
	p := s.inv.TransformPoint(vg.Pt(float64(x)+0.5, float64(y)+0.5))
	px, py := int(math.Floor(p.X)), int(math.Floor(p.Y))
	if !(image.Point{X: px, Y: py}.In(s.rgba.Bounds())) {
		return color.RGBA{}
	}
	return s.rgba.RGBAAt(px, py)
}
