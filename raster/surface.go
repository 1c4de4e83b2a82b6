package raster

import (
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/vector"

	"github.com/gogpu/vg"
)

// Surface is a CPU pixel target. All drawing operations take the surface
// lock; Snapshot only try-locks, so a snapshot racing a draw reports
// vg.ErrSurfaceBusy instead of blocking or tearing.
type Surface struct {
	mu     sync.Mutex
	rgba   *image.RGBA
	ras    *vector.Rasterizer
	width  int
	height int
}

// NewSurface allocates a surface of the given pixel size.
// Negative dimensions are clamped to zero; a zero-sized surface accepts
// draws as no-ops.
func NewSurface(width, height int) *Surface {
	width = max(width, 0)
	height = max(height, 0)
	return &Surface{
		rgba:   image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:    vector.NewRasterizer(width, height),
		width:  width,
		height: height,
	}
}

// Size returns the surface dimensions in pixels.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Clear fills the whole surface with a single color.
func (s *Surface) Clear(c vg.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draw.Draw(s.rgba, s.rgba.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRings rasterizes a set of closed rings with non-zero winding and
// composites src over the surface. Ring points are in device pixels.
func (s *Surface) FillRings(rings [][]vg.Point, src image.Image) {
	if s.width == 0 || s.height == 0 || len(rings) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ras.Reset(s.width, s.height)
	s.ras.DrawOp = draw.Over
	any := false
	for _, ring := range rings {
		if len(ring) < 2 {
			continue
		}
		any = true
		s.ras.MoveTo(float32(ring[0].X), float32(ring[0].Y))
		for _, p := range ring[1:] {
			s.ras.LineTo(float32(p.X), float32(p.Y))
		}
		s.ras.ClosePath()
	}
	if !any {
		return
	}
	s.ras.Draw(s.rgba, s.rgba.Bounds(), src, image.Point{})
}

// Compose draws other over this surface at the origin.
func (s *Surface) Compose(other *Surface) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draw.Draw(s.rgba, s.rgba.Bounds(), other.rgba, image.Point{}, draw.Over)
}

// Blur applies a Gaussian approximation to the surface pixels in place
// using fn, called with the raw RGBA bytes. The surface lock is held for
// the duration.
func (s *Surface) Blur(fn func(pix []uint8, w, h int) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.rgba.Pix, s.width, s.height)
}

// Snapshot copies the current pixels. It fails with vg.ErrSurfaceBusy
// when a drawing operation holds the surface.
func (s *Surface) Snapshot() (*image.RGBA, error) {
	if !s.mu.TryLock() {
		return nil, vg.ErrSurfaceBusy
	}
	defer s.mu.Unlock()
	out := image.NewRGBA(s.rgba.Bounds())
	copy(out.Pix, s.rgba.Pix)
	return out, nil
}
