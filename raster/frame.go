package raster

import (
	"fmt"
	"math"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/internal/blur"
	"github.com/gogpu/vg/internal/flatten"
	"github.com/gogpu/vg/internal/stroke"
)

// Frame renders an object graph onto a CPU surface. It implements
// vg.Frame. Clones share the same underlying state, so a presentation
// loop and a scene-building goroutine can hold separate Frame values
// over one surface.
type Frame struct {
	st *frameState
}

var _ vg.Frame = (*Frame)(nil)

// NewFrame creates an empty frame with a zero-sized surface. Call
// Resize before drawing produces pixels.
func NewFrame(opts ...Option) *Frame {
	st := &frameState{
		surface:    NewSurface(0, 0),
		pixelRatio: 1,
		background: vg.White,
		tolerance:  flatten.DefaultTolerance,
	}
	for _, opt := range opts {
		opt(st)
	}
	return &Frame{st: st}
}

// Add places content into the frame. The returned handle stays valid
// until Remove; objects draw in insertion order.
func (f *Frame) Add(c vg.Content) vg.Object {
	return f.st.objects.add(c)
}

// Remove deletes an object. The handle and all its aliases become
// stale; operations on stale handles are no-ops.
func (f *Frame) Remove(obj vg.Object) {
	h, ok := obj.(*Object)
	if !ok || h.arena != &f.st.objects {
		return
	}
	h.arena.remove(h.index, h.gen)
}

// SetViewport sets the world rectangle mapped onto the surface.
func (f *Frame) SetViewport(r vg.Rect) {
	f.st.mu.Lock()
	f.st.viewport = r
	f.st.mu.Unlock()
}

// Resize replaces the backing surface with one of the given pixel size.
// Non-positive sizes are ignored and the old surface stays.
func (f *Frame) Resize(size vg.Point) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	f.st.mu.Lock()
	f.st.size = size
	f.st.surface = NewSurface(int(math.Round(size.X)), int(math.Round(size.Y)))
	f.st.mu.Unlock()
}

// Size returns the surface size in pixels.
func (f *Frame) Size() vg.Point {
	f.st.mu.RLock()
	defer f.st.mu.RUnlock()
	return f.st.size
}

// SetPixelRatio sets the device-to-logical scale used for shadow blur.
func (f *Frame) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		return
	}
	f.st.mu.Lock()
	f.st.pixelRatio = ratio
	f.st.mu.Unlock()
}

// Measure returns the local-space extent of a drawable. Paths measure
// their geometry bounds; text is measured by the frame's shaper.
func (f *Frame) Measure(r vg.Rasterizable) vg.Point {
	switch c := r.(type) {
	case *vg.Path:
		return c.Bounds().Size
	case *vg.Text:
		f.st.mu.RLock()
		shaper := f.st.shaper
		f.st.mu.RUnlock()
		if shaper == nil {
			return vg.Point{}
		}
		size, err := shaper.Measure(c)
		if err != nil {
			vg.Logger().Warn("measure text", "error", err)
			return vg.Point{}
		}
		return size
	default:
		return vg.Point{}
	}
}

// Draw renders every object onto the surface in insertion order. The
// first failing object aborts the pass.
func (f *Frame) Draw() error {
	st := f.st
	st.mu.RLock()
	surface := st.surface
	vp := st.viewport
	size := st.size
	ratio := st.pixelRatio
	bg := st.background
	tol := st.tolerance
	shaper := st.shaper
	st.mu.RUnlock()

	w, h := surface.Size()
	if w == 0 || h == 0 {
		return nil
	}
	if vp.Size.X == 0 || vp.Size.Y == 0 {
		vp = vg.Rect{Size: vg.Pt(size.X/ratio, size.Y/ratio)}
	}

	surface.Clear(bg)
	base := vg.Scale(size.X/vp.Size.X, size.Y/vp.Size.Y).
		Multiply(vg.Translate(-vp.Position.X, -vp.Position.Y))

	for _, obj := range st.objects.snapshot() {
		content, transform := obj.read()
		world := base.Multiply(transform)
		switch c := content.(type) {
		case *vg.Path:
			if err := drawPath(surface, world, c, ratio, tol); err != nil {
				return fmt.Errorf("raster: draw path: %w", err)
			}
		case *vg.Text:
			if shaper == nil {
				vg.Logger().Warn("text drawn without a shaper", "content", c.Content)
				continue
			}
			paths, err := shaper.Paths(c)
			if err != nil {
				return fmt.Errorf("raster: shape text: %w", err)
			}
			for _, p := range paths {
				if err := drawPath(surface, world, p, ratio, tol); err != nil {
					return fmt.Errorf("raster: draw glyph: %w", err)
				}
			}
		}
	}
	return nil
}

// Image draws and snapshots the surface. The snapshot is an independent
// pixel copy; later draws do not affect it.
func (f *Frame) Image() (vg.Image, error) {
	if err := f.Draw(); err != nil {
		return nil, err
	}
	f.st.mu.RLock()
	surface := f.st.surface
	f.st.mu.RUnlock()
	rgba, err := surface.Snapshot()
	if err != nil {
		return nil, err
	}
	return &Image{rgba: rgba}, nil
}

// Snapshot returns the raw pixels without redrawing. It fails with
// vg.ErrSurfaceBusy while a draw holds the surface.
func (f *Frame) Snapshot() (*Image, error) {
	f.st.mu.RLock()
	surface := f.st.surface
	f.st.mu.RUnlock()
	rgba, err := surface.Snapshot()
	if err != nil {
		return nil, err
	}
	return &Image{rgba: rgba}, nil
}

// Clone returns a frame over the same state. Objects added through
// either value are visible to both.
func (f *Frame) Clone() vg.Frame {
	return &Frame{st: f.st}
}

// Rasterize renders a single piece of content into an image of the
// given pixel size.
func Rasterize(c vg.Content, size vg.Point, opts ...Option) (*Image, error) {
	f := NewFrame(opts...)
	f.Resize(size)
	f.Add(c)
	img, err := f.Image()
	if err != nil {
		return nil, err
	}
	return img.(*Image), nil
}

// drawPath renders one path: shadow, then stroke, then fill.
func drawPath(surface *Surface, world vg.Matrix, path *vg.Path, ratio, tol float64) error {
	m := world.Multiply(path.Orientation)
	contours, err := flatten.Path(path.Segments, path.Closed, tol)
	if err != nil {
		return err
	}

	if path.Shadow != nil {
		if err := drawShadow(surface, m, path, contours, ratio); err != nil {
			return err
		}
	}

	if path.Stroke != nil {
		src, err := paintSource(path.Stroke.Content, m)
		if err != nil {
			return err
		}
		opts := stroke.Options{
			Width: path.Stroke.Width,
			Cap:   path.Stroke.Cap,
			Join:  path.Stroke.Join,
		}
		var rings [][]vg.Point
		for _, c := range contours {
			for _, ring := range stroke.Outline(c.Points, c.Closed, opts) {
				rings = append(rings, transformPoints(ring, m))
			}
		}
		surface.FillRings(rings, src)
	}

	if path.Fill != nil {
		src, err := paintSource(path.Fill.Content, m)
		if err != nil {
			return err
		}
		rings := make([][]vg.Point, 0, len(contours))
		for _, c := range contours {
			rings = append(rings, transformPoints(c.Points, m))
		}
		surface.FillRings(rings, src)
	}
	return nil
}

// drawShadow fills the geometry, grown by the spread and shifted by the
// offset, into a scratch layer, blurs it, and composites it under the
// shape. The spread scales about the geometry center, so the scale is
// compensated by half the growth.
func drawShadow(surface *Surface, m vg.Matrix, path *vg.Path, contours []flatten.Contour, ratio float64) error {
	sh := path.Shadow
	size := path.Bounds().Size
	grow := sh.Spread * 2
	scale := vg.Pt(1, 1)
	if size.X > 0 {
		scale.X = (size.X + grow) / size.X
	}
	if size.Y > 0 {
		scale.Y = (size.Y + grow) / size.Y
	}
	shadowM := m.
		Multiply(vg.Translate(sh.Offset.X-grow/2, sh.Offset.Y-grow/2)).
		Multiply(vg.Scale(scale.X, scale.Y))

	w, h := surface.Size()
	scratch := NewSurface(w, h)
	rings := make([][]vg.Point, 0, len(contours))
	for _, c := range contours {
		rings = append(rings, transformPoints(c.Points, shadowM))
	}
	scratch.FillRings(rings, paintUniform(sh.Color))

	if sh.Blur > 0 {
		sigma := sh.Blur * ratio
		err := scratch.Blur(func(pix []uint8, w, h int) error {
			if err := blur.Gaussian(pix, w, h, sigma); err != nil {
				return err
			}
			return blur.GaussianChannel(pix, w, h, sigma, 3)
		})
		if err != nil {
			return err
		}
	}

	surface.Compose(scratch)
	return nil
}

func transformPoints(pts []vg.Point, m vg.Matrix) []vg.Point {
	out := make([]vg.Point, len(pts))
	for i, p := range pts {
		out[i] = m.TransformPoint(p)
	}
	return out
}
