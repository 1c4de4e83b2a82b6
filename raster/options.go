package raster

import (
	"sync"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/text"
)

type frameState struct {
	mu         sync.RWMutex
	surface    *Surface
	viewport   vg.Rect
	size       vg.Point
	pixelRatio float64
	background vg.Color
	tolerance  float64
	shaper     *text.Shaper
	objects    arena
}

// Option configures a Frame at construction time.
type Option func(*frameState)

// WithPixelRatio sets the device-to-logical scale factor.
func WithPixelRatio(ratio float64) Option {
	return func(st *frameState) {
		if ratio > 0 {
			st.pixelRatio = ratio
		}
	}
}

// WithBackground sets the color the surface is cleared to before each
// draw pass. The default is opaque white.
func WithBackground(c vg.Color) Option {
	return func(st *frameState) { st.background = c }
}

// WithTolerance sets the maximum chord deviation, in local units, used
// when flattening curves.
func WithTolerance(tol float64) Option {
	return func(st *frameState) {
		if tol > 0 {
			st.tolerance = tol
		}
	}
}

// WithShaper attaches a text shaper. Frames without one skip text
// content with a warning.
func WithShaper(s *text.Shaper) Option {
	return func(st *frameState) { st.shaper = s }
}
