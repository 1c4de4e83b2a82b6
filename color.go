package vg

// Color is an 8-bit-per-channel RGBA color. Channel values are stored
// non-premultiplied; compositing always normalizes a channel byte to the
// [0, 1] float range as byte/255 with no gamma correction.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from 8-bit channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates a fully opaque color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Common colors.
var (
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// WithAlpha returns a copy of the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Floats returns the color channels normalized to [0, 1].
func (c Color) Floats() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}

// RGBA implements image/color.Color, returning alpha-premultiplied 16-bit
// channels. This lets a Color act directly as a paint source for the
// standard library image pipeline.
func (c Color) RGBA() (r, g, b, a uint32) {
	a16 := uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a16 / 0xffff
	g = uint32(c.G) * 0x101 * a16 / 0xffff
	b = uint32(c.B) * 0x101 * a16 / 0xffff
	return r, g, b, a16
}

// Lerp linearly interpolates each channel toward q.
// t=0 returns c, t=1 returns q. No gamma correction is applied.
func (c Color) Lerp(q Color, t float64) Color {
	lerp := func(a, b uint8) uint8 {
		v := float64(a) + (float64(b)-float64(a))*t
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}
	return Color{
		R: lerp(c.R, q.R),
		G: lerp(c.G, q.G),
		B: lerp(c.B, q.B),
		A: lerp(c.A, q.A),
	}
}
