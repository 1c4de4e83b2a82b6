package vg

import "image"

// TextureData is a raw RGBA pixel buffer: 4 bytes per pixel, row-major,
// non-premultiplied.
type TextureData struct {
	Width  int
	Height int
	Pixels []uint8
}

// Image is the image representation contract consumed by the rendering
// core: frame snapshots and pattern sources both satisfy it.
type Image interface {
	// Size returns the pixel dimensions of the image.
	Size() Point

	// Texture returns a copy of the image contents as a raw pixel buffer.
	Texture() TextureData

	// Clone returns a cheap shared-handle duplicate. The clone aliases the
	// same pixel storage; it is not a pixel copy.
	Clone() Image
}

// PixelViewer is the capability query a backend uses to paint with an
// image without knowing its concrete type. Images that can expose their
// backing pixels implement it; a Pattern whose image does not is rejected
// with ErrNoPixelAccess at draw time.
type PixelViewer interface {
	// PixelBuffer returns a view of the image's backing pixels.
	// The view must not be retained past the current operation.
	PixelBuffer() (*image.RGBA, error)
}
