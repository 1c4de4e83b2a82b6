package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/vg"
)

// Image is a CPU-backed image. It satisfies vg.Image so rendered frames
// can feed back in as pattern textures, and vg.PixelViewer so the
// rasterizer can sample it.
type Image struct {
	rgba *image.RGBA
}

// NewImage wraps an RGBA buffer without copying it.
func NewImage(rgba *image.RGBA) *Image {
	return &Image{rgba: rgba}
}

// DecodeImage converts texture data into a CPU image.
func DecodeImage(data vg.TextureData) (*Image, error) {
	if want := data.Width * data.Height * 4; len(data.Pixels) != want {
		return nil, fmt.Errorf("raster: texture data %dx%d wants %d bytes, got %d",
			data.Width, data.Height, want, len(data.Pixels))
	}
	rgba := image.NewRGBA(image.Rect(0, 0, data.Width, data.Height))
	copy(rgba.Pix, data.Pixels)
	return &Image{rgba: rgba}, nil
}

// Size returns the image dimensions in pixels.
func (img *Image) Size() vg.Point {
	b := img.rgba.Bounds()
	return vg.Pt(float64(b.Dx()), float64(b.Dy()))
}

// Texture returns a copy of the pixels as raw texture data. DecodeImage
// is the inverse.
func (img *Image) Texture() vg.TextureData {
	b := img.rgba.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		o := img.rgba.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w*4:(y+1)*w*4], img.rgba.Pix[o:o+w*4])
	}
	return vg.TextureData{Width: w, Height: h, Pixels: pix}
}

// Clone returns a handle sharing the same pixel storage.
func (img *Image) Clone() vg.Image {
	return &Image{rgba: img.rgba}
}

// PixelBuffer exposes the backing RGBA pixels.
func (img *Image) PixelBuffer() (*image.RGBA, error) {
	return img.rgba, nil
}

// SavePNG writes the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img.rgba); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	return nil
}
