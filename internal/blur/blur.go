// Package blur implements a fast approximate Gaussian blur over raw RGBA
// pixel buffers using three passes of a sliding-window box blur.
//
// Each box-blur pass runs in O(width*height) regardless of radius: the
// window sum is maintained incrementally by adding the incoming edge pixel
// and subtracting the outgoing one, replicating edge pixels past the
// buffer border.
package blur

import (
	"fmt"
	"math"
)

// channels per pixel in an interleaved RGBA buffer.
const pixelStride = 4

// BoxesForGauss computes n box-filter widths whose combined variance
// approximates a true Gaussian of the given sigma. The widths are odd,
// the first m of them use the lower width and the rest the lower width
// plus two.
func BoxesForGauss(sigma float64, n int) []int {
	nf := float64(n)
	wl := int(math.Floor(math.Sqrt(12*sigma*sigma/nf + 1)))
	if wl%2 == 0 {
		wl--
	}
	if wl < 1 {
		wl = 1
	}
	wu := wl + 2
	wlf := float64(wl)
	m := int(math.Round((12*sigma*sigma - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// Gaussian approximates a Gaussian blur of the given sigma over an RGBA
// buffer, blurring the R, G and B channels and leaving alpha untouched.
// The buffer is modified in place.
func Gaussian(pix []uint8, width, height int, sigma float64) error {
	if err := check(pix, width, height); err != nil {
		return err
	}
	boxes := BoxesForGauss(sigma, 3)
	for channel := 0; channel <= 2; channel++ {
		for _, w := range boxes {
			Box(pix, width, height, (w-1)/2, channel)
		}
	}
	return nil
}

// GaussianChannel runs the same three-pass approximation over a single
// channel (0=R, 1=G, 2=B, 3=A).
func GaussianChannel(pix []uint8, width, height int, sigma float64, channel int) error {
	if err := check(pix, width, height); err != nil {
		return err
	}
	if channel < 0 || channel >= pixelStride {
		return fmt.Errorf("blur: channel %d out of range", channel)
	}
	for _, w := range BoxesForGauss(sigma, 3) {
		Box(pix, width, height, (w-1)/2, channel)
	}
	return nil
}

// Box applies one full box blur (horizontal then vertical pass) of the
// given radius to a single channel of the buffer, in place. A radius
// larger than a dimension allows is clamped so the window stays inside
// the buffer. Edge replication weights border pixels more than interior
// ones, so total intensity is conserved exactly only where the pixels
// within one radius of the border are flat.
func Box(pix []uint8, width, height, radius, channel int) {
	if radius <= 0 || width <= 0 || height <= 0 {
		return
	}
	tmp := make([]uint8, len(pix))
	copy(tmp, pix)

	hr := radius
	if max := (width - 1) / 2; hr > max {
		hr = max
	}
	vr := radius
	if max := (height - 1) / 2; vr > max {
		vr = max
	}

	if hr > 0 {
		boxBlurH(pix, tmp, width, height, hr, channel)
	}
	if vr > 0 {
		boxBlurT(tmp, pix, width, height, vr, channel)
	} else {
		copy(pix, tmp)
	}
}

// boxBlurH runs the horizontal pass, reading source rows and writing target.
func boxBlurH(source, target []uint8, width, height, radius, channel int) {
	iarr := 1 / float64(radius+radius+1)
	for i := 0; i < height; i++ {
		ti := i * width
		li := ti
		ri := ti + radius
		fv := int(source[li*pixelStride+channel])
		lv := int(source[(ti+width-1)*pixelStride+channel])
		val := (radius + 1) * fv
		for j := 0; j < radius; j++ {
			val += int(source[(ti+j)*pixelStride+channel])
		}
		for j := 0; j <= radius; j++ {
			val += int(source[ri*pixelStride+channel]) - fv
			ri++
			target[ti*pixelStride+channel] = roundByte(float64(val) * iarr)
			ti++
		}
		for j := radius + 1; j < width-radius; j++ {
			val += int(source[ri*pixelStride+channel]) - int(source[li*pixelStride+channel])
			ri++
			li++
			target[ti*pixelStride+channel] = roundByte(float64(val) * iarr)
			ti++
		}
		for j := width - radius; j < width; j++ {
			val += lv - int(source[li*pixelStride+channel])
			li++
			target[ti*pixelStride+channel] = roundByte(float64(val) * iarr)
			ti++
		}
	}
}

// boxBlurT runs the vertical pass, reading source columns and writing target.
func boxBlurT(source, target []uint8, width, height, radius, channel int) {
	iarr := 1 / float64(radius+radius+1)
	for i := 0; i < width; i++ {
		ti := i
		li := ti
		ri := ti + radius*width
		fv := int(source[li*pixelStride+channel])
		lv := int(source[(ti+width*(height-1))*pixelStride+channel])
		val := (radius + 1) * fv
		for j := 0; j < radius; j++ {
			val += int(source[(ti+j*width)*pixelStride+channel])
		}
		for j := 0; j <= radius; j++ {
			val += int(source[ri*pixelStride+channel]) - fv
			target[ti*pixelStride+channel] = roundByte(float64(val) * iarr)
			ri += width
			ti += width
		}
		for j := radius + 1; j < height-radius; j++ {
			val += int(source[ri*pixelStride+channel]) - int(source[li*pixelStride+channel])
			target[ti*pixelStride+channel] = roundByte(float64(val) * iarr)
			li += width
			ti += width
			ri += width
		}
		for j := height - radius; j < height; j++ {
			val += lv - int(source[li*pixelStride+channel])
			target[ti*pixelStride+channel] = roundByte(float64(val) * iarr)
			li += width
			ti += width
		}
	}
}

func roundByte(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

func check(pix []uint8, width, height int) error {
	if len(pix) != width*height*pixelStride {
		return fmt.Errorf("blur: buffer length %d does not match %dx%d RGBA", len(pix), width, height)
	}
	return nil
}
