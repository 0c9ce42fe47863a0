// Package imageutil provides the pure Go image collaborator consumed by
// the palette builder: decoding, nearest-neighbor downscaling, and
// copy-out of pixels into the packed ARGB buffer the quantizer expects.
package imageutil

import (
	"image"
	"image/color"
)

// RGBAImage wraps image.RGBA with convenience methods for pixel access.
// All images handled by this package are sRGB with 8-bit channels and
// an alpha channel; conversion happens on construction.
type RGBAImage struct {
	*image.RGBA
}

// NewRGBAImage creates a new RGBAImage with the specified dimensions.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// RGBAImageFromImage converts any image.Image to RGBAImage.
func RGBAImageFromImage(img image.Image) *RGBAImage {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return &RGBAImage{RGBA: rgba}
	}

	bounds := img.Bounds()
	rgba := NewRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return rgba
}

// Width returns the image width.
func (img *RGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *RGBAImage) Height() int {
	return img.Bounds().Dy()
}

// SetARGB sets the pixel at (x, y) from a packed ARGB word.
func (img *RGBAImage) SetARGB(x, y int, argb uint32) {
	img.SetRGBA(x, y, color.RGBA{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	})
}

// ARGBAt returns the pixel at (x, y) as a packed ARGB word.
func (img *RGBAImage) ARGBAt(x, y int) uint32 {
	c := img.RGBAAt(x, y)
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ARGBPixels copies the image out into a contiguous packed ARGB buffer
// in row-major order. The buffer is freshly allocated on every call, so
// callers may clobber it.
func (img *RGBAImage) ARGBPixels() []uint32 {
	w, h := img.Width(), img.Height()
	out := make([]uint32, w*h)

	i := 0
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w*4; x += 4 {
			out[i] = uint32(row[x+3])<<24 | uint32(row[x])<<16 |
				uint32(row[x+1])<<8 | uint32(row[x+2])
			i++
		}
	}
	return out
}

// Clone creates a deep copy of the image.
func (img *RGBAImage) Clone() *RGBAImage {
	clone := NewRGBAImage(img.Width(), img.Height())
	copy(clone.Pix, img.Pix)
	return clone
}
