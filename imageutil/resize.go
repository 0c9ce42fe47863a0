package imageutil

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationNearest uses nearest-neighbor interpolation. It is
	// the default for palette extraction because it never invents
	// blended colors that were not in the source image.
	InterpolationNearest Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea
)

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationArea:
		scaler = draw.CatmullRom
	default:
		scaler = draw.NearestNeighbor
	}

	scaler.Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ScaleDownToArea downscales the image so that its pixel area does not
// exceed maxArea, preserving aspect ratio, using nearest-neighbor
// sampling. Each side is rounded down and kept at least one pixel, so
// only an image whose shorter side would drop below one pixel can stay
// above the budget. Images already at or under the limit are returned
// unchanged, as is any image when maxArea is not positive.
func ScaleDownToArea(img *RGBAImage, maxArea int) *RGBAImage {
	if maxArea <= 0 {
		return img
	}
	area := img.Width() * img.Height()
	if area <= maxArea {
		return img
	}
	ratio := math.Sqrt(float64(maxArea) / float64(area))
	width := int(float64(img.Width()) * ratio)
	height := int(float64(img.Height()) * ratio)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, InterpolationNearest)
}

// ScaleDownToMaxDimension downscales the image so that neither side
// exceeds maxDimension, preserving aspect ratio, using nearest-neighbor
// sampling. Images already within the limit are returned unchanged, as
// is any image when maxDimension is not positive.
func ScaleDownToMaxDimension(img *RGBAImage, maxDimension int) *RGBAImage {
	if maxDimension <= 0 {
		return img
	}
	side := img.Width()
	if img.Height() > side {
		side = img.Height()
	}
	if side <= maxDimension {
		return img
	}
	ratio := float64(maxDimension) / float64(side)
	return scaleByRatio(img, ratio)
}

func scaleByRatio(img *RGBAImage, ratio float64) *RGBAImage {
	width := int(math.Round(float64(img.Width()) * ratio))
	height := int(math.Round(float64(img.Height()) * ratio))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, InterpolationNearest)
}
