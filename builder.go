package vibrant

import (
	"errors"
	"fmt"
	"image"

	"github.com/wbrown/vibrant/imageutil"
)

// ErrInvalidBuffer is returned when a raw pixel buffer's length does
// not match width*height*4 bytes.
var ErrInvalidBuffer = errors.New("pixel buffer length must equal width*height*4")

// Default builder configuration.
const defaultResizeBitmapArea = 112 * 112

// Builder configures and runs palette generation. It is created by
// FromImage, FromRaw, or NewBuilder, configured with chained calls, and
// finished with Generate. A Builder is mutable and not meant for
// concurrent use; the Palette it produces is.
type Builder struct {
	swatches []*Swatch
	img      *imageutil.RGBAImage

	rawBuf    []byte
	rawWidth  int
	rawHeight int
	hasRaw    bool

	maxColors          int
	resizeArea         int
	resizeMaxDimension int
	filters            []Filter
	targets            []*Target
}

// FromImage starts a Builder over an image. The image is converted to
// sRGB 8-bit with alpha up front; scaling and pixel extraction happen
// in Generate.
func FromImage(img image.Image) *Builder {
	b := NewBuilder()
	if img != nil {
		b.img = imageutil.RGBAImageFromImage(img)
	}
	return b
}

// FromRaw starts a Builder over a raw pixel buffer of width*height
// packed ARGB words, four bytes per pixel, big-endian within each word.
// The buffer length is validated in Generate.
func FromRaw(buf []byte, width, height int) *Builder {
	b := NewBuilder()
	b.rawBuf = buf
	b.rawWidth = width
	b.rawHeight = height
	b.hasRaw = true
	return b
}

// NewBuilder returns a Builder with the default configuration and no
// input; supply an image, a raw buffer, or swatches before calling
// Generate.
func NewBuilder() *Builder {
	return &Builder{
		maxColors:          defaultMaxColors,
		resizeArea:         defaultResizeBitmapArea,
		resizeMaxDimension: -1,
		filters:            []Filter{DefaultFilter},
		targets: []*Target{
			LightVibrant,
			Vibrant,
			DarkVibrant,
			LightMuted,
			Muted,
			DarkMuted,
		},
	}
}

// Swatches supplies a pre-built swatch list; quantization is skipped
// and target selection runs directly over these swatches.
func (b *Builder) Swatches(swatches []*Swatch) *Builder {
	b.swatches = swatches
	return b
}

// MaximumColorCount sets the maximum number of colors the quantizer may
// produce. Fewer colors speed up generation; more colors improve
// selection quality on busy images.
func (b *Builder) MaximumColorCount(count int) *Builder {
	b.maxColors = count
	return b
}

// ResizeBitmapArea sets the pixel-area budget the source image is
// downscaled to before quantization. A value of zero or less disables
// area-based scaling.
func (b *Builder) ResizeBitmapArea(area int) *Builder {
	b.resizeArea = area
	b.resizeMaxDimension = -1
	return b
}

// ResizeBitmapSize sets a maximum side length the source image is
// downscaled to before quantization. A positive value overrides the
// area-based policy.
func (b *Builder) ResizeBitmapSize(maxDimension int) *Builder {
	b.resizeMaxDimension = maxDimension
	return b
}

// AddFilter appends a filter to the quantizer's chain.
func (b *Builder) AddFilter(f Filter) *Builder {
	if f != nil {
		b.filters = append(b.filters, f)
	}
	return b
}

// ClearFilters removes all filters, including the default one.
func (b *Builder) ClearFilters() *Builder {
	b.filters = nil
	return b
}

// AddTarget appends a selection target. Duplicates are ignored.
func (b *Builder) AddTarget(t *Target) *Builder {
	for _, existing := range b.targets {
		if existing == t {
			return b
		}
	}
	b.targets = append(b.targets, t)
	return b
}

// ClearTargets removes all selection targets, including the built-in
// six.
func (b *Builder) ClearTargets() *Builder {
	b.targets = nil
	return b
}

// Generate runs the pipeline: scale, extract pixels, quantize, then
// build the Palette with per-target selections. It is synchronous and
// returns when the palette is complete.
func (b *Builder) Generate() (*Palette, error) {
	swatches, err := b.resolveSwatches()
	if err != nil {
		return nil, err
	}

	p := newPalette(swatches, b.targets)
	p.generate()
	return p, nil
}

// resolveSwatches produces the swatch list from whichever input was
// supplied: the pre-built list, an image, or a raw buffer.
func (b *Builder) resolveSwatches() ([]*Swatch, error) {
	if b.swatches != nil {
		if len(b.swatches) == 0 {
			return nil, fmt.Errorf("%w: empty swatch list", ErrEmptyInput)
		}
		return b.swatches, nil
	}

	if b.img != nil {
		if b.img.Width() == 0 || b.img.Height() == 0 {
			return nil, fmt.Errorf("%w: image has no pixels", ErrEmptyInput)
		}
		return quantizePixels(b.scaledPixels(), b.maxColors, b.filters), nil
	}

	if b.hasRaw {
		pixels, err := packRawBuffer(b.rawBuf, b.rawWidth, b.rawHeight)
		if err != nil {
			return nil, err
		}
		return quantizePixels(pixels, b.maxColors, b.filters), nil
	}

	return nil, ErrEmptyInput
}

// scaledPixels applies the configured resize policy and copies the
// result out as a packed ARGB buffer. Nearest-neighbor sampling keeps
// every output pixel a color that exists in the source.
func (b *Builder) scaledPixels() []uint32 {
	scaled := b.img
	if b.resizeMaxDimension > 0 {
		scaled = imageutil.ScaleDownToMaxDimension(scaled, b.resizeMaxDimension)
	} else if b.resizeArea > 0 {
		scaled = imageutil.ScaleDownToArea(scaled, b.resizeArea)
	}
	return scaled.ARGBPixels()
}

// packRawBuffer validates a raw byte buffer and packs it into ARGB
// words.
func packRawBuffer(buf []byte, width, height int) ([]uint32, error) {
	if width <= 0 || height <= 0 || len(buf) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes for %dx%d",
			ErrInvalidBuffer, len(buf), width, height)
	}
	pixels := make([]uint32, width*height)
	for i := range pixels {
		o := i * 4
		pixels[i] = uint32(buf[o])<<24 | uint32(buf[o+1])<<16 |
			uint32(buf[o+2])<<8 | uint32(buf[o+3])
	}
	return pixels, nil
}
