package vibrant

import (
	"errors"
	"fmt"
	"math"
)

// Colors are packed ARGB values: (A<<24)|(R<<16)|(G<<8)|(B), each channel
// 8 bits. This is the single color representation exchanged between the
// quantizer, the palette, and callers. The packing matches the big-endian
// word layout used by the raw pixel buffers the quantizer consumes.

var (
	// ErrInvalidAlpha is returned when an alpha value is outside [0, 255].
	ErrInvalidAlpha = errors.New("alpha must be between 0 and 255")

	// ErrInvalidBackground is returned when a contrast computation is
	// given a translucent background. Contrast against a background is
	// only defined when the background is fully opaque.
	ErrInvalidBackground = errors.New("background cannot be translucent")
)

// ARGB packs the four 8-bit channels into a single 32-bit color.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Rgb packs three 8-bit channels into a fully opaque 32-bit color.
func Rgb(r, g, b uint8) uint32 {
	return ARGB(255, r, g, b)
}

// AlphaOf extracts the alpha channel from a packed color.
func AlphaOf(c uint32) uint8 {
	return uint8(c >> 24)
}

// RedOf extracts the red channel from a packed color.
func RedOf(c uint32) uint8 {
	return uint8(c >> 16)
}

// GreenOf extracts the green channel from a packed color.
func GreenOf(c uint32) uint8 {
	return uint8(c >> 8)
}

// BlueOf extracts the blue channel from a packed color.
func BlueOf(c uint32) uint8 {
	return uint8(c)
}

// SetAlpha replaces the alpha channel of a packed color. The alpha is
// taken as an int so that out-of-range values can be rejected rather
// than silently truncated.
func SetAlpha(c uint32, alpha int) (uint32, error) {
	if alpha < 0 || alpha > 255 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAlpha, alpha)
	}
	return c&0x00ffffff | uint32(alpha)<<24, nil
}

// HexString formats the RGB channels of a packed color as a 6-digit
// lowercase hex string with a leading '#'. The alpha channel is not
// represented.
func HexString(c uint32) string {
	return fmt.Sprintf("#%02x%02x%02x", RedOf(c), GreenOf(c), BlueOf(c))
}

// HSL represents a color as hue, saturation, and lightness. Hue is in
// degrees [0, 360); saturation and lightness are in [0, 1].
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts 8-bit RGB channels to HSL. Each component of the
// result is clamped to its range to absorb floating-point drift.
func RGBToHSL(r, g, b uint8) HSL {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	delta := max - min

	var h, s float64
	l := (max + min) / 2.0

	if delta == 0 {
		// Achromatic: hue and saturation are zero by convention.
		h = 0
		s = 0
	} else {
		switch max {
		case rf:
			h = math.Mod((gf-bf)/delta, 6.0)
		case gf:
			h = (bf-rf)/delta + 2.0
		default:
			h = (rf-gf)/delta + 4.0
		}
		s = delta / (1.0 - math.Abs(2.0*l-1.0))
	}

	h = math.Mod(h*60.0, 360.0)
	if h < 0 {
		h += 360.0
	}
	if h >= 360.0 {
		// Keep hue in the half-open range even when the negative-hue
		// correction rounds back up to 360.
		h = 0
	}

	return HSL{
		H: h,
		S: clamp(s, 0, 1),
		L: clamp(l, 0, 1),
	}
}

// HSLToRGB converts an HSL triple back to a packed opaque color. This is
// the inverse of RGBToHSL up to 8-bit rounding.
func HSLToRGB(hsl HSL) uint32 {
	c := (1.0 - math.Abs(2.0*hsl.L-1.0)) * hsl.S
	m := hsl.L - 0.5*c
	x := c * (1.0 - math.Abs(math.Mod(hsl.H/60.0, 2.0)-1.0))
	hueSegment := int(hsl.H / 60.0)

	var r, g, b float64
	switch hueSegment {
	case 0:
		r, g, b = c, x, 0
	case 1:
		r, g, b = x, c, 0
	case 2:
		r, g, b = 0, c, x
	case 3:
		r, g, b = 0, x, c
	case 4:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	ri := uint8(clamp(math.Round((r+m)*255.0), 0, 255))
	gi := uint8(clamp(math.Round((g+m)*255.0), 0, 255))
	bi := uint8(clamp(math.Round((b+m)*255.0), 0, 255))
	return Rgb(ri, gi, bi)
}

// RGBToXYZ converts 8-bit RGB channels to CIE XYZ under the D65
// illuminant and the CIE 1931 2-degree observer. The result is scaled
// so that reference white has Y = 100.
func RGBToXYZ(r, g, b uint8) (x, y, z float64) {
	sr := srgbToLinear(r)
	sg := srgbToLinear(g)
	sb := srgbToLinear(b)

	x = 100.0 * (sr*0.4124564 + sg*0.3575761 + sb*0.1804375)
	y = 100.0 * (sr*0.2126729 + sg*0.7151522 + sb*0.0721750)
	z = 100.0 * (sr*0.0193339 + sg*0.1191920 + sb*0.9503041)
	return x, y, z
}

// srgbToLinear linearizes a single 8-bit sRGB channel.
func srgbToLinear(c uint8) float64 {
	f := float64(c) / 255.0
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of a packed color in
// [0, 1]. The alpha channel is ignored.
func Luminance(c uint32) float64 {
	_, y, _ := RGBToXYZ(RedOf(c), GreenOf(c), BlueOf(c))
	return y / 100.0
}

// ContrastRatio computes the WCAG 2.0 contrast ratio between a
// foreground and a fully opaque background. A translucent foreground is
// composited over the background first. The result is in [1, 21].
func ContrastRatio(fg, bg uint32) (float64, error) {
	if AlphaOf(bg) != 255 {
		return 0, fmt.Errorf("%w: %08x", ErrInvalidBackground, bg)
	}
	if AlphaOf(fg) < 255 {
		fg = CompositeColors(fg, bg)
	}

	l1 := Luminance(fg) + 0.05
	l2 := Luminance(bg) + 0.05
	return math.Max(l1, l2) / math.Min(l1, l2), nil
}

// CompositeColors composites a translucent foreground over a background
// using the Porter-Duff "over" operator.
func CompositeColors(fg, bg uint32) uint32 {
	bgAlpha := uint32(AlphaOf(bg))
	fgAlpha := uint32(AlphaOf(fg))
	a := compositeAlpha(fgAlpha, bgAlpha)

	r := compositeComponent(uint32(RedOf(fg)), fgAlpha,
		uint32(RedOf(bg)), bgAlpha, a)
	g := compositeComponent(uint32(GreenOf(fg)), fgAlpha,
		uint32(GreenOf(bg)), bgAlpha, a)
	b := compositeComponent(uint32(BlueOf(fg)), fgAlpha,
		uint32(BlueOf(bg)), bgAlpha, a)

	return ARGB(uint8(a), uint8(r), uint8(g), uint8(b))
}

func compositeAlpha(fgAlpha, bgAlpha uint32) uint32 {
	return 255 - ((255 - bgAlpha) * (255 - fgAlpha) / 255)
}

func compositeComponent(fgC, fgA, bgC, bgA, a uint32) uint32 {
	if a == 0 {
		return 0
	}
	return (255*fgC*fgA + bgC*bgA*(255-fgA)) / (a * 255)
}

// MinimumAlphaForContrast finds the smallest alpha that can be applied
// to the foreground so that it still meets minRatio against the opaque
// background. It returns -1 when even a fully opaque foreground cannot
// meet the ratio. The search is a binary chop over [0, 255] that stops
// once the window has closed to one step, and conservatively returns
// the endpoint known to pass.
func MinimumAlphaForContrast(fg, bg uint32, minRatio float64) (int, error) {
	if AlphaOf(bg) != 255 {
		return 0, fmt.Errorf("%w: %08x", ErrInvalidBackground, bg)
	}

	opaque, _ := SetAlpha(fg, 255)
	ratio, err := ContrastRatio(opaque, bg)
	if err != nil {
		return 0, err
	}
	if ratio < minRatio {
		// Even the fully opaque foreground fails; no alpha can help.
		return -1, nil
	}

	const (
		maxIterations   = 10
		searchPrecision = 1
	)

	minAlpha, maxAlpha := 0, 255
	for i := 0; i < maxIterations && maxAlpha-minAlpha > searchPrecision; i++ {
		testAlpha := (minAlpha + maxAlpha) / 2
		test, _ := SetAlpha(fg, testAlpha)
		testRatio, _ := ContrastRatio(test, bg)
		if testRatio < minRatio {
			minAlpha = testAlpha
		} else {
			maxAlpha = testAlpha
		}
	}

	return maxAlpha, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
