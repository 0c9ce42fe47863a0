package vibrant

import (
	"fmt"
	"sync"
)

// Minimum WCAG contrast ratios the derived overlay text colors must
// meet against the swatch color.
const (
	minContrastTitleText = 3.0
	minContrastBodyText  = 4.5
)

// Swatch is a single representative color extracted from an image,
// together with the number of source pixels it represents. A Swatch is
// immutable once produced; the HSL triple and the overlay text colors
// are derived lazily and memoized.
type Swatch struct {
	rgb        uint32
	population int

	hslOnce sync.Once
	hsl     HSL

	textOnce       sync.Once
	titleTextColor uint32
	bodyTextColor  uint32
}

// NewSwatch creates a Swatch for the given packed color and population.
// The color is normalized to fully opaque; swatches always describe
// opaque colors.
func NewSwatch(rgb uint32, population int) *Swatch {
	return &Swatch{
		rgb:        rgb | 0xff000000,
		population: population,
	}
}

// RGB returns the swatch color as a packed opaque ARGB value.
func (s *Swatch) RGB() uint32 {
	return s.rgb
}

// Hex returns the swatch color as a 6-digit "#rrggbb" string.
func (s *Swatch) Hex() string {
	return HexString(s.rgb)
}

// Population returns the number of source pixels this swatch
// represents.
func (s *Swatch) Population() int {
	return s.population
}

// HSL returns the swatch color as an HSL triple. The conversion is
// performed once and cached; the returned value is a copy, so callers
// may not corrupt the cache.
func (s *Swatch) HSL() HSL {
	s.hslOnce.Do(func() {
		s.hsl = RGBToHSL(RedOf(s.rgb), GreenOf(s.rgb), BlueOf(s.rgb))
	})
	return s.hsl
}

// TitleTextColor returns a packed ARGB color guaranteed to meet a 3.0:1
// contrast ratio when drawn over the swatch color. See BodyTextColor
// for the fallback behavior when no such color exists.
func (s *Swatch) TitleTextColor() uint32 {
	s.ensureTextColors()
	return s.titleTextColor
}

// BodyTextColor returns a packed ARGB color guaranteed to meet a 4.5:1
// contrast ratio when drawn over the swatch color. When neither white
// nor black alone can satisfy both title and body ratios, the two text
// colors fall back independently to whichever side has a solution.
func (s *Swatch) BodyTextColor() uint32 {
	s.ensureTextColors()
	return s.bodyTextColor
}

// Equal reports whether two swatches represent the same color with the
// same population. This is the identity relation for swatches.
func (s *Swatch) Equal(other *Swatch) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.rgb == other.rgb && s.population == other.population
}

// String implements fmt.Stringer for diagnostics.
func (s *Swatch) String() string {
	hsl := s.HSL()
	return fmt.Sprintf("%s [hsl: %.2f, %.2f, %.2f] [population: %d]",
		s.Hex(), hsl.H, hsl.S, hsl.L, s.population)
}

// ensureTextColors derives the overlay text colors. Preference order:
// white with the minimum passing alpha for both ratios, then black for
// both, then a mixed result where title and body each use whichever
// side produced a solution.
func (s *Swatch) ensureTextColors() {
	s.textOnce.Do(func() {
		const (
			white = uint32(0xffffffff)
			black = uint32(0xff000000)
		)

		// The swatch color is opaque by construction, so the min-alpha
		// searches cannot fail with ErrInvalidBackground.
		lightBody, _ := MinimumAlphaForContrast(white, s.rgb, minContrastBodyText)
		lightTitle, _ := MinimumAlphaForContrast(white, s.rgb, minContrastTitleText)

		if lightBody != -1 && lightTitle != -1 {
			s.bodyTextColor, _ = SetAlpha(white, lightBody)
			s.titleTextColor, _ = SetAlpha(white, lightTitle)
			return
		}

		darkBody, _ := MinimumAlphaForContrast(black, s.rgb, minContrastBodyText)
		darkTitle, _ := MinimumAlphaForContrast(black, s.rgb, minContrastTitleText)

		if darkBody != -1 && darkTitle != -1 {
			s.bodyTextColor, _ = SetAlpha(black, darkBody)
			s.titleTextColor, _ = SetAlpha(black, darkTitle)
			return
		}

		// Mismatched: each text color independently takes whichever
		// side found a passing alpha.
		if lightBody != -1 {
			s.bodyTextColor, _ = SetAlpha(white, lightBody)
		} else {
			s.bodyTextColor, _ = SetAlpha(black, darkBody)
		}
		if lightTitle != -1 {
			s.titleTextColor, _ = SetAlpha(white, lightTitle)
		} else {
			s.titleTextColor, _ = SetAlpha(black, darkTitle)
		}
	})
}
