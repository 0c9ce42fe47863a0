package vibrant

// Filter allows the quantizer's output to be restricted. A color only
// survives quantization if every filter in the chain allows it. Filters
// see both the packed RGB value and its HSL representation so that
// implementations can test whichever space is convenient.
type Filter interface {
	// IsAllowed reports whether the color may appear in a palette.
	IsAllowed(rgb uint32, hsl HSL) bool
}

// The FilterFunc type is an adapter to allow the use of ordinary
// functions as filters.
type FilterFunc func(rgb uint32, hsl HSL) bool

// IsAllowed calls f(rgb, hsl).
func (f FilterFunc) IsAllowed(rgb uint32, hsl HSL) bool {
	return f(rgb, hsl)
}

const (
	// Lightness at or below which a color counts as black.
	blackMaxLightness = 0.05

	// Lightness at or above which a color counts as white.
	whiteMinLightness = 0.95

	// Hue band and saturation ceiling of the red I-line, a heuristic
	// region covering common skin tones.
	iLineHueMin = 10.0
	iLineHueMax = 37.0
	iLineSatMax = 0.82
)

// DefaultFilter rejects colors that tend to produce useless swatches:
// near-black, near-white, and the low-saturation red band that mostly
// captures skin tones. Consumers that want those colors back can clear
// the filter chain on the Builder.
var DefaultFilter Filter = defaultFilter{}

type defaultFilter struct{}

func (defaultFilter) IsAllowed(rgb uint32, hsl HSL) bool {
	return !isBlack(hsl) && !isWhite(hsl) && !isNearRedILine(hsl)
}

func isBlack(hsl HSL) bool {
	return hsl.L <= blackMaxLightness
}

func isWhite(hsl HSL) bool {
	return hsl.L >= whiteMinLightness
}

func isNearRedILine(hsl HSL) bool {
	return hsl.H >= iLineHueMin && hsl.H <= iLineHueMax &&
		hsl.S <= iLineSatMax
}
