package vibrant

import "testing"

func TestDefaultFilterRejectsNearBlack(t *testing.T) {
	if DefaultFilter.IsAllowed(0xff0a0a0a, HSL{0, 0, 0.04}) {
		t.Error("Lightness 0.04 should be rejected")
	}
	if DefaultFilter.IsAllowed(0xff0d0d0d, HSL{0, 0, 0.05}) {
		t.Error("Lightness 0.05 is on the black boundary and should be rejected")
	}
	if !DefaultFilter.IsAllowed(0xff111111, HSL{0, 0, 0.051}) {
		t.Error("Lightness just above 0.05 should be allowed")
	}
}

func TestDefaultFilterRejectsNearWhite(t *testing.T) {
	if DefaultFilter.IsAllowed(0xfffcfcfc, HSL{0, 0, 0.99}) {
		t.Error("Lightness 0.99 should be rejected")
	}
	if DefaultFilter.IsAllowed(0xfff2f2f2, HSL{0, 0, 0.95}) {
		t.Error("Lightness 0.95 is on the white boundary and should be rejected")
	}
	if !DefaultFilter.IsAllowed(0xfff0f0f0, HSL{0, 0, 0.949}) {
		t.Error("Lightness just below 0.95 should be allowed")
	}
}

func TestDefaultFilterRejectsILineBand(t *testing.T) {
	// Inside the band: hue in [10, 37] with saturation at or below 0.82.
	if DefaultFilter.IsAllowed(0xffc08040, HSL{20, 0.5, 0.5}) {
		t.Error("Skin-tone band color should be rejected")
	}
	if DefaultFilter.IsAllowed(0xffc08040, HSL{10, 0.82, 0.5}) {
		t.Error("Band corner (h=10, s=0.82) should be rejected")
	}

	// Outside the band on each axis.
	if !DefaultFilter.IsAllowed(0xffff0000, HSL{0, 1, 0.5}) {
		t.Error("Pure red (h=0) is outside the band and should be allowed")
	}
	if !DefaultFilter.IsAllowed(0xffff8000, HSL{20, 0.9, 0.5}) {
		t.Error("Saturation above 0.82 should escape the band")
	}
	if !DefaultFilter.IsAllowed(0xffc0c040, HSL{38, 0.5, 0.5}) {
		t.Error("Hue above 37 is outside the band and should be allowed")
	}
}

func TestFilterFuncAdapter(t *testing.T) {
	onlyDark := FilterFunc(func(rgb uint32, hsl HSL) bool {
		return hsl.L < 0.5
	})
	if !onlyDark.IsAllowed(0xff202020, HSL{0, 0, 0.2}) {
		t.Error("Dark color should pass the adapter")
	}
	if onlyDark.IsAllowed(0xffe0e0e0, HSL{0, 0, 0.9}) {
		t.Error("Light color should fail the adapter")
	}
}

func TestFilterChainAllMustAllow(t *testing.T) {
	pixels := uniformBuffer(0xff0000ff, 8)
	rejectBlue := FilterFunc(func(rgb uint32, hsl HSL) bool {
		return BlueOf(rgb) < 0x80
	})

	// The default filter allows pure blue, but the added filter does
	// not; the chain must reject.
	swatches := quantizePixels(pixels, 16, []Filter{DefaultFilter, rejectBlue})
	if len(swatches) != 0 {
		t.Errorf("Expected chain to reject blue, got %d swatches", len(swatches))
	}
}
