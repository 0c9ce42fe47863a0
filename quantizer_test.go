package vibrant

import (
	"testing"
)

// uniformBuffer returns n copies of the packed color.
func uniformBuffer(c uint32, n int) []uint32 {
	buf := make([]uint32, n)
	for i := range buf {
		buf[i] = c
	}
	return buf
}

func defaultFilters() []Filter {
	return []Filter{DefaultFilter}
}

func TestQuantizeUniformRed(t *testing.T) {
	pixels := uniformBuffer(0xffff0000, 16)
	swatches := quantizePixels(pixels, 16, defaultFilters())

	if len(swatches) != 1 {
		t.Fatalf("Expected 1 swatch, got %d", len(swatches))
	}
	s := swatches[0]
	// 5-bit truncation: 255 -> 31, widened back by shifting gives 248.
	if s.RGB() != 0xfff80000 {
		t.Errorf("Expected fff80000, got %08x", s.RGB())
	}
	if s.Population() != 16 {
		t.Errorf("Expected population 16, got %d", s.Population())
	}

	p, err := FromSwatches(swatches, Vibrant)
	if err != nil {
		t.Fatalf("FromSwatches failed: %v", err)
	}
	if !p.DominantSwatch().Equal(s) {
		t.Errorf("Expected dominant %v, got %v", s, p.DominantSwatch())
	}
	if got := p.VibrantSwatch(); got == nil || !got.Equal(s) {
		t.Errorf("Expected Vibrant selection %v, got %v", s, got)
	}
}

func TestQuantizeBlackAndWhiteFilteredOut(t *testing.T) {
	pixels := append(uniformBuffer(0xff000000, 100), uniformBuffer(0xffffffff, 100)...)
	swatches := quantizePixels(pixels, 16, defaultFilters())

	if len(swatches) != 0 {
		t.Fatalf("Expected no swatches, got %d", len(swatches))
	}

	p := newPaletteForTest(swatches)
	if p.DominantSwatch() != nil {
		t.Errorf("Expected no dominant swatch, got %v", p.DominantSwatch())
	}
	for _, target := range p.Targets() {
		if s := p.SwatchForTarget(target); s != nil {
			t.Errorf("Expected no selection for target %+v, got %v", target, s)
		}
	}
}

// newPaletteForTest builds a palette over the built-in targets without
// tripping the empty-input guard, since quantizer boundary tests
// legitimately produce empty swatch lists.
func newPaletteForTest(swatches []*Swatch) *Palette {
	p := newPalette(swatches, []*Target{
		LightVibrant, Vibrant, DarkVibrant, LightMuted, Muted, DarkMuted,
	})
	p.generate()
	return p
}

func TestQuantizeTwoColorsNoFilters(t *testing.T) {
	pixels := append(uniformBuffer(0xffff0000, 3), uniformBuffer(0xff00ff00, 1)...)
	swatches := quantizePixels(pixels, 2, nil)

	if len(swatches) != 2 {
		t.Fatalf("Expected 2 swatches, got %d", len(swatches))
	}

	populations := map[uint32]int{}
	for _, s := range swatches {
		populations[s.RGB()] = s.Population()
	}
	if populations[0xfff80000] != 3 {
		t.Errorf("Expected red population 3, got %d", populations[0xfff80000])
	}
	if populations[0xff00f800] != 1 {
		t.Errorf("Expected green population 1, got %d", populations[0xff00f800])
	}

	p, err := FromSwatches(swatches)
	if err != nil {
		t.Fatalf("FromSwatches failed: %v", err)
	}
	if p.DominantSwatch().RGB() != 0xfff80000 {
		t.Errorf("Expected red dominant, got %08x", p.DominantSwatch().RGB())
	}
}

func TestQuantizeDistinctColorOrderIsHistogramOrder(t *testing.T) {
	// Green has a smaller 15-bit key than red, so it must come out
	// first on the direct (no median-cut) path.
	pixels := append(uniformBuffer(0xffff0000, 2), uniformBuffer(0xff00ff00, 2)...)
	swatches := quantizePixels(pixels, 16, nil)

	if len(swatches) != 2 {
		t.Fatalf("Expected 2 swatches, got %d", len(swatches))
	}
	if swatches[0].RGB() != 0xff00f800 {
		t.Errorf("Expected green first, got %08x", swatches[0].RGB())
	}
	if swatches[1].RGB() != 0xfff80000 {
		t.Errorf("Expected red second, got %08x", swatches[1].RGB())
	}
}

func TestQuantizeSinglePixel(t *testing.T) {
	swatches := quantizePixels([]uint32{0xff2040ff}, 16, nil)
	if len(swatches) != 1 {
		t.Fatalf("Expected 1 swatch, got %d", len(swatches))
	}
	if swatches[0].Population() != 1 {
		t.Errorf("Expected population 1, got %d", swatches[0].Population())
	}
}

func TestQuantizeEmptyBuffer(t *testing.T) {
	swatches := quantizePixels(nil, 16, defaultFilters())
	if len(swatches) != 0 {
		t.Errorf("Expected no swatches, got %d", len(swatches))
	}
}

func TestMedianCutSplitsAtPopulationMedian(t *testing.T) {
	// Three distinct quantized reds forced through one split. The two
	// darkest keys hold half the population between them and must land
	// in the same box; averaging rounds their mean up.
	pixels := make([]uint32, 0, 16)
	pixels = append(pixels, uniformBuffer(0xff000000, 4)...)
	pixels = append(pixels, uniformBuffer(0xff080000, 4)...)
	pixels = append(pixels, uniformBuffer(0xfff80000, 8)...)

	swatches := quantizePixels(pixels, 2, nil)
	if len(swatches) != 2 {
		t.Fatalf("Expected 2 swatches, got %d", len(swatches))
	}

	populations := map[uint32]int{}
	for _, s := range swatches {
		populations[s.RGB()] = s.Population()
	}
	if populations[0xff080000] != 8 {
		t.Errorf("Expected merged dark box #080000 with population 8, got %+v", populations)
	}
	if populations[0xfff80000] != 8 {
		t.Errorf("Expected bright box #f80000 with population 8, got %+v", populations)
	}
}

func TestQuantizeRespectsMaxColors(t *testing.T) {
	// 32 distinct quantized reds, quantized down to 4 boxes.
	pixels := make([]uint32, 0, 64)
	for step := 0; step < 32; step++ {
		pixels = append(pixels, uniformBuffer(Rgb(uint8(step*8), 0, 0), 2)...)
	}

	swatches := quantizePixels(pixels, 4, nil)
	if len(swatches) > 4 {
		t.Fatalf("Expected at most 4 swatches, got %d", len(swatches))
	}
	if len(swatches) == 0 {
		t.Fatal("Expected some swatches")
	}

	total := 0
	for _, s := range swatches {
		if s.Population() < 1 {
			t.Errorf("Swatch %v has population < 1", s)
		}
		total += s.Population()
		hsl := s.HSL()
		if hsl.H < 0 || hsl.H >= 360 || hsl.S < 0 || hsl.S > 1 || hsl.L < 0 || hsl.L > 1 {
			t.Errorf("Swatch %v has HSL out of range: %+v", s, hsl)
		}
	}
	// With no filters, every input pixel is represented.
	if total != 64 {
		t.Errorf("Expected total population 64, got %d", total)
	}
}

func TestQuantizeDeterministic(t *testing.T) {
	build := func() []*Swatch {
		pixels := make([]uint32, 0, 256)
		for i := 0; i < 128; i++ {
			pixels = append(pixels,
				Rgb(uint8(i*2), uint8(255-i), uint8(i)),
				Rgb(uint8(i), uint8(i*2), uint8(255-i*2)))
		}
		return quantizePixels(pixels, 8, defaultFilters())
	}

	first := build()
	second := build()
	if len(first) != len(second) {
		t.Fatalf("Run lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("Swatch %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestQuantizeFilterAfterAverage(t *testing.T) {
	// A ramp from black to bright magenta: the darkest steps are
	// dropped at the histogram stage, and each averaged box color is
	// checked again after the cut. Verify no produced swatch violates
	// the default filter bands.
	pixels := make([]uint32, 0, 64)
	for step := 0; step < 32; step++ {
		pixels = append(pixels, uniformBuffer(Rgb(uint8(step*8), 0, uint8(step*8)), 2)...)
	}
	swatches := quantizePixels(pixels, 3, defaultFilters())
	for _, s := range swatches {
		hsl := s.HSL()
		if isBlack(hsl) || isWhite(hsl) || isNearRedILine(hsl) {
			t.Errorf("Swatch %v should have been filtered (hsl %+v)", s, hsl)
		}
	}
}

func TestQuantizedKeyHelpers(t *testing.T) {
	key := quantizeFromRgb888(0xffff8001)
	if quantizedRed(key) != 31 {
		t.Errorf("Expected red 31, got %d", quantizedRed(key))
	}
	if quantizedGreen(key) != 16 {
		t.Errorf("Expected green 16, got %d", quantizedGreen(key))
	}
	if quantizedBlue(key) != 0 {
		t.Errorf("Expected blue 0, got %d", quantizedBlue(key))
	}
	if approximateToRgb888(key) != 0xfff88000 {
		t.Errorf("Expected fff88000, got %08x", approximateToRgb888(key))
	}
}

func TestModifySignificantOctetIsInvolution(t *testing.T) {
	keys := []uint16{0, 1, 31744, 992, 31, 12345, 32767}
	for _, dimension := range []int{componentRed, componentGreen, componentBlue} {
		scratch := append([]uint16(nil), keys...)
		modifySignificantOctet(scratch, dimension)
		modifySignificantOctet(scratch, dimension)
		for i := range keys {
			if scratch[i] != keys[i] {
				t.Errorf("Dimension %d: key %d mangled to %d", dimension, keys[i], scratch[i])
			}
		}
	}
}
