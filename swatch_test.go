package vibrant

import (
	"strings"
	"testing"
)

func TestSwatchNormalizesToOpaque(t *testing.T) {
	s := NewSwatch(0x00123456, 1)
	if s.RGB() != 0xff123456 {
		t.Errorf("Expected ff123456, got %08x", s.RGB())
	}
}

func TestSwatchHex(t *testing.T) {
	s := NewSwatch(Rgb(248, 0, 0), 16)
	if s.Hex() != "#f80000" {
		t.Errorf("Expected #f80000, got %s", s.Hex())
	}
}

func TestSwatchHSLCached(t *testing.T) {
	s := NewSwatch(Rgb(255, 0, 0), 1)
	first := s.HSL()
	if first.H != 0 || first.S != 1 || first.L != 0.5 {
		t.Errorf("Unexpected HSL for pure red: %+v", first)
	}

	// Mutating the returned copy must not poison the cache.
	first.L = 0.99
	second := s.HSL()
	if second.L != 0.5 {
		t.Errorf("HSL cache corrupted: %+v", second)
	}
}

func TestSwatchEquality(t *testing.T) {
	a := NewSwatch(Rgb(10, 20, 30), 7)
	b := NewSwatch(Rgb(10, 20, 30), 7)
	c := NewSwatch(Rgb(10, 20, 30), 8)
	d := NewSwatch(Rgb(10, 20, 31), 7)

	if !a.Equal(b) {
		t.Error("Swatches with same rgb and population must be equal")
	}
	if a.Equal(c) {
		t.Error("Different population must not be equal")
	}
	if a.Equal(d) {
		t.Error("Different color must not be equal")
	}
	if a.Equal(nil) {
		t.Error("Non-nil swatch must not equal nil")
	}
}

func TestSwatchTextColorsContrast(t *testing.T) {
	cases := []uint32{
		Rgb(255, 0, 0),
		Rgb(0, 0, 0),
		Rgb(255, 255, 255),
		Rgb(30, 60, 90),
		Rgb(200, 220, 180),
		Rgb(128, 128, 128),
	}

	for _, c := range cases {
		s := NewSwatch(c, 1)

		title := s.TitleTextColor()
		ratio, err := ContrastRatio(title, s.RGB())
		if err != nil {
			t.Fatalf("ContrastRatio failed for %08x: %v", c, err)
		}
		if ratio < minContrastTitleText {
			t.Errorf("Title text on %08x has ratio %v, want >= %v",
				c, ratio, minContrastTitleText)
		}

		body := s.BodyTextColor()
		ratio, err = ContrastRatio(body, s.RGB())
		if err != nil {
			t.Fatalf("ContrastRatio failed for %08x: %v", c, err)
		}
		if ratio < minContrastBodyText {
			t.Errorf("Body text on %08x has ratio %v, want >= %v",
				c, ratio, minContrastBodyText)
		}
	}
}

func TestSwatchTextColorsMemoized(t *testing.T) {
	s := NewSwatch(Rgb(30, 60, 90), 1)
	if s.TitleTextColor() != s.TitleTextColor() {
		t.Error("TitleTextColor must be stable across calls")
	}
	if s.BodyTextColor() != s.BodyTextColor() {
		t.Error("BodyTextColor must be stable across calls")
	}
}

func TestSwatchString(t *testing.T) {
	s := NewSwatch(Rgb(248, 0, 0), 16)
	got := s.String()
	if !strings.Contains(got, "#f80000") || !strings.Contains(got, "16") {
		t.Errorf("Unexpected String output: %s", got)
	}
}
