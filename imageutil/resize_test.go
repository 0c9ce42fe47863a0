package imageutil

import "testing"

// checkerboard builds an image alternating between two packed colors.
func checkerboard(w, h int, a, b uint32) *RGBAImage {
	img := NewRGBAImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetARGB(x, y, a)
			} else {
				img.SetARGB(x, y, b)
			}
		}
	}
	return img
}

func TestResizeDimensions(t *testing.T) {
	img := NewRGBAImage(64, 32)
	out := Resize(img, 16, 8, InterpolationNearest)
	if out.Width() != 16 || out.Height() != 8 {
		t.Errorf("Expected 16x8, got %dx%d", out.Width(), out.Height())
	}
}

func TestNearestNeighborKeepsSourceColors(t *testing.T) {
	const (
		red  = 0xffff0000
		blue = 0xff0000ff
	)
	img := checkerboard(64, 64, red, blue)
	out := Resize(img, 13, 13, InterpolationNearest)

	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			c := out.ARGBAt(x, y)
			if c != red && c != blue {
				t.Fatalf("Blended color %08x at (%d,%d); nearest-neighbor "+
					"must only emit source colors", c, x, y)
			}
		}
	}
}

func TestScaleDownToArea(t *testing.T) {
	img := NewRGBAImage(200, 100)

	out := ScaleDownToArea(img, 5000)
	if area := out.Width() * out.Height(); area > 5000 {
		t.Errorf("Area %d exceeds budget 5000", area)
	}
	// Aspect ratio is preserved within rounding.
	if out.Width() < out.Height() {
		t.Errorf("Aspect ratio lost: %dx%d", out.Width(), out.Height())
	}

	// Already small enough: untouched, same instance.
	if got := ScaleDownToArea(img, 200*100); got != img {
		t.Error("Image within budget should be returned unchanged")
	}
	// Disabled budget: untouched.
	if got := ScaleDownToArea(img, 0); got != img {
		t.Error("Non-positive budget should disable scaling")
	}
}

func TestScaleDownToMaxDimension(t *testing.T) {
	img := NewRGBAImage(200, 100)

	out := ScaleDownToMaxDimension(img, 50)
	if out.Width() != 50 || out.Height() != 25 {
		t.Errorf("Expected 50x25, got %dx%d", out.Width(), out.Height())
	}

	if got := ScaleDownToMaxDimension(img, 200); got != img {
		t.Error("Image within the limit should be returned unchanged")
	}
	if got := ScaleDownToMaxDimension(img, -1); got != img {
		t.Error("Non-positive limit should disable scaling")
	}
}

func TestScaleNeverCollapsesToZero(t *testing.T) {
	img := NewRGBAImage(1000, 1)
	out := ScaleDownToArea(img, 4)
	if out.Width() < 1 || out.Height() < 1 {
		t.Errorf("Degenerate scale produced %dx%d", out.Width(), out.Height())
	}
}
