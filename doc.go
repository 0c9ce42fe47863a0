// Package vibrant extracts a small set of representative colors from an
// image and classifies them along perceptual axes (vibrant/muted at
// dark, normal, and light lightness). Colors are reduced with
// median-cut quantization over a 15-bit histogram, then scored against
// configurable saturation/lightness/population targets to pick a swatch
// for each aesthetic role, together with overlay text colors that meet
// WCAG contrast against the swatch.
//
// Typical use:
//
//	p, err := vibrant.FromImage(img).Generate()
//	if err != nil {
//		// ...
//	}
//	if s := p.VibrantSwatch(); s != nil {
//		fmt.Println(s.Hex(), s.TitleTextColor())
//	}
package vibrant
