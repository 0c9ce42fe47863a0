package vibrant

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when palette generation is requested with
// neither an image nor a non-empty swatch list.
var ErrEmptyInput = errors.New("no image or swatches to generate from")

// Palette holds the swatches quantized from an image together with the
// swatch selected for each scoring target. A generated Palette is
// read-only and safe to share between goroutines.
type Palette struct {
	swatches []*Swatch
	targets  []*Target
	selected map[*Target]*Swatch
	dominant *Swatch
}

// FromSwatches builds a Palette directly from a pre-computed swatch
// list, skipping quantization. Selection runs over the given targets;
// with no targets, only the dominant swatch is derived.
func FromSwatches(swatches []*Swatch, targets ...*Target) (*Palette, error) {
	if len(swatches) == 0 {
		return nil, fmt.Errorf("%w: empty swatch list", ErrEmptyInput)
	}
	p := newPalette(swatches, targets)
	p.generate()
	return p, nil
}

func newPalette(swatches []*Swatch, targets []*Target) *Palette {
	return &Palette{
		swatches: swatches,
		targets:  targets,
		selected: make(map[*Target]*Swatch, len(targets)),
	}
}

// generate finds the dominant swatch and then selects the best swatch
// for each target in order. Swatches claimed by an exclusive target are
// withheld from later targets; the claim set only lives for the
// duration of this call.
func (p *Palette) generate() {
	p.dominant = p.findDominantSwatch()

	used := make(map[uint32]bool)
	for _, target := range p.targets {
		if s := p.maxScoredSwatchForTarget(target, used); s != nil {
			p.selected[target] = s
			if target.IsExclusive() {
				used[s.RGB()] = true
			}
		}
	}
}

// findDominantSwatch returns the swatch with the largest population,
// the earliest one on a tie, or nil for an empty palette.
func (p *Palette) findDominantSwatch() *Swatch {
	var dominant *Swatch
	for _, s := range p.swatches {
		if dominant == nil || s.Population() > dominant.Population() {
			dominant = s
		}
	}
	return dominant
}

// maxScoredSwatchForTarget returns the eligible swatch with the highest
// score for the target. The first maximum wins, so an earlier swatch
// beats a later one with an equal score.
func (p *Palette) maxScoredSwatchForTarget(t *Target, used map[uint32]bool) *Swatch {
	var (
		best      *Swatch
		bestScore float64
	)
	weights := t.normalizedWeights()
	for _, s := range p.swatches {
		if !shouldBeScored(s, t, used) {
			continue
		}
		score := p.score(s, t, weights)
		if best == nil || score > bestScore {
			best = s
			bestScore = score
		}
	}
	return best
}

// shouldBeScored reports whether the swatch lies inside the target's
// saturation and lightness ranges and has not been claimed by an
// earlier exclusive target.
func shouldBeScored(s *Swatch, t *Target, used map[uint32]bool) bool {
	hsl := s.HSL()
	return hsl.S >= t.MinimumSaturation() && hsl.S <= t.MaximumSaturation() &&
		hsl.L >= t.MinimumLightness() && hsl.L <= t.MaximumLightness() &&
		!used[s.RGB()]
}

// score rates a swatch against a target using the normalized weights.
// Each component measures closeness to the target value; population is
// rated relative to the dominant swatch.
func (p *Palette) score(s *Swatch, t *Target, weights [3]float64) float64 {
	hsl := s.HSL()

	maxPopulation := 1
	if p.dominant != nil {
		maxPopulation = p.dominant.Population()
	}

	var saturationScore, lightnessScore, populationScore float64
	if w := weights[indexWeightSaturation]; w > 0 {
		saturationScore = w * (1.0 - abs(hsl.S-t.TargetSaturation()))
	}
	if w := weights[indexWeightLightness]; w > 0 {
		lightnessScore = w * (1.0 - abs(hsl.L-t.TargetLightness()))
	}
	if w := weights[indexWeightPopulation]; w > 0 {
		populationScore = w * (float64(s.Population()) / float64(maxPopulation))
	}

	return saturationScore + lightnessScore + populationScore
}

// Swatches returns all swatches in the palette in quantizer output
// order. The returned slice is a copy.
func (p *Palette) Swatches() []*Swatch {
	out := make([]*Swatch, len(p.swatches))
	copy(out, p.swatches)
	return out
}

// Targets returns the targets this palette was generated against. The
// returned slice is a copy.
func (p *Palette) Targets() []*Target {
	out := make([]*Target, len(p.targets))
	copy(out, p.targets)
	return out
}

// SwatchForTarget returns the swatch selected for the target, or nil if
// no eligible swatch existed.
func (p *Palette) SwatchForTarget(t *Target) *Swatch {
	return p.selected[t]
}

// ColorForTarget returns the packed color selected for the target, or
// defaultColor if no swatch was selected.
func (p *Palette) ColorForTarget(t *Target, defaultColor uint32) uint32 {
	if s := p.selected[t]; s != nil {
		return s.RGB()
	}
	return defaultColor
}

// DominantSwatch returns the swatch with the largest population, or nil
// for an empty palette.
func (p *Palette) DominantSwatch() *Swatch {
	return p.dominant
}

// DominantColor returns the dominant swatch's color, or defaultColor
// for an empty palette.
func (p *Palette) DominantColor(defaultColor uint32) uint32 {
	if p.dominant != nil {
		return p.dominant.RGB()
	}
	return defaultColor
}

// VibrantSwatch returns the swatch selected for the Vibrant target.
func (p *Palette) VibrantSwatch() *Swatch { return p.SwatchForTarget(Vibrant) }

// DarkVibrantSwatch returns the swatch selected for the DarkVibrant
// target.
func (p *Palette) DarkVibrantSwatch() *Swatch { return p.SwatchForTarget(DarkVibrant) }

// LightVibrantSwatch returns the swatch selected for the LightVibrant
// target.
func (p *Palette) LightVibrantSwatch() *Swatch { return p.SwatchForTarget(LightVibrant) }

// MutedSwatch returns the swatch selected for the Muted target.
func (p *Palette) MutedSwatch() *Swatch { return p.SwatchForTarget(Muted) }

// DarkMutedSwatch returns the swatch selected for the DarkMuted target.
func (p *Palette) DarkMutedSwatch() *Swatch { return p.SwatchForTarget(DarkMuted) }

// LightMutedSwatch returns the swatch selected for the LightMuted
// target.
func (p *Palette) LightMutedSwatch() *Swatch { return p.SwatchForTarget(LightMuted) }

// VibrantColor returns the color selected for the Vibrant target, or
// defaultColor.
func (p *Palette) VibrantColor(defaultColor uint32) uint32 {
	return p.ColorForTarget(Vibrant, defaultColor)
}

// DarkVibrantColor returns the color selected for the DarkVibrant
// target, or defaultColor.
func (p *Palette) DarkVibrantColor(defaultColor uint32) uint32 {
	return p.ColorForTarget(DarkVibrant, defaultColor)
}

// LightVibrantColor returns the color selected for the LightVibrant
// target, or defaultColor.
func (p *Palette) LightVibrantColor(defaultColor uint32) uint32 {
	return p.ColorForTarget(LightVibrant, defaultColor)
}

// MutedColor returns the color selected for the Muted target, or
// defaultColor.
func (p *Palette) MutedColor(defaultColor uint32) uint32 {
	return p.ColorForTarget(Muted, defaultColor)
}

// DarkMutedColor returns the color selected for the DarkMuted target,
// or defaultColor.
func (p *Palette) DarkMutedColor(defaultColor uint32) uint32 {
	return p.ColorForTarget(DarkMuted, defaultColor)
}

// LightMutedColor returns the color selected for the LightMuted target,
// or defaultColor.
func (p *Palette) LightMutedColor(defaultColor uint32) uint32 {
	return p.ColorForTarget(LightMuted, defaultColor)
}

// ClosestSwatch returns the swatch whose color is nearest to rgb by
// squared distance in RGB space, or nil for an empty palette. Ties go
// to the earlier swatch.
func (p *Palette) ClosestSwatch(rgb uint32) *Swatch {
	var (
		best     *Swatch
		bestDist int
	)
	for _, s := range p.swatches {
		d := squaredColorDistance(rgb, s.RGB())
		if best == nil || d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// squaredColorDistance returns the squared Euclidean distance between
// two packed colors in RGB space. Alpha is ignored.
func squaredColorDistance(a, b uint32) int {
	dr := int(RedOf(a)) - int(RedOf(b))
	dg := int(GreenOf(a)) - int(GreenOf(b))
	db := int(BlueOf(a)) - int(BlueOf(b))
	return dr*dr + dg*dg + db*db
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
