package vibrant

// Indices into a Target's range triples.
const (
	indexMin = iota
	indexTarget
	indexMax
)

// Indices into a Target's weight triple.
const (
	indexWeightSaturation = iota
	indexWeightLightness
	indexWeightPopulation
)

// Range values of the six built-in targets, and the default weights
// shared by the built-in targets and NewTargetBuilder.
const (
	targetDarkLightness     = 0.26
	maxDarkLightness        = 0.45
	minLightLightness       = 0.55
	targetLightLightness    = 0.74
	minNormalLightness      = 0.3
	targetNormalLightness   = 0.5
	maxNormalLightness      = 0.7
	targetMutedSaturation   = 0.3
	maxMutedSaturation      = 0.4
	targetVibrantSaturation = 1.0
	minVibrantSaturation    = 0.35
	weightSaturationDefault = 0.24
	weightLightnessDefault  = 0.52
	weightPopulationDefault = 0.24
)

// Target is an immutable scoring profile used to pick a swatch matching
// a prescribed saturation range, lightness range, and population
// preference. Construct custom targets with a TargetBuilder; the six
// package-level targets cover the usual aesthetic axes.
type Target struct {
	saturation [3]float64
	lightness  [3]float64
	weights    [3]float64
	exclusive  bool
}

// The six built-in targets: vibrant and muted variants at dark, normal,
// and light lightness bands.
var (
	LightVibrant = &Target{
		saturation: [3]float64{minVibrantSaturation, targetVibrantSaturation, 1},
		lightness:  [3]float64{minLightLightness, targetLightLightness, 1},
		weights:    defaultWeights(),
		exclusive:  true,
	}
	Vibrant = &Target{
		saturation: [3]float64{minVibrantSaturation, targetVibrantSaturation, 1},
		lightness:  [3]float64{minNormalLightness, targetNormalLightness, maxNormalLightness},
		weights:    defaultWeights(),
		exclusive:  true,
	}
	DarkVibrant = &Target{
		saturation: [3]float64{minVibrantSaturation, targetVibrantSaturation, 1},
		lightness:  [3]float64{0, targetDarkLightness, maxDarkLightness},
		weights:    defaultWeights(),
		exclusive:  true,
	}
	LightMuted = &Target{
		saturation: [3]float64{0, targetMutedSaturation, maxMutedSaturation},
		lightness:  [3]float64{minLightLightness, targetLightLightness, 1},
		weights:    defaultWeights(),
		exclusive:  true,
	}
	Muted = &Target{
		saturation: [3]float64{0, targetMutedSaturation, maxMutedSaturation},
		lightness:  [3]float64{minNormalLightness, targetNormalLightness, maxNormalLightness},
		weights:    defaultWeights(),
		exclusive:  true,
	}
	DarkMuted = &Target{
		saturation: [3]float64{0, targetMutedSaturation, maxMutedSaturation},
		lightness:  [3]float64{0, targetDarkLightness, maxDarkLightness},
		weights:    defaultWeights(),
		exclusive:  true,
	}
)

func defaultWeights() [3]float64 {
	return [3]float64{
		weightSaturationDefault,
		weightLightnessDefault,
		weightPopulationDefault,
	}
}

// MinimumSaturation returns the lower bound of the acceptable
// saturation range.
func (t *Target) MinimumSaturation() float64 { return t.saturation[indexMin] }

// TargetSaturation returns the saturation the target scores toward.
func (t *Target) TargetSaturation() float64 { return t.saturation[indexTarget] }

// MaximumSaturation returns the upper bound of the acceptable
// saturation range.
func (t *Target) MaximumSaturation() float64 { return t.saturation[indexMax] }

// MinimumLightness returns the lower bound of the acceptable lightness
// range.
func (t *Target) MinimumLightness() float64 { return t.lightness[indexMin] }

// TargetLightness returns the lightness the target scores toward.
func (t *Target) TargetLightness() float64 { return t.lightness[indexTarget] }

// MaximumLightness returns the upper bound of the acceptable lightness
// range.
func (t *Target) MaximumLightness() float64 { return t.lightness[indexMax] }

// SaturationWeight returns the raw (unnormalized) saturation weight.
func (t *Target) SaturationWeight() float64 { return t.weights[indexWeightSaturation] }

// LightnessWeight returns the raw (unnormalized) lightness weight.
func (t *Target) LightnessWeight() float64 { return t.weights[indexWeightLightness] }

// PopulationWeight returns the raw (unnormalized) population weight.
func (t *Target) PopulationWeight() float64 { return t.weights[indexWeightPopulation] }

// IsExclusive reports whether a swatch selected for this target is
// removed from the candidate pool for later targets.
func (t *Target) IsExclusive() bool { return t.exclusive }

// normalizedWeights returns the weight triple scaled so that the
// positive entries sum to one. Zero weights stay zero, and an all-zero
// triple is returned unchanged.
func (t *Target) normalizedWeights() [3]float64 {
	var sum float64
	for _, w := range t.weights {
		if w > 0 {
			sum += w
		}
	}
	out := t.weights
	if sum == 0 {
		return out
	}
	for i, w := range out {
		if w > 0 {
			out[i] = w / sum
		}
	}
	return out
}

// TargetBuilder assembles a custom Target. The zero configuration
// matches the spec defaults: ranges [0, 0.5, 1], weights
// (0.24, 0.52, 0.24), exclusive.
type TargetBuilder struct {
	target Target
}

// NewTargetBuilder creates a TargetBuilder with default ranges and
// weights.
func NewTargetBuilder() *TargetBuilder {
	return &TargetBuilder{
		target: Target{
			saturation: [3]float64{0, 0.5, 1},
			lightness:  [3]float64{0, 0.5, 1},
			weights:    defaultWeights(),
			exclusive:  true,
		},
	}
}

// NewTargetBuilderFrom creates a TargetBuilder seeded with an existing
// target's configuration.
func NewTargetBuilderFrom(t *Target) *TargetBuilder {
	return &TargetBuilder{target: *t}
}

// MinimumSaturation sets the lower bound of the acceptable saturation
// range.
func (b *TargetBuilder) MinimumSaturation(v float64) *TargetBuilder {
	b.target.saturation[indexMin] = v
	return b
}

// TargetSaturation sets the saturation the target scores toward.
func (b *TargetBuilder) TargetSaturation(v float64) *TargetBuilder {
	b.target.saturation[indexTarget] = v
	return b
}

// MaximumSaturation sets the upper bound of the acceptable saturation
// range.
func (b *TargetBuilder) MaximumSaturation(v float64) *TargetBuilder {
	b.target.saturation[indexMax] = v
	return b
}

// MinimumLightness sets the lower bound of the acceptable lightness
// range.
func (b *TargetBuilder) MinimumLightness(v float64) *TargetBuilder {
	b.target.lightness[indexMin] = v
	return b
}

// TargetLightness sets the lightness the target scores toward.
func (b *TargetBuilder) TargetLightness(v float64) *TargetBuilder {
	b.target.lightness[indexTarget] = v
	return b
}

// MaximumLightness sets the upper bound of the acceptable lightness
// range.
func (b *TargetBuilder) MaximumLightness(v float64) *TargetBuilder {
	b.target.lightness[indexMax] = v
	return b
}

// SaturationWeight sets the relative importance of closeness to the
// target saturation.
func (b *TargetBuilder) SaturationWeight(v float64) *TargetBuilder {
	b.target.weights[indexWeightSaturation] = v
	return b
}

// LightnessWeight sets the relative importance of closeness to the
// target lightness.
func (b *TargetBuilder) LightnessWeight(v float64) *TargetBuilder {
	b.target.weights[indexWeightLightness] = v
	return b
}

// PopulationWeight sets the relative importance of a swatch's
// population.
func (b *TargetBuilder) PopulationWeight(v float64) *TargetBuilder {
	b.target.weights[indexWeightPopulation] = v
	return b
}

// Exclusive sets whether a swatch claimed by this target is withheld
// from later targets.
func (b *TargetBuilder) Exclusive(v bool) *TargetBuilder {
	b.target.exclusive = v
	return b
}

// Build returns the finished immutable Target.
func (b *TargetBuilder) Build() *Target {
	t := b.target
	return &t
}
