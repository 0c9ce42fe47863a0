package vibrant

import (
	"compress/gzip"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Serialization of generated palettes. The JSON form is for human and
// tool consumption; the binary form is a compact gzip-compressed gob
// cache that restores a palette without re-running quantization or
// selection.

// builtinTargetNames maps the six built-in targets to their stable
// names in exported output. Custom targets are exported positionally.
var builtinTargetNames = map[*Target]string{
	LightVibrant: "light_vibrant",
	Vibrant:      "vibrant",
	DarkVibrant:  "dark_vibrant",
	LightMuted:   "light_muted",
	Muted:        "muted",
	DarkMuted:    "dark_muted",
}

func targetName(t *Target, index int) string {
	if name, ok := builtinTargetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("target_%d", index)
}

type swatchJSON struct {
	Hex        string     `json:"hex"`
	RGB        uint32     `json:"rgb"`
	Population int        `json:"population"`
	HSL        [3]float64 `json:"hsl"`
}

type paletteJSON struct {
	Swatches   []swatchJSON          `json:"swatches"`
	Dominant   *swatchJSON           `json:"dominant,omitempty"`
	Selections map[string]swatchJSON `json:"selections,omitempty"`
}

func toSwatchJSON(s *Swatch) swatchJSON {
	hsl := s.HSL()
	return swatchJSON{
		Hex:        s.Hex(),
		RGB:        s.RGB(),
		Population: s.Population(),
		HSL:        [3]float64{hsl.H, hsl.S, hsl.L},
	}
}

// WriteJSON writes the palette to w as indented JSON: every swatch, the
// dominant swatch, and the per-target selections keyed by target name.
func (p *Palette) WriteJSON(w io.Writer) error {
	out := paletteJSON{
		Swatches: make([]swatchJSON, 0, len(p.swatches)),
	}
	for _, s := range p.swatches {
		out.Swatches = append(out.Swatches, toSwatchJSON(s))
	}
	if p.dominant != nil {
		d := toSwatchJSON(p.dominant)
		out.Dominant = &d
	}
	if len(p.selected) > 0 {
		out.Selections = make(map[string]swatchJSON, len(p.selected))
		for i, t := range p.targets {
			if s := p.selected[t]; s != nil {
				out.Selections[targetName(t, i)] = toSwatchJSON(s)
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("error encoding palette JSON: %w", err)
	}
	return nil
}

// compactSwatch is the wire form of a swatch: everything else a swatch
// carries is derived from these two fields.
type compactSwatch struct {
	RGB        uint32
	Population int
}

// compactTarget is the wire form of a target's nine scalars plus the
// exclusivity flag.
type compactTarget struct {
	Saturation [3]float64
	Lightness  [3]float64
	Weights    [3]float64
	Exclusive  bool
}

// compactPalette is the wire form of a generated palette. Selections
// and the dominant swatch are stored as indices into Swatches; -1 means
// absent.
type compactPalette struct {
	Swatches []compactSwatch
	Targets  []compactTarget
	Selected []int
	Dominant int
}

// WriteBinary writes the palette to w as a gzip-compressed gob stream.
func (p *Palette) WriteBinary(w io.Writer) error {
	indexOf := make(map[*Swatch]int, len(p.swatches))
	cp := compactPalette{
		Swatches: make([]compactSwatch, len(p.swatches)),
		Targets:  make([]compactTarget, len(p.targets)),
		Selected: make([]int, len(p.targets)),
		Dominant: -1,
	}
	for i, s := range p.swatches {
		indexOf[s] = i
		cp.Swatches[i] = compactSwatch{RGB: s.RGB(), Population: s.Population()}
	}
	for i, t := range p.targets {
		cp.Targets[i] = compactTarget{
			Saturation: t.saturation,
			Lightness:  t.lightness,
			Weights:    t.weights,
			Exclusive:  t.exclusive,
		}
		cp.Selected[i] = -1
		if s := p.selected[t]; s != nil {
			cp.Selected[i] = indexOf[s]
		}
	}
	if p.dominant != nil {
		cp.Dominant = indexOf[p.dominant]
	}

	gzw := gzip.NewWriter(w)
	if err := gob.NewEncoder(gzw).Encode(cp); err != nil {
		gzw.Close()
		return fmt.Errorf("failed to encode palette data: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return fmt.Errorf("failed to flush palette data: %w", err)
	}
	return nil
}

// ReadBinary restores a palette previously written by WriteBinary. The
// swatch list, targets, dominant swatch, and per-target selections are
// reconstructed exactly; no quantization or re-selection runs.
func ReadBinary(r io.Reader) (*Palette, error) {
	gzr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzr.Close()

	var cp compactPalette
	if err := gob.NewDecoder(gzr).Decode(&cp); err != nil {
		return nil, fmt.Errorf("failed to decode palette data: %w", err)
	}

	p := &Palette{
		swatches: make([]*Swatch, len(cp.Swatches)),
		targets:  make([]*Target, len(cp.Targets)),
		selected: make(map[*Target]*Swatch, len(cp.Targets)),
	}
	for i, cs := range cp.Swatches {
		p.swatches[i] = NewSwatch(cs.RGB, cs.Population)
	}
	for i, ct := range cp.Targets {
		restored := Target{
			saturation: ct.Saturation,
			lightness:  ct.Lightness,
			weights:    ct.Weights,
			exclusive:  ct.Exclusive,
		}
		p.targets[i] = canonicalTarget(restored)
		if idx := cp.Selected[i]; idx >= 0 && idx < len(p.swatches) {
			p.selected[p.targets[i]] = p.swatches[idx]
		}
	}
	if cp.Dominant >= 0 && cp.Dominant < len(p.swatches) {
		p.dominant = p.swatches[cp.Dominant]
	}
	return p, nil
}

// canonicalTarget maps a restored target back onto the matching
// built-in instance when the scalars are identical, so that the named
// accessors keep working on a loaded palette. Anything else gets a
// fresh instance.
func canonicalTarget(t Target) *Target {
	for builtin := range builtinTargetNames {
		if *builtin == t {
			return builtin
		}
	}
	out := t
	return &out
}

// SaveBinary writes the palette to a file using WriteBinary.
func (p *Palette) SaveBinary(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	return p.WriteBinary(f)
}

// LoadBinary reads a palette from a file using ReadBinary.
func LoadBinary(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	return ReadBinary(f)
}
