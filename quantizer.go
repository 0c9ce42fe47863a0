package vibrant

import (
	"container/heap"
	"sort"
)

// The quantizer reduces full-color pixels to a 15-bit color space by
// keeping the top 5 bits of each channel, histograms the result, and
// then runs median-cut over the distinct quantized colors. Splitting is
// driven by a priority queue that always divides the box with the
// largest volume in the quantized cube.
const (
	quantizeWordWidth = 5
	quantizeWordMask  = (1 << quantizeWordWidth) - 1
	histogramSize     = 1 << (quantizeWordWidth * 3)
	defaultMaxColors  = 16
)

// colorCutQuantizer holds the transient state of one quantizePixels
// call: the histogram over quantized keys and the packed array of
// distinct colors the vboxes index into.
type colorCutQuantizer struct {
	histogram []uint32
	colors    []uint16
	filters   []Filter
}

// quantizePixels reduces the pixel buffer to at most maxColors swatches
// weighted by population. Pixels are packed ARGB words; alpha is
// ignored and the buffer is clobbered with quantized keys in place.
// The returned order is deterministic for identical input.
func quantizePixels(pixels []uint32, maxColors int, filters []Filter) []*Swatch {
	if maxColors <= 0 {
		maxColors = defaultMaxColors
	}

	q := &colorCutQuantizer{
		histogram: make([]uint32, histogramSize),
		filters:   filters,
	}

	for i, px := range pixels {
		key := quantizeFromRgb888(px)
		pixels[i] = uint32(key)
		q.histogram[key]++
	}

	// Filter at the histogram stage so rejected colors never reach
	// median-cut. The reconstructed RGB deliberately loses the low
	// three bits per channel.
	distinct := 0
	for key := 0; key < histogramSize; key++ {
		if q.histogram[key] == 0 {
			continue
		}
		rgb := approximateToRgb888(uint16(key))
		if q.shouldIgnoreColor(rgb) {
			q.histogram[key] = 0
			continue
		}
		distinct++
	}

	q.colors = make([]uint16, 0, distinct)
	for key := 0; key < histogramSize; key++ {
		if q.histogram[key] > 0 {
			q.colors = append(q.colors, uint16(key))
		}
	}

	if len(q.colors) <= maxColors {
		// The image has fewer distinct quantized colors than we were
		// asked for; each one becomes a swatch directly.
		swatches := make([]*Swatch, 0, len(q.colors))
		for _, key := range q.colors {
			swatches = append(swatches, NewSwatch(
				approximateToRgb888(key), int(q.histogram[key])))
		}
		return swatches
	}

	return q.quantize(maxColors)
}

// quantize runs median-cut until maxColors boxes exist or no box can be
// split further, then averages each box into a swatch.
func (q *colorCutQuantizer) quantize(maxColors int) []*Swatch {
	pq := make(boxQueue, 0, maxColors)
	seq := 0

	whole := &vbox{lower: 0, upper: len(q.colors) - 1, seq: seq}
	seq++
	q.fit(whole)
	heap.Push(&pq, whole)

	for pq.Len() < maxColors {
		box := heap.Pop(&pq).(*vbox)
		if !box.canSplit() {
			// The largest remaining box holds a single color; nothing
			// left to divide.
			heap.Push(&pq, box)
			break
		}
		left, right := q.split(box, seq, seq+1)
		seq += 2
		heap.Push(&pq, left)
		heap.Push(&pq, right)
	}

	// Drain in deterministic heap order.
	swatches := make([]*Swatch, 0, pq.Len())
	for pq.Len() > 0 {
		box := heap.Pop(&pq).(*vbox)
		s := q.averageColor(box)
		if s == nil {
			continue
		}
		// Re-check the filters against the averaged color; averaging
		// can drift a box into the rejected bands.
		if q.shouldIgnoreColor(s.RGB()) {
			continue
		}
		swatches = append(swatches, s)
	}
	return swatches
}

// fit recomputes the tight channel bounds and the population of a box
// from the colors it spans.
func (q *colorCutQuantizer) fit(v *vbox) {
	minRed, minGreen, minBlue := quantizeWordMask, quantizeWordMask, quantizeWordMask
	maxRed, maxGreen, maxBlue := 0, 0, 0
	var population uint32

	for i := v.lower; i <= v.upper; i++ {
		key := q.colors[i]
		population += q.histogram[key]

		r := quantizedRed(key)
		g := quantizedGreen(key)
		b := quantizedBlue(key)
		if r < minRed {
			minRed = r
		}
		if r > maxRed {
			maxRed = r
		}
		if g < minGreen {
			minGreen = g
		}
		if g > maxGreen {
			maxGreen = g
		}
		if b < minBlue {
			minBlue = b
		}
		if b > maxBlue {
			maxBlue = b
		}
	}

	v.minRed, v.maxRed = minRed, maxRed
	v.minGreen, v.maxGreen = minGreen, maxGreen
	v.minBlue, v.maxBlue = minBlue, maxBlue
	v.population = population
}

// split divides a box at the population median of its longest dimension
// and returns the two halves, both refitted. The caller guarantees
// canSplit.
func (q *colorCutQuantizer) split(v *vbox, leftSeq, rightSeq int) (left, right *vbox) {
	dimension := v.longestDimension()
	splitPoint := q.findSplitPoint(v, dimension)

	left = &vbox{lower: v.lower, upper: splitPoint, seq: leftSeq}
	right = &vbox{lower: splitPoint + 1, upper: v.upper, seq: rightSeq}
	q.fit(left)
	q.fit(right)
	return left, right
}

// findSplitPoint sorts the box's colors along the given dimension and
// returns the index of the last color in the lower half. The split is
// clamped so both halves are non-empty.
func (q *colorCutQuantizer) findSplitPoint(v *vbox, dimension int) int {
	sub := q.colors[v.lower : v.upper+1]

	// Temporarily move the split dimension into the high bits so a
	// plain integer sort orders the colors along it. The remap is an
	// involution, so applying it twice restores the original keys.
	modifySignificantOctet(sub, dimension)
	sort.Slice(sub, func(i, j int) bool { return sub[i] < sub[j] })
	modifySignificantOctet(sub, dimension)

	midPopulation := v.population / 2
	var count uint32
	for i := v.lower; i <= v.upper; i++ {
		count += q.histogram[q.colors[i]]
		if count >= midPopulation {
			if i >= v.upper {
				return v.upper - 1
			}
			return i
		}
	}
	return v.lower
}

// averageColor collapses a box to a swatch holding the
// population-weighted mean of its quantized colors. A box whose
// population has been entirely filtered away yields nil.
func (q *colorCutQuantizer) averageColor(v *vbox) *Swatch {
	var redSum, greenSum, blueSum, totalPopulation uint64

	for i := v.lower; i <= v.upper; i++ {
		key := q.colors[i]
		population := uint64(q.histogram[key])
		totalPopulation += population
		redSum += population * uint64(quantizedRed(key))
		greenSum += population * uint64(quantizedGreen(key))
		blueSum += population * uint64(quantizedBlue(key))
	}

	if totalPopulation == 0 {
		return nil
	}

	redMean := uint8(roundDiv(redSum, totalPopulation))
	greenMean := uint8(roundDiv(greenSum, totalPopulation))
	blueMean := uint8(roundDiv(blueSum, totalPopulation))

	return NewSwatch(
		approximateRgb888(redMean, greenMean, blueMean),
		int(totalPopulation))
}

// shouldIgnoreColor runs the filter chain over a packed opaque color.
func (q *colorCutQuantizer) shouldIgnoreColor(rgb uint32) bool {
	if len(q.filters) == 0 {
		return false
	}
	hsl := RGBToHSL(RedOf(rgb), GreenOf(rgb), BlueOf(rgb))
	for _, f := range q.filters {
		if !f.IsAllowed(rgb, hsl) {
			return true
		}
	}
	return false
}

// roundDiv divides with rounding to nearest.
func roundDiv(num, den uint64) uint64 {
	return (num + den/2) / den
}

// quantizeFromRgb888 reduces a packed RGB888 word to a 15-bit key by
// truncating each channel to its top 5 bits.
func quantizeFromRgb888(c uint32) uint16 {
	r := modifyWordWidth(int(RedOf(c)), 8, quantizeWordWidth)
	g := modifyWordWidth(int(GreenOf(c)), 8, quantizeWordWidth)
	b := modifyWordWidth(int(BlueOf(c)), 8, quantizeWordWidth)
	return uint16(r<<(quantizeWordWidth+quantizeWordWidth) | g<<quantizeWordWidth | b)
}

// approximateToRgb888 widens a 15-bit key back to a packed opaque
// color. The low bits lost by quantization stay zero; the channels are
// shifted, not bit-replicated, so reconstructed colors bias slightly
// dark.
func approximateToRgb888(key uint16) uint32 {
	return approximateRgb888(
		uint8(quantizedRed(key)),
		uint8(quantizedGreen(key)),
		uint8(quantizedBlue(key)))
}

func approximateRgb888(r, g, b uint8) uint32 {
	return Rgb(
		uint8(modifyWordWidth(int(r), quantizeWordWidth, 8)),
		uint8(modifyWordWidth(int(g), quantizeWordWidth, 8)),
		uint8(modifyWordWidth(int(b), quantizeWordWidth, 8)))
}

func quantizedRed(key uint16) int {
	return int(key>>(quantizeWordWidth+quantizeWordWidth)) & quantizeWordMask
}

func quantizedGreen(key uint16) int {
	return int(key>>quantizeWordWidth) & quantizeWordMask
}

func quantizedBlue(key uint16) int {
	return int(key) & quantizeWordMask
}

// modifyWordWidth converts a channel value between bit widths by
// shifting. Widening shifts left; narrowing truncates the low bits.
func modifyWordWidth(value, currentWidth, targetWidth int) int {
	if targetWidth > currentWidth {
		return value << (targetWidth - currentWidth)
	}
	return value >> (currentWidth - targetWidth)
}

// modifySignificantOctet swaps the given dimension into the most
// significant 5-bit slot of every key in the slice. Red is already in
// the high slot; green and blue each exchange places with red.
func modifySignificantOctet(keys []uint16, dimension int) {
	switch dimension {
	case componentRed:
		// Already the most significant channel.
	case componentGreen:
		for i, key := range keys {
			r := quantizedRed(key)
			g := quantizedGreen(key)
			b := quantizedBlue(key)
			keys[i] = uint16(g<<(quantizeWordWidth+quantizeWordWidth) |
				r<<quantizeWordWidth | b)
		}
	case componentBlue:
		for i, key := range keys {
			r := quantizedRed(key)
			g := quantizedGreen(key)
			b := quantizedBlue(key)
			keys[i] = uint16(b<<(quantizeWordWidth+quantizeWordWidth) |
				g<<quantizeWordWidth | r)
		}
	}
}
