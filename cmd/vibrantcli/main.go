package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/wbrown/vibrant"
	"github.com/wbrown/vibrant/imageutil"
)

const esc = "\u001b"

// row pairs a label with the swatch selected for it, for the printed
// table.
type row struct {
	label  string
	swatch *vibrant.Swatch
}

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	maxColors := flag.Int("colors", 16,
		"Maximum number of colors the quantizer may produce")
	resizeArea := flag.Int("area", 112*112,
		"Downscale the image so its pixel area does not exceed this "+
			"(0 to disable)")
	maxDimension := flag.Int("maxdim", 0,
		"Downscale the image so neither side exceeds this "+
			"(overrides -area when > 0)")
	noFilter := flag.Bool("nofilter", false,
		"Disable the default near-black/near-white/skin-tone filter")
	jsonOut := flag.Bool("json", false,
		"Print the palette as JSON instead of a swatch table")
	saveFile := flag.String("save", "",
		"Path to save the palette as a compact binary cache")
	closest := flag.String("closest", "",
		"Hex color (e.g. #336699); prints the closest swatch to it")
	flag.Parse()

	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	img, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	builder := vibrant.FromImage(img.RGBA).
		MaximumColorCount(*maxColors).
		ResizeBitmapArea(*resizeArea)
	if *maxDimension > 0 {
		builder.ResizeBitmapSize(*maxDimension)
	}
	if *noFilter {
		builder.ClearFilters()
	}

	startGen := time.Now()
	palette, err := builder.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating palette: %v\n", err)
		os.Exit(1)
	}
	genTime := time.Since(startGen)

	if *jsonOut {
		if err := palette.WriteJSON(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
			os.Exit(1)
		}
	} else {
		printPalette(palette)
		fmt.Printf("\nGeneration time: %v\n", genTime)
	}

	if *closest != "" {
		c, err := colorful.Hex(*closest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -closest color: %v\n", err)
			os.Exit(1)
		}
		r, g, b := c.RGB255()
		if s := palette.ClosestSwatch(vibrant.Rgb(r, g, b)); s != nil {
			fmt.Printf("Closest swatch to %s: %s\n", *closest, s)
		} else {
			fmt.Printf("No swatches; nothing close to %s\n", *closest)
		}
	}

	if *saveFile != "" {
		if err := palette.SaveBinary(*saveFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving palette: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Palette saved to %s\n", *saveFile)
	}
}

// printPalette writes a truecolor swatch table to stdout: one block per
// swatch, then one block per selected target with sample overlay text
// in the derived title and body colors.
func printPalette(p *vibrant.Palette) {
	swatches := p.Swatches()
	fmt.Printf("Swatches (%d):\n", len(swatches))
	for _, s := range swatches {
		fmt.Printf("  %s %s\n", block(s.RGB()), s)
	}

	if d := p.DominantSwatch(); d != nil {
		fmt.Printf("Dominant: %s %s\n", block(d.RGB()), d.Hex())
	}

	rows := []row{
		{"LightVibrant", p.LightVibrantSwatch()},
		{"Vibrant", p.VibrantSwatch()},
		{"DarkVibrant", p.DarkVibrantSwatch()},
		{"LightMuted", p.LightMutedSwatch()},
		{"Muted", p.MutedSwatch()},
		{"DarkMuted", p.DarkMutedSwatch()},
	}
	fmt.Println("Targets:")
	for _, r := range rows {
		if r.swatch == nil {
			fmt.Printf("  %-13s (none)\n", r.label)
			continue
		}
		fmt.Printf("  %-13s %s %s  %s\n",
			r.label, block(r.swatch.RGB()), r.swatch.Hex(),
			overlaySample(r.swatch))
	}
}

// block renders a colored cell using a 24-bit background escape.
func block(rgb uint32) string {
	return fmt.Sprintf("%s[48;2;%d;%d;%dm      %s[0m",
		esc, vibrant.RedOf(rgb), vibrant.GreenOf(rgb), vibrant.BlueOf(rgb), esc)
}

// overlaySample renders "Title" and "body" over the swatch color using
// its derived text colors, composited to concrete RGB for the terminal.
func overlaySample(s *vibrant.Swatch) string {
	title := vibrant.CompositeColors(s.TitleTextColor(), s.RGB())
	body := vibrant.CompositeColors(s.BodyTextColor(), s.RGB())
	return fmt.Sprintf(
		"%s[48;2;%d;%d;%dm%s[38;2;%d;%d;%dm Title %s[38;2;%d;%d;%dm body %s[0m",
		esc, vibrant.RedOf(s.RGB()), vibrant.GreenOf(s.RGB()), vibrant.BlueOf(s.RGB()),
		esc, vibrant.RedOf(title), vibrant.GreenOf(title), vibrant.BlueOf(title),
		esc, vibrant.RedOf(body), vibrant.GreenOf(body), vibrant.BlueOf(body),
		esc)
}
