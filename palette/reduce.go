package palette

import (
	"fmt"
	"image"
	"image/color"

	hierarchical "github.com/Nykakin/quantize"
	mediancut "github.com/ericpauley/go-quantize/quantize"
	"github.com/esimov/colorquant"
)

// Palette reduction algorithms.
const (
	Hierarchical = "hierarchical"
	MedianCut    = "mediancut"
)

// sierra3 error-diffusion kernel.
var sierra3 = colorquant.Dither{
	Filter: [][]float32{
		{0.0, 0.0, 0.0, 5.0 / 32.0, 3.0 / 32.0},
		{2.0 / 32.0, 4.0 / 32.0, 5.0 / 32.0, 4.0 / 32.0, 2.0 / 32.0},
		{0.0, 2.0 / 32.0, 3.0 / 32.0, 2.0 / 32.0, 0.0},
	},
}

// Reduce quantizes img down to a palette of at most n colors before any
// cell mapping happens. dither applies Sierra-3 error diffusion while
// remapping, otherwise pixels snap to their nearest palette color.
func Reduce(img image.Image, n int, algo string, dither bool) (image.Image, error) {
	pal, err := pick(img, n, algo)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), pal)
	if dither {
		return sierra3.Quantize(img, dst, n, true, false), nil
	}
	return colorquant.NoDither.Quantize(img, dst, n, false, false), nil
}

// pick chooses the overall image palette.
func pick(img image.Image, n int, algo string) (color.Palette, error) {
	switch algo {
	case MedianCut:
		q := mediancut.MedianCutQuantizer{}
		return color.Palette(q.Quantize(make([]color.Color, 0, n), img)), nil
	case Hierarchical, "":
		q := hierarchical.NewHierarhicalQuantizer()
		colors, err := q.Quantize(img, n)
		if err != nil {
			return nil, fmt.Errorf("hierarchical quantize: %w", err)
		}
		pal := make(color.Palette, len(colors))
		for i, clr := range colors {
			pal[i] = clr
		}
		return pal, nil
	}
	return nil, fmt.Errorf("unknown palette algorithm %q", algo)
}
