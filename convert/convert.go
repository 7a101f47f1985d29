// Package convert drives the whole image-to-spreadsheet pipeline:
// decode, validate dimensions, optionally preprocess, then walk the
// pixel grid resolving every color through the bounded style cache and
// stream the cells into a workbook.
package convert

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/effect"
	log "github.com/sirupsen/logrus"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/submersibletoaster/pixelsheet/palette"
	"github.com/submersibletoaster/pixelsheet/pixel"
	"github.com/submersibletoaster/pixelsheet/sheet"
)

// Options - configuration for a single conversion run.
type Options struct {
	Bits        int          // quantization precision per channel, 1..8
	Limits      sheet.Limits // target format ceilings
	Grayscale   bool         // drop to grayscale before mapping
	PaletteSize int          // when > 0, pre-reduce to at most this many colors
	PaletteAlgo string       // palette.Hierarchical or palette.MedianCut
	Dither      bool         // error-diffuse during palette pre-reduction
	LabDistance bool         // merge saturated colors by Lab distance instead of RGB
	Preview     io.Writer    // when set, an ANSI rendering of the cells streams here
}

// DefaultOptions - 5 bits per channel against the xlsx ceilings.
func DefaultOptions() Options {
	return Options{
		Bits:   5,
		Limits: sheet.ExcelLimits(),
	}
}

// Convert runs the pipeline on its own goroutine and streams status
// events. The channel closes after the terminal Success or Failure, so
// consumers can simply range over it.
func Convert(imagePath, outDir string, opts Options) <-chan Event {
	events := make(chan Event, 16)
	go func() {
		defer close(events)
		notify := func(e Event) { events <- e }
		if err := run(imagePath, outDir, opts, notify); err != nil {
			notify(Failure{Err: err})
		}
	}()
	return events
}

func run(imagePath, outDir string, opts Options, notify func(Event)) error {
	if opts.Bits < 1 || opts.Bits > 8 {
		return fmt.Errorf("quantization bits must be within 1..8, got %d", opts.Bits)
	}
	if imagePath == "" || outDir == "" {
		return fmt.Errorf("image path and output directory are required")
	}

	img, err := decode(imagePath)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if err := opts.Limits.Check(b.Dx(), b.Dy()); err != nil {
		return err
	}

	img, err = preprocess(img, opts)
	if err != nil {
		return err
	}

	grid := pixel.FromImage(img)
	log.Debugf("grid %dx%d, %d bits, ceiling %d styles",
		grid.Width, grid.Height, opts.Bits, opts.Limits.MaxStyles)

	dist := palette.RGBSquared
	if opts.LabDistance {
		dist = palette.Lab
	}
	cache := palette.NewCache(opts.Limits.MaxStyles, dist)
	w := sheet.NewWriter(grid.Width, grid.Height)

	var preview chan Cell
	var previewDone chan struct{}
	if opts.Preview != nil {
		preview = make(chan Cell, 64)
		previewDone = make(chan struct{})
		go writeANSI(opts.Preview, preview, previewDone)
	}

	for cell := range Walk(grid, opts.Bits, cache, notify) {
		w.Apply(cell.Row, cell.Col, cell.Color)
		if preview != nil {
			preview <- cell
		}
	}
	if preview != nil {
		close(preview)
		<-previewDone
	}

	name := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
	outPath := filepath.Join(outDir, name+"_pixel.xlsx")
	if err := w.Save(outPath); err != nil {
		return err
	}

	log.Infof("converted %s: %d styles, %d merges", imagePath, cache.Len(), cache.Merges())
	notify(Success{Path: outPath, StyleCount: cache.Len()})
	return nil
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", filepath.Base(path), err)
	}
	log.Debugf("decoded %s image %v", format, img.Bounds())
	return img, nil
}

func preprocess(img image.Image, opts Options) (image.Image, error) {
	if opts.Grayscale {
		img = effect.Grayscale(img)
	}
	if opts.PaletteSize > 0 {
		reduced, err := palette.Reduce(img, opts.PaletteSize, opts.PaletteAlgo, opts.Dither)
		if err != nil {
			return nil, err
		}
		img = reduced
	}
	return img, nil
}
