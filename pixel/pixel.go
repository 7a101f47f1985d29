package pixel

import (
	"fmt"
	"image"
	"image/draw"
)

// RGB - a 24-bit color, one byte per channel. Alpha is out of scope,
// cells are always solid.
type RGB struct {
	R, G, B uint8
}

// Hex - ARGB hex form with a solid alpha, the key spreadsheet fills use.
func (c RGB) Hex() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

// Pixel - one grid position and its source color.
type Pixel struct {
	X, Y  int
	Color RGB
}

// Grid - a decoded image flattened to row-major RGB triples.
// Built once per conversion and read-only from then on.
type Grid struct {
	Width  int
	Height int
	Pix    []RGB
}

// FromImage flattens any decoded image into a Grid, dropping alpha.
func FromImage(src image.Image) *Grid {
	b := src.Bounds()
	rgba, ok := src.(*image.RGBA)
	if !ok {
		replace := image.NewRGBA(b)
		draw.Draw(replace, b, src, b.Min, draw.Src)
		rgba = replace
	}
	g := &Grid{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]RGB, b.Dx()*b.Dy()),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			o := rgba.PixOffset(x, y)
			g.Pix[i] = RGB{rgba.Pix[o], rgba.Pix[o+1], rgba.Pix[o+2]}
			i++
		}
	}
	return g
}

// At - color at (x, y), zero-indexed.
func (g *Grid) At(x, y int) RGB {
	return g.Pix[y*g.Width+x]
}

// PixelAt - position and color at (x, y).
func (g *Grid) PixelAt(x, y int) Pixel {
	return Pixel{X: x, Y: y, Color: g.At(x, y)}
}
