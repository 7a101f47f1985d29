package convert

import (
	"github.com/submersibletoaster/pixelsheet/palette"
	"github.com/submersibletoaster/pixelsheet/pixel"
)

// Cell - one admitted fill color assigned to a 1-indexed sheet position.
type Cell struct {
	Row   int
	Col   int
	Color pixel.RGB
}

// progressSlices splits a run into ~0.5% progress ticks.
const progressSlices = 200

// Walk streams one Cell per pixel in row-major order (y outer, x inner),
// quantizing each color and resolving it through the cache. notify
// receives Progress ticks and the one-time capacity Warning. The
// returned channel closes after the last pixel; it is single-use.
//
// Walk owns the cache until the channel closes - nothing else may
// mutate it while a walk is running.
func Walk(g *pixel.Grid, bits int, cache *palette.Cache, notify func(Event)) <-chan Cell {
	if notify == nil {
		notify = func(Event) {}
	}
	out := make(chan Cell, 64)
	go func() {
		defer close(out)
		total := g.Width * g.Height
		step := total / progressSlices
		if step < 1 {
			step = 1
		}
		warned := false
		processed := 0
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				p := g.PixelAt(x, y)
				q := pixel.Quantize(p.Color, bits)
				admitted, res := cache.Resolve(q)
				if res == palette.Merged && !warned {
					warned = true
					notify(Warning{Message: "style limit reached, merging similar colors"})
				}
				out <- Cell{Row: p.Y + 1, Col: p.X + 1, Color: admitted}
				processed++
				if processed%step == 0 {
					notify(Progress{Percent: float64(processed) / float64(total) * 100})
				}
			}
		}
	}()
	return out
}
