package palette

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/submersibletoaster/pixelsheet/pixel"
)

func TestCacheAdmitsDistinctColorsBelowLimit(t *testing.T) {
	c := NewCache(10, nil)
	colors := []pixel.RGB{
		{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}, {R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255},
	}
	for _, in := range colors {
		got, res := c.Resolve(in)
		require.Equal(t, Inserted, res)
		require.Equal(t, in, got)
	}
	require.Equal(t, len(colors), c.Len())
	require.Equal(t, len(colors), c.Misses())
	require.Zero(t, c.Merges())

	// the same colors again are all hits
	for _, in := range colors {
		got, res := c.Resolve(in)
		require.Equal(t, Hit, res)
		require.Equal(t, in, got)
	}
	require.Equal(t, len(colors), c.Hits())
	require.Equal(t, len(colors), c.Len())
}

func TestCacheMergesWhenFull(t *testing.T) {
	c := NewCache(2, nil)
	dark := pixel.RGB{R: 0, G: 0, B: 0}
	light := pixel.RGB{R: 255, G: 255, B: 255}
	c.Resolve(dark)
	c.Resolve(light)
	require.True(t, c.Full())

	got, res := c.Resolve(pixel.RGB{R: 10, G: 10, B: 10})
	require.Equal(t, Merged, res)
	require.Equal(t, dark, got)
	require.Equal(t, 2, c.Len(), "size must not grow past the limit")

	got, res = c.Resolve(pixel.RGB{R: 200, G: 210, B: 220})
	require.Equal(t, Merged, res)
	require.Equal(t, light, got)
	require.Equal(t, 2, c.Merges())
}

func TestCacheMergeTieBreaksOnInsertionOrder(t *testing.T) {
	c := NewCache(2, nil)
	first := pixel.RGB{R: 100, G: 0, B: 0}
	second := pixel.RGB{R: 0, G: 100, B: 0}
	c.Resolve(first)
	c.Resolve(second)

	// equidistant from both entries; the first-inserted one wins
	got, res := c.Resolve(pixel.RGB{R: 50, G: 50, B: 0})
	require.Equal(t, Merged, res)
	require.Equal(t, first, got)
}

func TestCacheMergedColorStaysMerged(t *testing.T) {
	c := NewCache(1, nil)
	base := pixel.RGB{R: 8, G: 8, B: 8}
	c.Resolve(base)

	in := pixel.RGB{R: 16, G: 16, B: 16}
	got, res := c.Resolve(in)
	require.Equal(t, Merged, res)
	require.Equal(t, base, got)

	// resolving again still merges: nothing was admitted for it
	got, res = c.Resolve(in)
	require.Equal(t, Merged, res)
	require.Equal(t, base, got)
	require.Equal(t, 1, c.Len())
}

func TestCacheLimitClamp(t *testing.T) {
	c := NewCache(0, nil)
	_, res := c.Resolve(pixel.RGB{R: 1, G: 2, B: 3})
	require.Equal(t, Inserted, res)
	require.Equal(t, 1, c.Len())
}

func TestRGBSquared(t *testing.T) {
	a := pixel.RGB{R: 10, G: 20, B: 30}
	b := pixel.RGB{R: 13, G: 16, B: 30}
	require.Zero(t, RGBSquared(a, a))
	require.Equal(t, RGBSquared(a, b), RGBSquared(b, a))
	require.Equal(t, float64(3*3+4*4), RGBSquared(a, b))
}

func TestLabDistance(t *testing.T) {
	a := pixel.RGB{R: 10, G: 20, B: 30}
	b := pixel.RGB{R: 200, G: 100, B: 0}
	require.Zero(t, Lab(a, a))
	require.InDelta(t, Lab(a, b), Lab(b, a), 1e-12)
	require.Greater(t, Lab(a, b), 0.0)
}

func TestCacheLabMerge(t *testing.T) {
	c := NewCache(2, Lab)
	dark := pixel.RGB{R: 0, G: 0, B: 0}
	light := pixel.RGB{R: 255, G: 255, B: 255}
	c.Resolve(dark)
	c.Resolve(light)

	got, res := c.Resolve(pixel.RGB{R: 20, G: 20, B: 20})
	require.Equal(t, Merged, res)
	require.Equal(t, dark, got)
}
