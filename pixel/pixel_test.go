package pixel

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	require.Equal(t, "FFF80000", RGB{248, 0, 0}.Hex())
	require.Equal(t, "FF000000", RGB{}.Hex())
	require.Equal(t, "FF0A0B0C", RGB{10, 11, 12}.Hex())
}

func TestFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})

	g := FromImage(img)
	require.Equal(t, 2, g.Width)
	require.Equal(t, 2, g.Height)
	require.Equal(t, RGB{255, 0, 0}, g.At(0, 0))
	require.Equal(t, RGB{0, 255, 0}, g.At(1, 0))
	require.Equal(t, RGB{0, 0, 255}, g.At(0, 1))
	require.Equal(t, RGB{10, 20, 30}, g.At(1, 1))

	p := g.PixelAt(1, 0)
	require.Equal(t, Pixel{X: 1, Y: 0, Color: RGB{0, 255, 0}}, p)
}

func TestFromImageConvertsOtherModels(t *testing.T) {
	// non-RGBA source goes through a draw pass first
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 255})

	g := FromImage(img)
	require.Equal(t, RGB{200, 100, 50}, g.At(0, 0))
}

func TestFromImageOffsetBounds(t *testing.T) {
	// sub-images keep their parent's coordinate space
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.SetRGBA(2, 2, color.RGBA{9, 8, 7, 255})
	sub := img.SubImage(image.Rect(2, 2, 4, 4)).(*image.RGBA)

	g := FromImage(sub)
	require.Equal(t, 2, g.Width)
	require.Equal(t, 2, g.Height)
	require.Equal(t, RGB{9, 8, 7}, g.At(0, 0))
}
