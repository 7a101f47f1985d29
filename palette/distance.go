package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/submersibletoaster/pixelsheet/pixel"
)

// DistanceFunc scores how far apart two colors are. Lower is closer.
// Must be symmetric and zero for identical colors.
type DistanceFunc func(a, b pixel.RGB) float64

// RGBSquared - squared euclidean distance over the three channels.
func RGBSquared(a, b pixel.RGB) float64 {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return float64(dr*dr + dg*dg + db*db)
}

// Lab - perceptual distance in CIE Lab space.
func Lab(a, b pixel.RGB) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceLab(cb)
}
