package convert

import (
	"fmt"
	"io"

	ansi "github.com/gookit/color"

	"github.com/submersibletoaster/pixelsheet/pixel"
)

// writeANSI renders the cell stream as colored terminal blocks, two
// columns per cell so the aspect roughly matches the sheet. Closes done
// once the stream is drained.
func writeANSI(w io.Writer, cells <-chan Cell, done chan<- struct{}) {
	defer close(done)
	for cell := range cells {
		if cell.Col == 1 && cell.Row > 1 {
			fmt.Fprint(w, "\033[0m\n")
		}
		cSeq := ansi.NewRGBStyle(toANSI(cell.Color), toANSI(cell.Color))
		fmt.Fprint(w, cSeq.Sprint("  "))
	}
	fmt.Fprint(w, "\033[0m\n")
}

func toANSI(in pixel.RGB) ansi.RGBColor {
	return ansi.RGBColor{in.R, in.G, in.B, 0}
}
