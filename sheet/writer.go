package sheet

import (
	"fmt"

	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/submersibletoaster/pixelsheet/pixel"
)

const (
	sheetName = "Pixel Art"
	colWidth  = 2.75 // characters, keeps cells near-square
	rowHeight = 15   // points
)

// Writer streams per-cell solid fills into an xlsx workbook. One style
// is registered per distinct fill color, so the caller must keep the
// distinct colors it applies within the format's style ceiling.
type Writer struct {
	wb     *spreadsheet.Workbook
	sheet  spreadsheet.Sheet
	rows   []spreadsheet.Row
	styles map[string]spreadsheet.CellStyle
}

// NewWriter - a workbook sized for a width x height pixel grid.
func NewWriter(width, height int) *Writer {
	wb := spreadsheet.New()
	sh := wb.AddSheet()
	sh.SetName(sheetName)
	for col := 0; col < width; col++ {
		sh.Column(uint32(col + 1)).SetWidth(colWidth * measurement.Character)
	}
	rows := make([]spreadsheet.Row, height)
	for r := 0; r < height; r++ {
		row := sh.AddRow()
		row.SetHeight(rowHeight * measurement.Point)
		rows[r] = row
	}
	return &Writer{
		wb:     wb,
		sheet:  sh,
		rows:   rows,
		styles: make(map[string]spreadsheet.CellStyle),
	}
}

// Apply fills the 1-indexed (row, col) cell with a solid color,
// registering a style for the color the first time it is seen.
func (w *Writer) Apply(row, col int, c pixel.RGB) {
	key := c.Hex()
	cs, ok := w.styles[key]
	if !ok {
		cs = w.addSolidFill(c)
		w.styles[key] = cs
	}
	colName := reference.IndexToColumn(uint32(col - 1))
	w.rows[row-1].Cell(colName).SetStyle(cs)
}

func (w *Writer) addSolidFill(c pixel.RGB) spreadsheet.CellStyle {
	f := w.wb.StyleSheet.Fills().AddFill()
	pf := f.SetPatternFill()
	pf.SetPattern(sml.ST_PatternTypeSolid)
	pf.SetFgColor(color.RGBA(c.R, c.G, c.B, 0xff))
	cs := w.wb.StyleSheet.AddCellStyle()
	cs.SetFill(f)
	return cs
}

// StyleCount - distinct fill styles registered so far.
func (w *Writer) StyleCount() int {
	return len(w.styles)
}

// Save validates the workbook and writes it to path.
func (w *Writer) Save(path string) error {
	if err := w.wb.Validate(); err != nil {
		return fmt.Errorf("validate workbook: %w", err)
	}
	if err := w.wb.SaveToFile(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
