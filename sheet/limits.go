// Package sheet knows the hard limits of the target spreadsheet format
// and writes per-pixel solid fills into an xlsx workbook.
package sheet

import "fmt"

// Limits - ceilings of the target spreadsheet format. All overridable
// so other formats can supply their own.
type Limits struct {
	MaxRows   int
	MaxCols   int
	MaxStyles int
}

// ExcelLimits - safe ceilings for xlsx workbooks.
func ExcelLimits() Limits {
	return Limits{
		MaxRows:   1048576,
		MaxCols:   16384,
		MaxStyles: 64000,
	}
}

// DimensionError - an image axis the format cannot hold.
type DimensionError struct {
	Axis  string // "width" or "height"
	Size  int
	Limit int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("image %s (%d) exceeds the format limit (%d) by %d",
		e.Axis, e.Size, e.Limit, e.Size-e.Limit)
}

// Check validates image dimensions against the ceilings. Runs before
// any cell work so an oversized image fails with zero partial output.
func (l Limits) Check(width, height int) error {
	if height > l.MaxRows {
		return &DimensionError{Axis: "height", Size: height, Limit: l.MaxRows}
	}
	if width > l.MaxCols {
		return &DimensionError{Axis: "width", Size: width, Limit: l.MaxCols}
	}
	return nil
}
