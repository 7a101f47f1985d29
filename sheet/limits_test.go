package sheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckAcceptsSmallImage(t *testing.T) {
	require.NoError(t, ExcelLimits().Check(100, 100))
}

func TestCheckRejectsTooWide(t *testing.T) {
	err := ExcelLimits().Check(20000, 10)
	require.Error(t, err)
	require.Contains(t, err.Error(), "width")

	var dim *DimensionError
	require.True(t, errors.As(err, &dim))
	require.Equal(t, "width", dim.Axis)
	require.Equal(t, 20000, dim.Size)
	require.Equal(t, 16384, dim.Limit)
	require.Contains(t, err.Error(), "3616") // overshoot
}

func TestCheckRejectsTooTall(t *testing.T) {
	err := ExcelLimits().Check(10, 2000000)
	require.Error(t, err)

	var dim *DimensionError
	require.True(t, errors.As(err, &dim))
	require.Equal(t, "height", dim.Axis)
}

func TestCheckCustomLimits(t *testing.T) {
	l := Limits{MaxRows: 4, MaxCols: 4, MaxStyles: 10}
	require.NoError(t, l.Check(4, 4))
	require.Error(t, l.Check(5, 4))
	require.Error(t, l.Check(4, 5))
}

func TestCheckExactCeilingAccepted(t *testing.T) {
	l := ExcelLimits()
	require.NoError(t, l.Check(l.MaxCols, l.MaxRows))
}
