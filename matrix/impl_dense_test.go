// Package matrix_test contains unit tests for the column-major Dense
// implementation of the Matrix interface.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/densefill/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseOverflow ensures a shape whose cell count overflows int is refused before allocation.
func TestNewDenseOverflow(t *testing.T) {
	_, err := matrix.NewDense(math.MaxInt/2, 3)
	require.ErrorIs(t, err, matrix.ErrShapeOverflow)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() report the constructor's shape.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
	require.Len(t, m.Data(), rows*cols)
	require.False(t, m.Borrowed())
}

// TestColumnMajorLayout pins the storage formula: (r, c) lives at c*rows + r.
func TestColumnMajorLayout(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(2, 1, 7)) // offset 1*3 + 2 = 5
	require.NoError(t, m.Set(1, 0, 4)) // offset 0*3 + 1 = 1

	require.Equal(t, []float64{0, 4, 0, 0, 0, 7}, m.Data())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Dense.Set(0,-1)")
}

// TestNewDenseFromBorrows checks that the borrowed view shares memory with the caller's buffer.
func TestNewDenseFromBorrows(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6, 99} // one spare trailing cell
	m, err := matrix.NewDenseFrom(buf, 3, 2)
	require.NoError(t, err)
	require.True(t, m.Borrowed())
	require.Len(t, m.Data(), 6)
	require.Equal(t, 6, cap(m.Data()))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v)

	require.NoError(t, m.Set(2, 1, -6))
	require.Equal(t, -6.0, buf[5]) // write visible to the owner
	require.Equal(t, 99.0, buf[6]) // cell past rows*cols untouched
}

// TestNewDenseFromErrors walks the borrow constructor's error priority.
func TestNewDenseFromErrors(t *testing.T) {
	_, err := matrix.NewDenseFrom(make([]float64, 4), -1, 4)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(make([]float64, 4), math.MaxInt, 2)
	require.ErrorIs(t, err, matrix.ErrShapeOverflow)

	_, err = matrix.NewDenseFrom(make([]float64, 5), 2, 3)
	require.ErrorIs(t, err, matrix.ErrBufferTooShort)
	require.Contains(t, err.Error(), "NewDenseFrom(2,3)")
}

// TestNewDenseFromZeroShape allows empty views, including over a nil buffer.
func TestNewDenseFromZeroShape(t *testing.T) {
	m, err := matrix.NewDenseFrom(nil, 0, 7)
	require.NoError(t, err)
	require.Empty(t, m.Data())
	require.Equal(t, "", m.String())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	buf := make([]float64, 4)
	m, err := matrix.NewDenseFrom(buf, 2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1.0))

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
	require.False(t, clone.(*matrix.Dense).Borrowed())
}

// TestStringOutput checks that String() prints rows even though storage is column-major.
func TestStringOutput(t *testing.T) {
	m, err := matrix.NewDenseFrom([]float64{1, 3, 2, 4}, 2, 2)
	require.NoError(t, err)

	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestOffsetWide verifies offsets past the 32-bit range with int32-sized inputs.
func TestOffsetWide(t *testing.T) {
	rows := 100_000
	var row, col int32 = 99_999, 70_000 // 70_000*100_000 > 2^32

	got := matrix.Offset(int64(row), int64(col), rows)
	require.Equal(t, int64(7_000_099_999), got)
	require.Greater(t, got, int64(math.MaxUint32))
}
