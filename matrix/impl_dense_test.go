// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/perron/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m := mustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the finite-only numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m := mustDense(t, 2, 2)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(1, 1, math.Inf(-1)), matrix.ErrNaNInf)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v, "rejected write must not land")
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestCloneIndependence ensures Clone() returns a deep copy.
func TestCloneIndependence(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestNewDenseFrom covers copying, ragged rows and the numeric policy.
func TestNewDenseFrom(t *testing.T) {
	rows := [][]float64{{1, 1, 2}, {2, 1, 3}, {2, 3, 5}}
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	rows[2][2] = 99 // the Dense must not alias its input
	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 5.0, v)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	_, err = matrix.NewDenseFrom([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestDoEarlyExit checks row-major order and early termination.
func TestDoEarlyExit(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)

		return v < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)
}

// TestFlatten checks copy-on-entry for both the Dense fast path and the fallback.
func TestFlatten(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := []float64{1, 2, 3, 4, 5, 6}

	flat, err := matrix.Flatten(m)
	require.NoError(t, err)
	require.Equal(t, want, flat)
	flat[0] = 42
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "Flatten must not alias the matrix")

	flat, err = matrix.Flatten(hide{m})
	require.NoError(t, err)
	require.Equal(t, want, flat)

	_, err = matrix.Flatten(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
