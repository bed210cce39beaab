// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/perron/matrix"
	"github.com/stretchr/testify/require"
)

func TestScaleRowsCols(t *testing.T) {
	X := mustFrom(t, [][]float64{{1, 2}, {3, 4}})

	rows, err := matrix.ScaleRows(X, []float64{2, -1})
	require.NoError(t, err)
	require.Equal(t, mustFrom(t, [][]float64{{2, 4}, {-3, -4}}), rows)

	cols, err := matrix.ScaleCols(hide{X}, []float64{10, 0})
	require.NoError(t, err)
	require.Equal(t, mustFrom(t, [][]float64{{10, 0}, {30, 0}}), cols)

	_, err = matrix.ScaleRows(X, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ScaleCols(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDiagonalSimilarity(t *testing.T) {
	X := mustFrom(t, [][]float64{{1, 1, 2}, {2, 1, 3}, {2, 3, 5}})
	d := []float64{4, 6, 10}

	S, err := matrix.DiagonalSimilarity(X, d)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x, _ := X.At(i, j)
			s, _ := S.At(i, j)
			require.InDeltaf(t, x*d[j]/d[i], s, 1e-12, "(%d,%d)", i, j)
		}
	}

	// Diagonal entries are invariant under a diagonal similarity.
	for i := 0; i < 3; i++ {
		x, _ := X.At(i, i)
		s, _ := S.At(i, i)
		require.InDelta(t, x, s, 1e-12)
	}

	_, err = matrix.DiagonalSimilarity(X, []float64{1, 0, 1})
	require.ErrorIs(t, err, matrix.ErrZeroScale)
	_, err = matrix.DiagonalSimilarity(mustDense(t, 2, 3), []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.DiagonalSimilarity(X, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFrom(t, [][]float64{{1, 2.001}, {3, 4}})

	ok, err := matrix.AllClose(a, b, 0, 1e-2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-4)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, -1e-3, 0)
	require.NoError(t, err)
	require.True(t, ok, "negative rtol is normalized")

	_, err = matrix.AllClose(a, mustDense(t, 2, 3), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(nil, b, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
