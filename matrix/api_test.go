// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/perron/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	I, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	sums, err := matrix.RowSums(I)
	require.NoError(t, err)
	require.Equal(t, matrix.UniformVector(4, 1), sums)
	v, err := I.At(2, 2)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	v, err = I.At(2, 1)
	require.NoError(t, err)
	require.Zero(t, v)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewHilbert(t *testing.T) {
	H, err := matrix.NewHilbert(3)
	require.NoError(t, err)
	want := mustFrom(t, [][]float64{
		{1, 1.0 / 2, 1.0 / 3},
		{1.0 / 2, 1.0 / 3, 1.0 / 4},
		{1.0 / 3, 1.0 / 4, 1.0 / 5},
	})
	require.Equal(t, want, H)
}

func TestNewRandomPositive(t *testing.T) {
	a, err := matrix.NewRandomPositive(16, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	b, err := matrix.NewRandomPositive(16, rand.New(rand.NewSource(5)))
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed, same matrix")

	a.Do(func(i, j int, v float64) bool {
		require.Truef(t, v > 0 && v <= 1, "(%d,%d)=%g", i, j, v)

		return true
	})

	_, err = matrix.NewRandomPositive(4, nil)
	require.ErrorIs(t, err, matrix.ErrNilSource)
	_, err = matrix.NewRandomPositive(-1, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestVectors(t *testing.T) {
	require.Equal(t, []float64{1, 2, 3, 4}, matrix.IndexVector(4))
	require.Equal(t, []float64{7, 7}, matrix.UniformVector(2, 7))
	ramp := matrix.RampVector(3, 0.5)
	require.Equal(t, []float64{0.5, 1, 1.5}, ramp)
	require.Empty(t, matrix.IndexVector(0))
}

func TestMatVecAndRowSums(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 1, 2}, {2, 1, 3}, {2, 3, 5}})

	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, -1, -3}, y)

	yHidden, err := matrix.MatVec(hide{m}, []float64{1, 0, -1})
	require.NoError(t, err)
	require.Equal(t, y, yHidden)

	sums, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 6, 10}, sums)

	_, err = matrix.MatVec(m, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
