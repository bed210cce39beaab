// SPDX-License-Identifier: MIT
// Package matrix: public constructors, generators and serial reference kernels.
//
// Purpose:
//   - Provide thin, well-documented entry points for building engine inputs.
//   - Keep generators deterministic: randomness only flows from the caller's *rand.Rand.
//   - Offer serial RowSums/MatVec so data-parallel kernels can be cross-checked.
//
// AI-Hints:
//   - NewRandomPositive with a fixed seed is the canonical benchmark input.
//   - NewHilbert is positive, symmetric and badly conditioned: a good stress case.

package matrix

import (
	"fmt"
	"math/rand"
)

// Generator bounds for NewRandomPositive (open interval (lo, hi]).
const (
	randomPositiveLo = 0.0
	randomPositiveHi = 1.0
)

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
//
// AI-Hints: every row of I_n sums to exactly 1, which makes it the integer-valued
// fixture for row-sum kernels.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewHilbert returns the n×n Hilbert matrix H[i][j] = 1/(i+j+1).
// Complexity: O(n^2).
func NewHilbert(n int) (*Dense, error) {
	H, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			H.data[i*n+j] = 1.0 / float64(i+j+1)
		}
	}

	return H, nil
}

// NewRandomPositive returns an n×n matrix with entries drawn uniformly from (0, 1].
// MAIN DESCRIPTION:
//   - Entrywise-positive input: guarantees a simple Perron eigenvalue.
//
// Implementation:
//   - Stage 1: validate n and the random source.
//   - Stage 2: fill row-major with 1 - rng.Float64() (never zero).
//
// Errors:
//   - ErrInvalidDimensions, ErrNilSource.
//
// Determinism:
//   - Same seed ⇒ same matrix.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func NewRandomPositive(n int, rng *rand.Rand) (*Dense, error) {
	if rng == nil {
		return nil, ErrNilSource
	}
	M, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	span := randomPositiveHi - randomPositiveLo
	for k := range M.data {
		M.data[k] = randomPositiveLo + span*(1.0-rng.Float64()) // (lo, hi]
	}

	return M, nil
}

// IndexVector returns [1, 2, …, n]; its maximum is exactly n.
func IndexVector(n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i + 1)
	}

	return v
}

// UniformVector returns n copies of value.
func UniformVector(n int, value float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = value
	}

	return v
}

// RampVector returns [step, 2*step, …, n*step].
// Adjacent entries differ by step; the first and last differ by (n-1)*step.
func RampVector(n int, step float64) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = float64(i+1) * step
	}

	return v
}

// MatVec computes y = m·x serially in row-major order.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols), or At errors.
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, fmt.Errorf("MatVec: %w", err)
	}

	y := make([]float64, rows)
	var (
		i, j int
		sum  float64
	)
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			sum = 0
			row := d.data[i*cols : (i+1)*cols]
			for j = 0; j < cols; j++ {
				sum += row[j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = 0
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("MatVec: %w", err)
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// RowSums returns the per-row sums of m (serial reference).
// It multiplies m by the all-ones vector; Complexity O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("RowSums: %w", err)
	}

	return MatVec(m, UniformVector(m.Cols(), 1.0))
}
