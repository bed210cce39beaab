// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide serial row/column scaling and the diagonal similarity
//     D⁻¹·X·D built from them, as the reference for the data-parallel
//     Transform kernel.
//   - Provide AllClose for tolerance comparison of whole matrices.
//
// Determinism & Performance:
//   - Fixed i→j loops; *Dense inputs use the flat-slice fast path.
//   - Each op allocates exactly one output Dense; O(r*c) time and space.

package matrix

import (
	"fmt"
	"math"
)

const (
	opScaleRows  = "ScaleRows"
	opScaleCols  = "ScaleCols"
	opSimilarity = "DiagonalSimilarity"
	opAllClose   = "AllClose"
)

func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ScaleRows returns out[i,j] = X[i,j] * scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Rows), At errors.
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, opErrorf(opScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != r {
		return nil, opErrorf(opScaleRows, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, opErrorf(opScaleRows, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			sf := scale[i] // one factor per row
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * sf
			}
		}

		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		sf := scale[i]
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, opErrorf(opScaleRows, err)
			}
			out.data[i*c+j] = v * sf
		}
	}

	return out, nil
}

// ScaleCols returns out[i,j] = X[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols), At errors.
func ScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, opErrorf(opScaleCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != c {
		return nil, opErrorf(opScaleCols, ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, opErrorf(opScaleCols, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * scale[j]
			}
		}

		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, opErrorf(opScaleCols, err)
			}
			out.data[i*c+j] = v * scale[j]
		}
	}

	return out, nil
}

// DiagonalSimilarity returns D⁻¹·X·D for D = diag(d), i.e.
// out[i,j] = X[i,j] * d[j] / d[i]. The spectrum of X is preserved.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrZeroScale.
func DiagonalSimilarity(X Matrix, d []float64) (*Dense, error) {
	if err := ValidateSquareNonNil(X); err != nil {
		return nil, opErrorf(opSimilarity, err)
	}
	if err := ValidateVecLen(d, X.Rows()); err != nil {
		return nil, opErrorf(opSimilarity, err)
	}
	inv := make([]float64, len(d))
	for i, v := range d {
		if v == 0 {
			return nil, opErrorf(opSimilarity, fmt.Errorf("d[%d]: %w", i, ErrZeroScale))
		}
		inv[i] = 1 / v
	}

	rows, err := ScaleRows(X, inv)
	if err != nil {
		return nil, opErrorf(opSimilarity, err)
	}

	return ScaleCols(rows, d)
}

// AllClose reports whether |a[i,j]-b[i,j]| ≤ atol + rtol*|b[i,j]| for all i,j.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances are rejected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, At errors.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, opErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, opErrorf(opAllClose, err)
	}

	within := func(x, y float64) bool {
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var (
		av, bv float64
		err    error
	)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, opErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, opErrorf(opAllClose, err)
			}
			if !within(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
