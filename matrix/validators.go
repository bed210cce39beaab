// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep engines minimal by delegating shape/nil/numeric checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Element scans run O(r*c) in row-major order and stop at the first violation.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square → MinDim).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not nil (caller must ensure).
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateSameShape – Composite: NotNil(a) → NotNil(b) → equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameShape", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every entry of m is finite (no NaN, no ±Inf).
//
// Implementation:
//   - Stage 1: *Dense fast-path scans the flat buffer.
//   - Stage 2: fallback reads via At in row-major order.
//
// Errors: ErrNaNInf (wrapped with the first offending coordinates), or an At error.
// Complexity: O(r*c) time, O(1) space.
func ValidateFinite(m Matrix) error {
	var (
		badRow, badCol = -1, -1
		scanErr        error
	)
	check := func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			badRow, badCol = i, j

			return false
		}

		return true
	}

	if d, ok := m.(*Dense); ok {
		d.Do(check)
	} else {
		scanErr = scanAt(m, check)
	}
	if scanErr != nil {
		return validatorErrorf("ValidateFinite", scanErr)
	}
	if badRow >= 0 {
		return validatorErrorf("ValidateFinite", denseErrorf(ctxAt, badRow, badCol, ErrNaNInf))
	}

	return nil
}

// ValidateNonNegative ensures every entry of m is ≥ 0.
//
// Errors: ErrNegativeEntry (wrapped with coordinates), or an At error.
// Complexity: O(r*c) time, O(1) space.
// AI-Hints: Perron–Frobenius convergence needs a non-negative, irreducible input;
// this validator only checks the sign half of that contract.
func ValidateNonNegative(m Matrix) error {
	var (
		badRow, badCol = -1, -1
		scanErr        error
	)
	check := func(i, j int, v float64) bool {
		if v < 0 {
			badRow, badCol = i, j

			return false
		}

		return true
	}

	if d, ok := m.(*Dense); ok {
		d.Do(check)
	} else {
		scanErr = scanAt(m, check)
	}
	if scanErr != nil {
		return validatorErrorf("ValidateNonNegative", scanErr)
	}
	if badRow >= 0 {
		return validatorErrorf("ValidateNonNegative", denseErrorf(ctxAt, badRow, badCol, ErrNegativeEntry))
	}

	return nil
}

// scanAt is the At-based fallback for element scans over foreign Matrix types.
func scanAt(m Matrix, f func(i, j int, v float64) bool) error {
	rows, cols := m.Rows(), m.Cols()
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if !f(i, j, v) {
				return nil
			}
		}
	}

	return nil
}
