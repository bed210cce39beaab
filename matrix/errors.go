// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels and tests MUST check them
// via errors.Is. No function should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites add context with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in validators and tests):
// nil -> shape -> dimension mismatch -> numeric policy (NaN/Inf, sign).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the matrix column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows signals that a row-slice literal has rows of unequal length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeEntry signals a negative entry where an entrywise non-negative
	// matrix is required (Perron–Frobenius inputs).
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrZeroScale signals a zero diagonal entry in a similarity scaling,
	// whose inverse does not exist.
	ErrZeroScale = errors.New("matrix: zero diagonal scale")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilSource indicates that a nil random source was passed to a generator.
	ErrNilSource = errors.New("matrix: nil random source")
)
