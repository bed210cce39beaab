// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix used as input to the
// perron engine, together with validators and deterministic generators.
//
// What
//
//   - Dense: row-major storage with bounds-checked At/Set, Clone and String.
//   - Flatten: copy-on-entry export of any Matrix into a private row-major
//     buffer. Engines operate on that buffer and never alias caller data.
//   - Validators: nil, square, same-shape, vector length, finite and non-negative
//     checks, each returning a sentinel from errors.go.
//   - Generators: identity, Hilbert, random-positive matrices and the small
//     vector fixtures (index, uniform, ramp) used by kernel tests.
//   - RowSums / MatVec / DiagonalSimilarity: serial reference kernels for
//     cross-checking the data-parallel ones; AllClose compares the results.
//
// Errors
//
//   - ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//     ErrRaggedRows, ErrNaNInf, ErrNegativeEntry, ErrZeroScale, ErrNilMatrix,
//     ErrNilSource.
//
// Determinism
//
//	All loops run in fixed row-major order. Random generators draw from the
//	caller's *rand.Rand only, so a fixed seed reproduces the same matrix.
package matrix
