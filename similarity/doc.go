// SPDX-License-Identifier: MIT

// Package similarity finds the dominant (Perron) eigenvalue and eigenvector of
// a square, entrywise-positive matrix by power iteration combined with
// similarity transforms.
//
// Each iteration computes the row sums s of the working matrix A, multiplies
// the eigenvector estimate by s / max(s), and, unless every cyclically adjacent
// pair of row sums already agrees within Epsilon, replaces A with Σ⁻¹·A·Σ where
// Σ = diag(s). The transform preserves the spectrum while flattening the row
// sums; once they agree, the common row sum is the dominant eigenvalue.
//
// Stages run as kernels on a device.Queue and are ordered only by their
// event dependencies:
//
//	RowSum ─┬─ Max ──── UpdateEigenvector ──┐
//	        └─ Converged ─ Transform ───────┴─ next RowSum
//
// UpdateEigenvector waits on Max only: it reads the maximum row sum and never
// the convergence flag, so it may overlap the Converged stage.
//
// Errors
//
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
//     matrix.ErrNegativeEntry for bad input.
//   - ErrDimensionTooSmall  if N < 2.
//   - ErrWorkGroupSize      if an explicit work-group size does not divide N.
//   - ErrOptionViolation    for an invalid Option value.
//   - ErrDegenerate         if the maximum row sum is not a positive finite
//     number (NaN included), or a transform meets a zero row sum.
//
// Reaching MaxIterations is not an error: the Result reports
// StateCapReached with Converged == false.
//
// The caller's matrix is copied on entry and never written.
package similarity
