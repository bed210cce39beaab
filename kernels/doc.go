// SPDX-License-Identifier: MIT

// Package kernels holds the data-parallel stages of one similarity-transform
// iteration, each submitted to a device.Queue and returning the *device.Event
// that completes when the stage's writes are visible.
//
// What
//
//   - Reduce:            lane-cluster fold of a group's items, one commit per group.
//   - RowSum:            sums[r] = Σ_c mat[r][c].
//   - Max:               dst = max_r sums[r].
//   - Fill:              v[i] = value.
//   - UpdateEigenvector: eig[r] *= sums[r] / max_r sums[r].
//   - Transform:         mat[r][c] *= sums[c] / sums[r] (the similarity Σ⁻¹·A·Σ).
//   - Converged:         flag = AND_r |sums[r] - sums[r-1 mod N]| < eps.
//
// Ordering
//
//	Every kernel that resets its destination (RowSum, Max, Converged) submits the
//	reset first and makes the reduction depend on it, so callers only pass the
//	events of the stages that produced their inputs.
//
// Buffers
//
//	The matrix is an N×N row-major []float64. Shared reduction targets are the
//	device atomic cells. Work-group size wg must divide N; otherwise the kernels
//	return device.ErrBadRange before submitting anything.
//
// Determinism
//
//	Group commits race, so floating-point sums may differ in the last bits from
//	run to run. Integer-valued inputs reduce exactly.
package kernels
