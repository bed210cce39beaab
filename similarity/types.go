// SPDX-License-Identifier: MIT

package similarity

import (
	"errors"
	"time"
)

// Sentinel errors for Run.
var (
	// ErrDimensionTooSmall is returned for matrices smaller than 2×2.
	ErrDimensionTooSmall = errors.New("similarity: matrix dimension must be at least 2")

	// ErrWorkGroupSize is returned when the work-group size does not divide N.
	ErrWorkGroupSize = errors.New("similarity: work-group size must divide the matrix dimension")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("similarity: invalid option supplied")

	// ErrDegenerate is returned when the iteration meets a zero or non-finite
	// scale: a non-positive or non-finite maximum row sum, or a zero row sum.
	ErrDegenerate = errors.New("similarity: degenerate row sums")
)

// State is the driver's lifecycle position.
type State int

const (
	// StateInit is the state before the first iteration.
	StateInit State = iota
	// StateIterating is the state while iterations are in flight.
	StateIterating
	// StateConverged means the row sums agreed within Epsilon.
	StateConverged
	// StateCapReached means MaxIterations transforms ran without convergence.
	StateCapReached
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateIterating:
		return "iterating"
	case StateConverged:
		return "converged"
	case StateCapReached:
		return "cap-reached"
	default:
		return "unknown"
	}
}

// Result is the outcome of Run.
//
//   - Value:      row sum 0 of the final pass (the eigenvalue once converged).
//   - Vector:     eigenvector estimate, scaled so its largest entry is near 1.
//   - RowSums:    the final row sums.
//   - Iterations: transforms applied (0 if the input already had equal row sums).
//   - Elapsed:    wall time of the iteration loop only.
//   - WorkGroupSize: the work-group size the kernels ran with.
type Result struct {
	Value         float64
	Vector        []float64
	RowSums       []float64
	Iterations    int
	Elapsed       time.Duration
	Converged     bool
	State         State
	WorkGroupSize int
}

// Iteration is the snapshot passed to the OnIteration hook after each
// convergence check.
type Iteration struct {
	// Index is the number of transforms applied before this pass.
	Index int
	// Max is this pass's maximum row sum.
	Max float64
	// Converged reports whether this pass stops the iteration.
	Converged bool
	// Elapsed is the wall time since the loop started.
	Elapsed time.Duration
}
