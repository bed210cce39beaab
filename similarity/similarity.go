// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/perron/device"
	"github.com/katalvlaran/perron/kernels"
	"github.com/katalvlaran/perron/matrix"
)

// runner encapsulates the mutable state of one Run.
type runner struct {
	opts  Options
	q     *device.Queue
	n, wg int

	mat    []float64            // private row-major working copy
	sums   *device.AtomicVector // row sums of mat
	eig    []float64            // eigenvector estimate
	peak   device.Float64       // max row sum
	conv   device.Flag          // 1 = adjacent row sums agree
	status device.Flag          // 1 = no zero row sum met by a transform

	state      State
	iterations int
	start      time.Time
}

// Run computes the dominant eigenpair of m.
//
// Implementation:
//   - Stage 1: validate options and m (non-nil, square, N ≥ 2, finite,
//     non-negative), resolve
//     the work-group size, copy m into a private row-major buffer.
//   - Stage 2: initialize the eigenvector to ones and iterate
//     RowSum → {Max, Converged} → UpdateEigenvector → Transform until the row
//     sums converge or MaxIterations transforms have run.
//   - Stage 3: drain the queue and snapshot row sums and eigenvector.
//
// Errors: see the package documentation. On error no partial Result is returned.
//
// Complexity: O(N²) per iteration, spread over the device workers.
func Run(m matrix.Matrix, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}
	n := m.Rows()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensionTooSmall, n, n)
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}
	if err := matrix.ValidateNonNegative(m); err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}
	wg, err := workGroupSize(n, o.WorkGroupSize)
	if err != nil {
		return nil, err
	}
	mat, err := matrix.Flatten(m)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	r := &runner{
		opts: o,
		q:    device.NewQueue(o.Device),
		n:    n,
		wg:   wg,
		mat:  mat,
		sums: device.NewAtomicVector(n),
		eig:  make([]float64, n),
	}

	return r.run()
}

func (r *runner) run() (*Result, error) {
	defer r.q.Wait()

	r.status.Store(1)
	fill, err := kernels.Fill(r.q, r.eig, 1, r.wg)
	if err != nil {
		return nil, err
	}

	r.state = StateIterating
	r.start = time.Now()

	// prevTr and prevUp both read sums, so the next RowSum reset waits on them.
	var prevTr, prevUp *device.Event = nil, fill
	for {
		rs, err := kernels.RowSum(r.q, r.mat, r.n, r.wg, r.sums, prevTr, prevUp)
		if err != nil {
			return nil, err
		}
		mx, err := kernels.Max(r.q, r.sums, r.wg, &r.peak, rs)
		if err != nil {
			return nil, err
		}
		cv, err := kernels.Converged(r.q, r.sums, r.wg, r.opts.Epsilon, &r.conv, rs)
		if err != nil {
			return nil, err
		}

		mx.Wait()
		if err = r.healthy(); err != nil {
			return nil, err
		}
		// The update never reads the convergence flag; it only needs the final peak.
		up, err := kernels.UpdateEigenvector(r.q, r.eig, r.sums, &r.peak, r.wg, mx)
		if err != nil {
			return nil, err
		}

		cv.Wait()
		converged := r.conv.IsSet()
		r.opts.OnIteration(Iteration{
			Index:     r.iterations,
			Max:       r.peak.Load(),
			Converged: converged,
			Elapsed:   time.Since(r.start),
		})
		if converged {
			r.state = StateConverged
			up.Wait()

			break
		}

		tr, err := kernels.Transform(r.q, r.mat, r.n, r.wg, r.sums, &r.status, rs, cv)
		if err != nil {
			return nil, err
		}
		r.iterations++
		if r.iterations >= r.opts.MaxIterations {
			r.state = StateCapReached
			device.WaitAll(tr, up)
			if !r.status.IsSet() {
				return nil, r.degenerate("zero row sum")
			}

			break
		}
		prevTr, prevUp = tr, up
	}

	return r.result(), nil
}

// healthy checks the scale produced by the last Max stage and the status
// left by the previous Transform. It must be called after the Max event.
func (r *runner) healthy() error {
	if !r.status.IsSet() {
		return r.degenerate("zero row sum")
	}
	if p := r.peak.Load(); !(p > 0) || math.IsInf(p, 1) {
		return r.degenerate(fmt.Sprintf("max row sum %g", p))
	}

	return nil
}

func (r *runner) degenerate(what string) error {
	return fmt.Errorf("%w: %s after %d iterations", ErrDegenerate, what, r.iterations)
}

// result snapshots the buffers; every stage writing them has completed.
func (r *runner) result() *Result {
	elapsed := time.Since(r.start)
	sums := r.sums.Snapshot()
	vec := make([]float64, r.n)
	copy(vec, r.eig)

	res := &Result{
		Value:         sums[0],
		Vector:        vec,
		RowSums:       sums,
		Iterations:    r.iterations,
		Elapsed:       elapsed,
		Converged:     r.state == StateConverged,
		State:         r.state,
		WorkGroupSize: r.wg,
	}
	r.mat, r.eig = nil, nil

	return res
}
