// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"

	"github.com/katalvlaran/perron/device"
)

// RowSum submits sums[r] = Σ_c mat[r*n+c] for the n×n row-major mat.
//
// sums is reset to 0 by a fill submitted after deps; the reduction depends on
// that fill. Each work-group covers wg columns of one row and adds its partial
// sum to sums[row] with a single atomic add.
func RowSum(q *device.Queue, mat []float64, n, wg int, sums *device.AtomicVector, deps ...*device.Event) (*device.Event, error) {
	if len(mat) != n*n {
		return nil, shapeErrorf("RowSum", "matrix", len(mat), n*n)
	}
	if sums.Len() != n {
		return nil, shapeErrorf("RowSum", "sums", sums.Len(), n)
	}
	r, err := device.Range2D(n, n, wg)
	if err != nil {
		return nil, fmt.Errorf("RowSum: %w", err)
	}

	reset := q.Submit("rowsum.reset", func() { sums.Fill(SumOp.Identity) }, deps...)

	return q.ParallelFor("rowsum", r, func(g *device.Group) {
		row, c0 := g.Origin()
		base := row*n + c0
		Reduce(g, SumOp,
			func(l int) float64 { return mat[base+l] },
			func(s float64) { sums.Add(row, s) },
		)
	}, reset), nil
}
