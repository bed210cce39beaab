// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"

	"github.com/katalvlaran/perron/device"
)

// Transform submits the similarity transform mat ← Σ⁻¹·mat·Σ with
// Σ = diag(sums), i.e. mat[r][c] *= (1/sums[r]) * sums[c].
//
// Each group covers wg columns of one row. It stages 1/sums[row] and the
// group's slice of sums in group-local memory before touching mat. On the
// diagonal the column factor is the row sum itself. A group whose row sum is
// exactly zero leaves its tile untouched and drives status to 0.
func Transform(q *device.Queue, mat []float64, n, wg int, sums *device.AtomicVector, status *device.Flag, deps ...*device.Event) (*device.Event, error) {
	if len(mat) != n*n {
		return nil, shapeErrorf("Transform", "matrix", len(mat), n*n)
	}
	if sums.Len() != n {
		return nil, shapeErrorf("Transform", "sums", sums.Len(), n)
	}
	r, err := device.Range2D(n, n, wg)
	if err != nil {
		return nil, fmt.Errorf("Transform: %w", err)
	}

	return q.ParallelFor("transform", r.WithLocalMem(wg+1), func(g *device.Group) {
		row, c0 := g.Origin()
		v0 := sums.Load(row)
		if v0 == 0 {
			status.Min(0)

			return
		}

		mem := g.LocalMem()
		mem[0] = 1 / v0
		size := g.Size()
		for l := 0; l < size; l++ {
			mem[1+l] = sums.Load(c0 + l)
		}

		base := row * n
		for l := 0; l < size; l++ {
			c := c0 + l
			v1 := mem[1+l]
			if c == row {
				v1 = v0
			}
			mat[base+c] *= mem[0] * v1
		}
	}, deps...), nil
}
