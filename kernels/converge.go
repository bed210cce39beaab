// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"
	"math"

	"github.com/katalvlaran/perron/device"
)

// Converged submits flag = 1 iff every cyclically adjacent pair of sums
// differs by strictly less than eps: |sums[i] - sums[(i-1+N) mod N]| < eps.
//
// flag is reset to 1 after deps. Each group folds its items' verdicts with
// AllOp and commits once with an atomic min, so a single violating item
// anywhere clears the flag.
func Converged(q *device.Queue, sums *device.AtomicVector, wg int, eps float64, flag *device.Flag, deps ...*device.Event) (*device.Event, error) {
	n := sums.Len()
	r, err := device.Range1D(n, wg)
	if err != nil {
		return nil, fmt.Errorf("Converged: %w", err)
	}

	reset := q.Submit("converged.reset", func() { flag.Store(AllOp.Identity) }, deps...)

	return q.ParallelFor("converged", r, func(g *device.Group) {
		_, c0 := g.Origin()
		Reduce(g, AllOp,
			func(l int) uint32 {
				i := c0 + l
				prev := (i - 1 + n) % n
				if math.Abs(sums.Load(i)-sums.Load(prev)) < eps {
					return 1
				}

				return 0
			},
			func(v uint32) { flag.Min(v) },
		)
	}, reset), nil
}
