// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"

	"github.com/katalvlaran/perron/device"
)

// Max submits dst = max_i src[i].
// dst is reset to -Inf after deps; each group commits with one atomic max.
func Max(q *device.Queue, src *device.AtomicVector, wg int, dst *device.Float64, deps ...*device.Event) (*device.Event, error) {
	r, err := device.Range1D(src.Len(), wg)
	if err != nil {
		return nil, fmt.Errorf("Max: %w", err)
	}

	reset := q.Submit("max.reset", func() { dst.Store(MaxOp.Identity) }, deps...)

	return q.ParallelFor("max", r, func(g *device.Group) {
		_, c0 := g.Origin()
		Reduce(g, MaxOp,
			func(l int) float64 { return src.Load(c0 + l) },
			func(m float64) { dst.Max(m) },
		)
	}, reset), nil
}
