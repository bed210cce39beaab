// SPDX-License-Identifier: MIT

package kernels

import (
	"fmt"

	"github.com/katalvlaran/perron/device"
)

// Fill submits v[i] = value for every i.
func Fill(q *device.Queue, v []float64, value float64, wg int, deps ...*device.Event) (*device.Event, error) {
	r, err := device.Range1D(len(v), wg)
	if err != nil {
		return nil, fmt.Errorf("Fill: %w", err)
	}

	return q.ParallelFor("fill", r, func(g *device.Group) {
		_, c0 := g.Origin()
		for l := 0; l < g.Size(); l++ {
			v[c0+l] = value
		}
	}, deps...), nil
}

// UpdateEigenvector submits the power-iteration step of the eigenvector estimate.
//
// peak must be final when the kernel starts, so deps must include the event of
// the Max stage that produced it. Each group loads peak once into group-local
// memory and every item reads that copy. The update is eig[i] *= sums[i] / peak.
func UpdateEigenvector(q *device.Queue, eig []float64, sums *device.AtomicVector, peak *device.Float64, wg int, deps ...*device.Event) (*device.Event, error) {
	if sums.Len() != len(eig) {
		return nil, shapeErrorf("UpdateEigenvector", "sums", sums.Len(), len(eig))
	}
	r, err := device.Range1D(len(eig), wg)
	if err != nil {
		return nil, fmt.Errorf("UpdateEigenvector: %w", err)
	}

	return q.ParallelFor("eigenvector", r.WithLocalMem(1), func(g *device.Group) {
		mem := g.LocalMem()
		mem[0] = peak.Load()
		_, c0 := g.Origin()
		for l := 0; l < g.Size(); l++ {
			i := c0 + l
			eig[i] *= sums.Load(i) / mem[0]
		}
	}, deps...), nil
}
