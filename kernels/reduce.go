// SPDX-License-Identifier: MIT

package kernels

import (
	"math"

	"github.com/katalvlaran/perron/device"
)

// Op is an associative, commutative binary operation with its identity.
type Op[T any] struct {
	Identity T
	Combine  func(a, b T) T
}

// SumOp adds float64 values.
var SumOp = Op[float64]{
	Identity: 0,
	Combine:  func(a, b float64) float64 { return a + b },
}

// MaxOp keeps the larger float64 value; its identity is -Inf.
var MaxOp = Op[float64]{
	Identity: math.Inf(-1),
	Combine:  math.Max,
}

// AllOp is a logical AND over 0/1 verdicts, realized as a minimum.
var AllOp = Op[uint32]{
	Identity: 1,
	Combine: func(a, b uint32) uint32 {
		if b < a {
			return b
		}

		return a
	},
}

// Reduce folds load(l) for every local index l of g and hands the group
// result to commit exactly once.
//
// Items are processed in clusters of g.Lanes(). A cluster is first loaded into
// a lane buffer (lanes past the end of the group hold op.Identity), then folded
// by shuffle-down with offsets L/2, L/4, …, 1 so lane 0 ends with the cluster
// result. Cluster results are staged in one group-local accumulator, which is
// what commit receives.
func Reduce[T any](g *device.Group, op Op[T], load func(local int) T, commit func(T)) {
	var (
		lanes = g.Lanes()
		size  = g.Size()
		buf   [device.MaxLanes]T
		acc   = op.Identity
	)
	for base := 0; base < size; base += lanes {
		for l := 0; l < lanes; l++ {
			if base+l < size {
				buf[l] = load(base + l)
			} else {
				buf[l] = op.Identity
			}
		}
		for off := lanes >> 1; off > 0; off >>= 1 {
			for l := 0; l < off; l++ {
				buf[l] = op.Combine(buf[l], buf[l+off])
			}
		}
		acc = op.Combine(acc, buf[0])
	}
	commit(acc)
}
