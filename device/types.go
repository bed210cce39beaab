// SPDX-License-Identifier: MIT

package device

import (
	"errors"
	"fmt"
)

// Sentinel errors for launches and device construction.
var (
	// ErrBadRange is returned when an NDRange is empty or its Local range
	// does not evenly divide its Global range.
	ErrBadRange = errors.New("device: local range does not tile global range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("device: invalid option supplied")
)

// Range is a two-dimensional extent. One-dimensional ranges use Rows == 1.
type Range struct {
	Rows int
	Cols int
}

// Size returns Rows*Cols.
func (r Range) Size() int { return r.Rows * r.Cols }

// NDRange describes one launch: the Global item range, the Local (work-group)
// range, and the number of float64 slots of group-local memory per group.
type NDRange struct {
	Global   Range
	Local    Range
	LocalMem int
}

// NewNDRange validates that local tiles global and returns the launch range.
func NewNDRange(global, local Range) (NDRange, error) {
	if global.Rows <= 0 || global.Cols <= 0 || local.Rows <= 0 || local.Cols <= 0 {
		return NDRange{}, fmt.Errorf("%w: global %dx%d, local %dx%d",
			ErrBadRange, global.Rows, global.Cols, local.Rows, local.Cols)
	}
	if global.Rows%local.Rows != 0 || global.Cols%local.Cols != 0 {
		return NDRange{}, fmt.Errorf("%w: global %dx%d, local %dx%d",
			ErrBadRange, global.Rows, global.Cols, local.Rows, local.Cols)
	}

	return NDRange{Global: global, Local: local}, nil
}

// Range1D is the launch range for n items in groups of wg.
func Range1D(n, wg int) (NDRange, error) {
	return NewNDRange(Range{Rows: 1, Cols: n}, Range{Rows: 1, Cols: wg})
}

// Range2D is the launch range for a rows×cols grid where each group covers
// wg consecutive columns of a single row.
func Range2D(rows, cols, wg int) (NDRange, error) {
	return NewNDRange(Range{Rows: rows, Cols: cols}, Range{Rows: 1, Cols: wg})
}

// WithLocalMem returns a copy of r that reserves n float64 slots of
// group-local memory.
func (r NDRange) WithLocalMem(n int) NDRange {
	r.LocalMem = n

	return r
}

// Groups returns the extent of the work-group grid.
func (r NDRange) Groups() Range {
	return Range{Rows: r.Global.Rows / r.Local.Rows, Cols: r.Global.Cols / r.Local.Cols}
}

// Kernel is the body of a launch; it is invoked once per work-group.
type Kernel func(g *Group)
