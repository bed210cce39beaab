// SPDX-License-Identifier: MIT

package device

// Group is one work-group of a launch. It is only valid for the duration of
// the Kernel call that received it.
type Group struct {
	row, col int // group coordinates in the group grid
	local    Range
	lanes    int
	mem      []float64
}

// ID returns the group coordinates in the group grid.
func (g *Group) ID() (row, col int) { return g.row, g.col }

// Size returns the number of items in the group.
func (g *Group) Size() int { return g.local.Size() }

// Local returns the group's local range.
func (g *Group) Local() Range { return g.local }

// Lanes returns the cluster width: the number of items folded in lock-step
// before a cluster result is staged. It is a power of two ≤ MaxLanes.
func (g *Group) Lanes() int { return g.lanes }

// Origin returns the global coordinates of the group's first item.
func (g *Group) Origin() (row, col int) {
	return g.row * g.local.Rows, g.col * g.local.Cols
}

// GlobalID maps a linear local index (0 ≤ local < Size) to global coordinates.
func (g *Group) GlobalID(local int) (row, col int) {
	r0, c0 := g.Origin()

	return r0 + local/g.local.Cols, c0 + local%g.local.Cols
}

// LocalMem returns the group-local scratch memory reserved by the NDRange.
// Its contents are unspecified at kernel entry.
func (g *Group) LocalMem() []float64 { return g.mem }
