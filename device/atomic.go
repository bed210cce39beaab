// SPDX-License-Identifier: MIT

package device

import (
	"math"
	"sync/atomic"
)

// Float64 is a float64 cell with device-scope atomic read-modify-write
// operations. The zero value holds 0.
type Float64 struct {
	bits atomic.Uint64
}

// Load returns the current value.
func (f *Float64) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// Store replaces the current value.
func (f *Float64) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

// Add adds delta and returns the new value.
func (f *Float64) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Max stores max(current, v) and returns the resulting value.
// NaN is sticky, as in math.Max: a NaN argument is stored and a NaN cell
// stays NaN.
func (f *Float64) Max(v float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if math.IsNaN(cur) || !(v > cur || math.IsNaN(v)) {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return v
		}
	}
}

// Min stores min(current, v) and returns the resulting value.
// NaN is sticky, as in math.Min.
func (f *Float64) Min(v float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		if math.IsNaN(cur) || !(v < cur || math.IsNaN(v)) {
			return cur
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return v
		}
	}
}

// Flag is a 0/1 cell combined with atomic min, so any writer of 0 wins.
// The zero value holds 0.
type Flag struct {
	v atomic.Uint32
}

// Load returns the current value.
func (f *Flag) Load() uint32 { return f.v.Load() }

// Store replaces the current value.
func (f *Flag) Store(v uint32) { f.v.Store(v) }

// IsSet reports whether the flag currently holds a non-zero value.
func (f *Flag) IsSet() bool { return f.v.Load() != 0 }

// Min stores min(current, v) and returns the resulting value.
func (f *Flag) Min(v uint32) uint32 {
	for {
		cur := f.v.Load()
		if v >= cur {
			return cur
		}
		if f.v.CompareAndSwap(cur, v) {
			return v
		}
	}
}

// AtomicVector is a fixed-length vector of Float64 cells.
type AtomicVector struct {
	cells []Float64
}

// NewAtomicVector returns a zeroed vector of length n (n < 0 is treated as 0).
func NewAtomicVector(n int) *AtomicVector {
	if n < 0 {
		n = 0
	}

	return &AtomicVector{cells: make([]Float64, n)}
}

// NewAtomicVectorFrom returns a vector holding a copy of xs.
func NewAtomicVectorFrom(xs []float64) *AtomicVector {
	v := NewAtomicVector(len(xs))
	for i, x := range xs {
		v.cells[i].Store(x)
	}

	return v
}

// Len returns the number of cells.
func (v *AtomicVector) Len() int { return len(v.cells) }

// Load returns cell i.
func (v *AtomicVector) Load(i int) float64 { return v.cells[i].Load() }

// Store replaces cell i.
func (v *AtomicVector) Store(i int, x float64) { v.cells[i].Store(x) }

// Add adds delta to cell i and returns the new value.
func (v *AtomicVector) Add(i int, delta float64) float64 { return v.cells[i].Add(delta) }

// Max stores max(cell i, x) and returns the resulting value.
func (v *AtomicVector) Max(i int, x float64) float64 { return v.cells[i].Max(x) }

// Fill stores x into every cell.
func (v *AtomicVector) Fill(x float64) {
	for i := range v.cells {
		v.cells[i].Store(x)
	}
}

// Snapshot copies the current cell values into a new slice.
func (v *AtomicVector) Snapshot() []float64 {
	out := make([]float64, len(v.cells))
	for i := range v.cells {
		out[i] = v.cells[i].Load()
	}

	return out
}
