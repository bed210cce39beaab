// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/perron/device"
)

const (
	// DefaultEpsilon is the absolute tolerance on adjacent row sums.
	DefaultEpsilon = 1e-3

	// DefaultMaxIterations caps the number of transforms.
	DefaultMaxIterations = 1000

	// DefaultWorkGroupSize is the upper bound for the automatic work-group
	// size: the largest divisor of N not above it is used.
	DefaultWorkGroupSize = 32
)

// Option configures Run via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of a run.
type Options struct {
	// Epsilon is the convergence tolerance (> 0, strict comparison).
	Epsilon float64

	// MaxIterations caps the transforms applied (≥ 1).
	MaxIterations int

	// WorkGroupSize is the items per work-group; 0 selects it automatically.
	WorkGroupSize int

	// Device runs the kernels; nil selects device.Default().
	Device *device.Device

	// OnIteration is called on the driver goroutine after every pass.
	OnIteration func(Iteration)

	err error
}

// DefaultOptions returns:
//   - Epsilon = DefaultEpsilon
//   - MaxIterations = DefaultMaxIterations
//   - automatic work-group size
//   - the default device
//   - a no-op OnIteration hook.
func DefaultOptions() Options {
	return Options{
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		OnIteration:   func(Iteration) {},
	}
}

// WithEpsilon sets the convergence tolerance; it must be positive and finite.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 1) {
			o.err = fmt.Errorf("%w: Epsilon must be positive and finite (%g)", ErrOptionViolation, eps)

			return
		}
		o.Epsilon = eps
	}
}

// WithMaxIterations caps the number of transforms; n must be at least 1.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be at least 1 (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

// WithWorkGroupSize sets the items per work-group.
//
//	w > 0: exactly w (must divide N, else Run returns ErrWorkGroupSize)
//	w == 0: automatic
//	w < 0: invalid option → ErrOptionViolation
func WithWorkGroupSize(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: WorkGroupSize cannot be negative (%d)", ErrOptionViolation, w)

			return
		}
		o.WorkGroupSize = w
	}
}

// WithDevice runs the kernels on d.
func WithDevice(d *device.Device) Option {
	return func(o *Options) {
		if d != nil {
			o.Device = d
		}
	}
}

// WithOnIteration registers a per-pass progress hook.
func WithOnIteration(fn func(Iteration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// workGroupSize resolves the requested size w for dimension n.
func workGroupSize(n, w int) (int, error) {
	if w == 0 {
		w = min(n, DefaultWorkGroupSize)
		for n%w != 0 {
			w--
		}

		return w, nil
	}
	if w > n || n%w != 0 {
		return 0, fmt.Errorf("%w: %d does not divide %d", ErrWorkGroupSize, w, n)
	}

	return w, nil
}
