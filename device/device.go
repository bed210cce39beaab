// SPDX-License-Identifier: MIT

package device

import (
	"fmt"
	"runtime"
	"sync"
)

const (
	// MaxLanes bounds the cluster width; kernels size their cluster buffers
	// with it.
	MaxLanes = 16

	// fallbackLanes is the cluster width used when no vector unit is known.
	fallbackLanes = 4
)

// Option configures a Device via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the device parameters.
type Options struct {
	// Workers is the number of goroutines a launch may use.
	// 0 selects runtime.GOMAXPROCS(0).
	Workers int

	// Lanes is the cluster width. 0 selects the width detected from the CPU.
	Lanes int

	err error
}

// DefaultOptions returns auto-detected workers and lanes.
func DefaultOptions() Options {
	return Options{}
}

// WithWorkers caps the goroutines used per launch.
//
//	n > 0: exactly n workers
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.Workers = n
	}
}

// WithLanes forces the cluster width. It must be 0 (auto) or a power of two
// no greater than MaxLanes.
func WithLanes(n int) Option {
	return func(o *Options) {
		if n < 0 || n > MaxLanes || n&(n-1) != 0 {
			o.err = fmt.Errorf("%w: Lanes must be a power of two in [1,%d] (%d)", ErrOptionViolation, MaxLanes, n)

			return
		}
		o.Lanes = n
	}
}

// Device is a CPU "accelerator": a worker budget and a cluster width.
// It is immutable and safe for concurrent use.
type Device struct {
	workers  int
	lanes    int
	features Features
}

// New builds a Device from opts.
func New(opts ...Option) (*Device, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	d := &Device{
		workers:  o.Workers,
		lanes:    o.Lanes,
		features: DetectFeatures(),
	}
	if d.workers == 0 {
		d.workers = runtime.GOMAXPROCS(0)
	}
	if d.lanes == 0 {
		d.lanes = d.features.Lanes()
	}

	return d, nil
}

var (
	defaultOnce sync.Once
	defaultDev  *Device
)

// Default returns the process-wide auto-configured Device.
func Default() *Device {
	defaultOnce.Do(func() {
		defaultDev, _ = New() // no options, cannot fail
	})

	return defaultDev
}

// Workers returns the per-launch goroutine budget.
func (d *Device) Workers() int { return d.workers }

// Lanes returns the cluster width.
func (d *Device) Lanes() int { return d.lanes }

// Features returns the CPU features detected at construction.
func (d *Device) Features() Features { return d.features }

// Name describes the device, e.g. "cpu amd64+avx2 (8 workers, 4 lanes)".
func (d *Device) Name() string {
	return fmt.Sprintf("cpu %s (%d workers, %d lanes)", d.features, d.workers, d.lanes)
}
