// SPDX-License-Identifier: MIT

package device

import (
	"sync"
	"sync/atomic"
	"time"
)

// Queue submits work to a Device. Submissions start as soon as their
// dependencies complete; independent submissions run concurrently.
// A Queue is safe for concurrent use.
type Queue struct {
	dev      *Device
	pending  sync.WaitGroup
	launches atomic.Uint64
}

// NewQueue returns a queue bound to d; nil selects Default().
func NewQueue(d *Device) *Queue {
	if d == nil {
		d = Default()
	}

	return &Queue{dev: d}
}

// Device returns the device the queue submits to.
func (q *Queue) Device() *Device { return q.dev }

// Launches returns the number of submissions made so far.
func (q *Queue) Launches() uint64 { return q.launches.Load() }

// Submit runs task once on its own goroutine after deps complete.
// nil entries in deps are ignored.
func (q *Queue) Submit(name string, task func(), deps ...*Event) *Event {
	return q.enqueue(name, deps, task)
}

// ParallelFor launches k over every work-group of r after deps complete.
// Work-groups are claimed dynamically by at most Device.Workers goroutines;
// items inside a group run on the claiming goroutine.
func (q *Queue) ParallelFor(name string, r NDRange, k Kernel, deps ...*Event) *Event {
	return q.enqueue(name, deps, func() { q.launch(r, k) })
}

// Wait blocks until every submission made so far has completed.
func (q *Queue) Wait() { q.pending.Wait() }

func (q *Queue) enqueue(name string, deps []*Event, body func()) *Event {
	ev := newEvent(name)
	q.launches.Add(1)
	q.pending.Add(1)
	go func() {
		defer q.pending.Done()
		WaitAll(deps...)
		ev.started = time.Now()
		body()
		ev.ended = time.Now()
		close(ev.done)
	}()

	return ev
}

// launch executes k over r and returns when every group has finished.
func (q *Queue) launch(r NDRange, k Kernel) {
	grid := r.Groups()
	total := grid.Size()
	workers := q.dev.workers
	if workers > total {
		workers = total
	}

	var next atomic.Int64
	worker := func() {
		g := Group{local: r.Local, lanes: q.dev.lanes}
		if r.LocalMem > 0 {
			g.mem = make([]float64, r.LocalMem)
		}
		for {
			idx := int(next.Add(1)) - 1
			if idx >= total {
				return
			}
			g.row, g.col = idx/grid.Cols, idx%grid.Cols
			k(&g)
		}
	}

	if workers <= 1 {
		worker()

		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			worker()
		}()
	}
	wg.Wait()
}
