// SPDX-License-Identifier: MIT

package device

import "time"

// Event tracks the completion of one submission. It becomes complete exactly
// once; completion publishes every write the submission made.
type Event struct {
	name    string
	done    chan struct{}
	started time.Time // written before done is closed
	ended   time.Time // written before done is closed
}

func newEvent(name string) *Event {
	return &Event{name: name, done: make(chan struct{})}
}

// Completed returns an event that is already complete. It is useful as a
// placeholder dependency.
func Completed(name string) *Event {
	e := newEvent(name)
	e.started = time.Now()
	e.ended = e.started
	close(e.done)

	return e
}

// Name returns the submission name.
func (e *Event) Name() string { return e.name }

// Done returns a channel that is closed when the submission completes.
func (e *Event) Done() <-chan struct{} { return e.done }

// Wait blocks until the submission completes. A nil event is complete.
func (e *Event) Wait() {
	if e == nil {
		return
	}
	<-e.done
}

// Duration returns the execution time of the submission, excluding the time
// spent waiting for dependencies. It returns 0 until the event completes.
func (e *Event) Duration() time.Duration {
	select {
	case <-e.done:
		return e.ended.Sub(e.started)
	default:
		return 0
	}
}

// WaitAll waits for every event in evs; nil entries are skipped.
func WaitAll(evs ...*Event) {
	for _, e := range evs {
		e.Wait()
	}
}
