// SPDX-License-Identifier: MIT

// Package device is the data-parallel execution model the perron kernels run on.
//
// What
//
//   - Device: a worker budget (goroutines per launch) plus a cluster lane
//     width picked from the host CPU's vector features.
//   - Queue: asynchronous submissions. Every submission returns an *Event and
//     waits for the events it depends on before touching any data.
//   - NDRange / Group: a launch covers a Global range split into work-groups of
//     Local size. A group runs its items on one goroutine, in lane order, and
//     owns an optional slice of group-local memory.
//   - Float64 / Flag / AtomicVector: the device-scope atomic cells kernels use
//     to publish one partial result per group.
//
// Ordering
//
//	Event completion is published by closing a channel, so every write made by
//	a launch happens-before any read made by a submission that depends on it.
//	Dependencies are explicit: there is no implicit in-order queue.
//
// Errors
//
//   - ErrBadRange         if a Local range does not tile its Global range.
//   - ErrOptionViolation  if a device Option is invalid (negative workers,
//     lane width not a power of two or above MaxLanes).
package device
