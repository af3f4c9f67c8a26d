// Package workqueue provides the unbounded path queue that connects the
// directory producer to the tokenizing workers.
//
// # Shape
//
// One producer pushes file paths as directory traversal discovers them; N
// workers pop paths and process files. The queue never blocks the producer
// and never drops work:
//
//	producer ──Push──▶ [ p1 p2 p3 ... ] ──Pop──▶ worker 1
//	                                     ──Pop──▶ worker 2
//	         ──SetDone─▶ (drain, then Pop returns false)
//
// # Lifecycle
//
// The queue has two states, open and done. While open, Pop blocks on an
// empty queue. After SetDone, queued paths are still handed out in FIFO
// order; once the backlog is empty every blocked and future Pop returns
// false. SetDone is idempotent, so a producer can call it from a deferred
// cleanup path without tracking whether the happy path already did.
//
// Consumers wait on a condition variable rather than polling, so an idle
// pool costs nothing. Cancellation of the Pop context wakes all waiters
// immediately; a canceled Pop reports false just like exhaustion, and the
// caller distinguishes the two by inspecting its context.
package workqueue
