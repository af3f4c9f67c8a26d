package workqueue

import (
	"context"
	"sync"
)

// Queue is an unbounded FIFO of file paths shared between one producer and
// many consumers. Producers Push paths as they discover them; consumers
// block in Pop until a path is available or the producer has called SetDone
// and the backlog is drained.
// Thread-safe: all methods may be called concurrently.
//
// The zero value is not usable; construct with New.
type Queue struct {
	mu    sync.Mutex // Protects items and done
	cond  *sync.Cond // Signals waiting consumers
	items []string   // Queued paths, oldest first
	done  bool       // Set once the producer has finished
}

// New returns an empty, open queue.
func New() *Queue {
	q := &Queue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push appends path to the queue and wakes one waiting consumer. Push never
// blocks; the queue grows as needed.
//
// Parameters:
//   - path: File path to hand to a worker
//
// Pushing after SetDone is a producer-side programming error: the path
// would still be delivered, but the done signal no longer means "no more
// work", so callers must not rely on it.
func (q *Queue) Push(path string) {
	q.mu.Lock()
	q.items = append(q.items, path)
	q.mu.Unlock()

	q.cond.Signal()
}

// Pop removes and returns the oldest path in the queue, blocking while the
// queue is empty and still open.
//
// Parameters:
//   - ctx: Cancellation wakes all blocked callers immediately
//
// Returns:
//   - (path, true) when a path was dequeued
//   - ("", false) when the queue is done and fully drained, or when ctx
//     ended while waiting
//
// A false return is the consumer's signal to stop; queued paths are still
// handed out after SetDone until the backlog is empty.
//
// Example:
//
//	for {
//	    path, ok := q.Pop(ctx)
//	    if !ok {
//	        return // drained or canceled
//	    }
//	    process(path)
//	}
func (q *Queue) Pop(ctx context.Context) (string, bool) {
	// Wake every waiter if the context ends; the condition variable alone
	// cannot observe it. Broadcasting under the lock closes the window
	// between a waiter's predicate check and its Wait.
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if ctx.Err() != nil {
			return "", false
		}
		if q.done {
			return "", false
		}
		q.cond.Wait()
	}

	path := q.items[0]
	q.items = q.items[1:]
	return path, true
}

// SetDone marks the queue closed for new work and wakes all waiting
// consumers so they can observe the drained state.
//
// SetDone is idempotent, so a producer can call it from a deferred cleanup
// path without tracking whether the happy path already did.
func (q *Queue) SetDone() {
	q.mu.Lock()
	if q.done {
		q.mu.Unlock()
		return
	}
	q.done = true
	q.mu.Unlock()

	q.cond.Broadcast()
}

// Len reports the number of paths currently queued.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
