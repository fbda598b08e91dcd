// Package execqueue provides a single-goroutine sequential task executor.
// Tasks run strictly in submission order; each submission returns a
// one-shot channel the caller can wait on from its own goroutine. One
// queue per concern is intended — filesystem probes, for instance, gain
// nothing from running concurrently with each other.
package execqueue

import "sync"

type task struct {
	fn   func()
	done chan struct{}
}

// Queue is a sequential task executor backed by one goroutine.
type Queue struct {
	tasks     chan task
	stopped   chan struct{}
	closeOnce sync.Once
}

// New creates a Queue and starts its run loop.
func New() *Queue {
	q := &Queue{
		tasks:   make(chan task, 64),
		stopped: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.stopped)
	for t := range q.tasks {
		t.fn()
		close(t.done)
	}
}

// Submit enqueues fn and returns a channel that is closed exactly once
// after fn has run. Submit blocks while the queue buffer is full.
// Submitting to a closed queue panics.
func (q *Queue) Submit(fn func()) <-chan struct{} {
	t := task{fn: fn, done: make(chan struct{})}
	q.tasks <- t
	return t.done
}

// Close stops the queue after all previously submitted tasks have run and
// waits for the run loop to exit. Close is idempotent.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.tasks) })
	<-q.stopped
}
