package ioq

import (
	"context"
	"sync"

	"github.com/bfswalk/bfscore/bfserr"
)

// ring is a bounded circular buffer of *IoqEnt, used for both the
// submission ring (SPMC: one API-thread producer, nthreads worker
// consumers) and the completion ring (MPSC: nthreads worker producers, one
// API-thread consumer). It's implemented with a mutex and two condition
// variables rather than channels: a plain channel can't distinguish "full,
// so the caller should block" from "closed, so the caller should stop",
// and ioq needs both, plus the exact occupancy count at any instant.
// sync.Cond's Signal/Broadcast split gives wake-one for a single freed
// slot/entry and wake-all for a close.
type ring struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond

	buf    []*IoqEnt
	head   int
	n      int
	closed bool
}

func newRing(capacity int) *ring {
	r := &ring{buf: make([]*IoqEnt, capacity)}
	r.notEmpty = sync.NewCond(&r.mu)
	r.notFull = sync.NewCond(&r.mu)
	return r
}

func (r *ring) capacity() int {
	return len(r.buf)
}

// len reports how many entries are currently buffered.
func (r *ring) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// TryPush enqueues e without blocking, returning false if the ring is full
// or closed.
func (r *ring) TryPush(e *IoqEnt) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.n == len(r.buf) {
		return false
	}
	r.push(e)
	return true
}

// Push enqueues e, blocking until a slot opens, ctx is done, or the ring is
// closed.
func (r *ring) Push(ctx context.Context, e *IoqEnt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx != nil && ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			r.mu.Lock()
			r.notFull.Broadcast()
			r.mu.Unlock()
		})
		defer stop()
	}

	for !r.closed && r.n == len(r.buf) {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		r.notFull.Wait()
	}
	if r.closed {
		return bfserr.ErrQueueClosed
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	r.push(e)
	return nil
}

// push enqueues e. Callers must hold r.mu.
func (r *ring) push(e *IoqEnt) {
	idx := (r.head + r.n) % len(r.buf)
	r.buf[idx] = e
	r.n++
	r.notEmpty.Signal()
}

// TryPop dequeues an entry without blocking, returning nil if the ring is
// empty.
func (r *ring) TryPop() *IoqEnt {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n == 0 {
		return nil
	}
	return r.pop()
}

// Pop dequeues an entry, blocking until one is available, ctx is done, or
// the ring is closed with nothing left to drain.
func (r *ring) Pop(ctx context.Context) (*IoqEnt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctx != nil && ctx.Done() != nil {
		stop := context.AfterFunc(ctx, func() {
			r.mu.Lock()
			r.notEmpty.Broadcast()
			r.mu.Unlock()
		})
		defer stop()
	}

	for !r.closed && r.n == 0 {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		r.notEmpty.Wait()
	}
	if r.n == 0 {
		return nil, nil
	}
	return r.pop(), nil
}

// pop dequeues an entry. Callers must hold r.mu.
func (r *ring) pop() *IoqEnt {
	e := r.buf[r.head]
	r.buf[r.head] = nil
	r.head = (r.head + 1) % len(r.buf)
	r.n--
	r.notFull.Signal()
	return e
}

// close marks the ring closed, waking every blocked Push/Pop.
func (r *ring) close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.notEmpty.Broadcast()
	r.notFull.Broadcast()
}
