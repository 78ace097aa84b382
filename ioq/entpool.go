package ioq

import (
	"context"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/bfswalk/bfscore/bfserr"
)

// entryPool is the preallocated block of depth entries, threaded onto a
// free stack. Admission is additionally gated by a weighted semaphore sized
// to depth, grounded on hupe1980-vecgo/resource/controller.go's
// AcquireBackground/TryAcquireBackground/ReleaseBackground pattern:
// acquiring a permit and popping a free index happen together, so
// free+submitted+inflight+completed always equals depth, with outstanding
// tracked by a single atomic counter alongside the semaphore for O(1)
// Capacity() queries - mirroring Controller.MemoryUsage's atomic.Int64
// sitting next to its semaphore.
type entryPool struct {
	depth int64

	entries []IoqEnt

	mu   sync.Mutex
	free []int // LIFO stack of free indices into entries

	sem         *semaphore.Weighted
	outstanding atomic.Int64
}

func newEntryPool(depth int) *entryPool {
	p := &entryPool{
		depth:   int64(depth),
		entries: make([]IoqEnt, depth),
		free:    make([]int, depth),
		sem:     semaphore.NewWeighted(int64(depth)),
	}
	for i := 0; i < depth; i++ {
		p.entries[i].idx = i
		p.free[i] = depth - 1 - i // doesn't matter which order; LIFO stack
	}
	return p
}

// acquire reserves one entry without blocking, or returns
// bfserr.ErrQueueFull if the pool is exhausted.
func (p *entryPool) acquire() (*IoqEnt, error) {
	if !p.sem.TryAcquire(1) {
		return nil, bfserr.ErrQueueFull
	}
	p.outstanding.Add(1)
	return p.popFree(), nil
}

// acquireBlocking reserves one entry, blocking until one is available or
// ctx is done. Close/Opendir/Closedir are all non-blocking submissions, so
// the public API only uses acquire; acquireBlocking exists for
// completeness/testing of the underlying pool and is not wired to a public
// operation.
func (p *entryPool) acquireBlocking(ctx context.Context) (*IoqEnt, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	p.outstanding.Add(1)
	return p.popFree(), nil
}

func (p *entryPool) popFree() *IoqEnt {
	p.mu.Lock()
	idx := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.mu.Unlock()
	return &p.entries[idx]
}

// release returns e to the free stack and releases its permit.
func (p *entryPool) release(e *IoqEnt) {
	e.reset()
	p.mu.Lock()
	p.free = append(p.free, e.idx)
	p.mu.Unlock()
	p.outstanding.Add(-1)
	p.sem.Release(1)
}

// available reports the current free-slot count.
func (p *entryPool) available() int {
	return int(p.depth - p.outstanding.Load())
}
