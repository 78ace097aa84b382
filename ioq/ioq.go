package ioq

import (
	"context"
	"os"
	"sync"

	"github.com/bfswalk/bfscore/bfserr"
	"github.com/bfswalk/bfscore/internal/obslog"
)

// Ioq is the asynchronous I/O queue: a bounded, fixed-depth queue of
// operations dispatched across a worker pool.
type Ioq struct {
	depth int

	pool   *entryPool
	submit *ring
	comp   *ring
	wp     *workerPool
	log    *obslog.Logger

	mu        sync.Mutex
	destroyed bool
}

// Create allocates an I/O queue with the given entry depth and worker
// count. It returns nil if depth or nthreads is not positive.
func Create(depth, nthreads int) *Ioq {
	return CreateWithLogger(depth, nthreads, nil)
}

// CreateWithLogger is Create with an explicit logger for worker lifecycle
// events; a nil log yields a no-op logger. Logging stays off the
// per-operation hot path and silent unless a caller asks for it.
func CreateWithLogger(depth, nthreads int, log *obslog.Logger) *Ioq {
	if nthreads <= 0 || depth <= 0 {
		return nil
	}
	if log == nil {
		log = obslog.Noop()
	}
	q := &Ioq{
		depth:  depth,
		pool:   newEntryPool(depth),
		submit: newRing(depth),
		comp:   newRing(depth),
		log:    log,
	}
	q.wp = startWorkerPool(nthreads, q.submit, q.comp, log)
	return q
}

// Capacity reports the number of entries currently free for submission.
func (q *Ioq) Capacity() int {
	return q.pool.available()
}

// Close submits a non-blocking close(fd) operation, returning
// bfserr.ErrQueueFull if the entry pool is exhausted or bfserr.ErrQueueClosed
// after Destroy.
func (q *Ioq) Close(fd int, ptr any) error {
	return q.submitOp(OpClose, ptr, func(e *IoqEnt) { e.Close = CloseArgs{FD: fd} })
}

// Opendir submits a non-blocking directory-open operation relative to dfd
// (nil meaning the process's working directory). dir is filled in by the
// worker once the operation completes; it must remain live until the
// corresponding completion is popped.
func (q *Ioq) Opendir(dfd *os.Root, path string, dir *Dir, ptr any) error {
	return q.submitOp(OpOpendir, ptr, func(e *IoqEnt) {
		e.Opendir = OpendirArgs{Dir: dir, DFD: dfd, Path: path}
	})
}

// Closedir submits a non-blocking directory-close operation.
func (q *Ioq) Closedir(dir *Dir, ptr any) error {
	return q.submitOp(OpClosedir, ptr, func(e *IoqEnt) { e.Closedir = ClosedirArgs{Dir: dir} })
}

func (q *Ioq) submitOp(op Op, ptr any, fill func(*IoqEnt)) error {
	q.mu.Lock()
	destroyed := q.destroyed
	q.mu.Unlock()
	if destroyed {
		return bfserr.ErrQueueClosed
	}

	e, err := q.pool.acquire()
	if err != nil {
		return err
	}
	e.Op = op
	e.Ptr = ptr
	fill(e)

	if !q.submit.TryPush(e) {
		// submit ring is sized to depth, so this only happens racing
		// Destroy; release the entry rather than leak it.
		q.pool.release(e)
		return bfserr.ErrQueueClosed
	}
	return nil
}

// TryPop returns a completed entry without blocking, or nil if none is
// ready. The caller must call Free on the returned entry once done reading
// it.
func (q *Ioq) TryPop() *IoqEnt {
	return q.comp.TryPop()
}

// Pop blocks until a completed entry is available or ctx is done. The
// caller must call Free on the returned entry once done reading it.
func (q *Ioq) Pop(ctx context.Context) (*IoqEnt, error) {
	return q.comp.Pop(ctx)
}

// Free returns a completed entry to the pool for reuse. Calling Free twice
// on the same entry without an intervening acquire is a contract violation;
// the pool does not check for it in any build.
func (q *Ioq) Free(e *IoqEnt) {
	q.pool.release(e)
}

// Cancel drains every submission still queued but not yet dispatched,
// completing each with bfserr.ErrCancelled. It is idempotent (a Cancel with
// nothing queued just returns 0), does not stop the worker pool, and leaves
// the queue usable for further submissions - distinct from Destroy.
// In-flight operations already handed to a worker run to completion.
func (q *Ioq) Cancel(ctx context.Context) int {
	drained := 0
	for {
		e := q.submit.TryPop()
		if e == nil {
			break
		}
		e.Ret = -1
		e.Err = bfserr.ErrCancelled
		q.comp.TryPush(e)
		drained++
	}
	q.log.LogCancel(ctx, drained)
	return drained
}

// Destroy closes the submission ring, stops the worker pool, and closes the
// completion ring. Workers dispatch any submissions still queued before they
// exit. Completions left in the completion ring are not drained, and entries
// are not returned to the pool. It is terminal: the queue must not be used
// for submissions afterward. Destroy is idempotent.
func (q *Ioq) Destroy() {
	q.mu.Lock()
	if q.destroyed {
		q.mu.Unlock()
		return
	}
	q.destroyed = true
	q.mu.Unlock()

	q.submit.close()
	q.wp.shutdown()
	q.comp.close()
	q.log.LogDestroy(context.Background())
}
