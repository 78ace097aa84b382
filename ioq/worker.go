package ioq

import (
	"context"
	"sync"

	"github.com/bfswalk/bfscore/internal/obslog"
)

// workerPool is the fixed goroutine pool draining the submission ring,
// dispatching syscalls, and publishing results to the completion ring -
// the Go equivalent of the original bfs ioq's pthread workers, grounded on
// hupe1980-vecgo/engine/worker_pool.go's WorkerPool (fixed worker count,
// sync.WaitGroup for shutdown, single stop signal). Unlike WorkerPool,
// which drains a buffered channel, ioq's workers pop from a ring so the
// queue can report occupancy at any instant.
type workerPool struct {
	submit *ring
	comp   *ring
	log    *obslog.Logger

	stop context.CancelFunc
	wg   sync.WaitGroup
}

func startWorkerPool(n int, submit, comp *ring, log *obslog.Logger) *workerPool {
	ctx, cancel := context.WithCancel(context.Background())
	wp := &workerPool{submit: submit, comp: comp, log: log, stop: cancel}
	wp.wg.Add(n)
	for i := 0; i < n; i++ {
		go wp.run(ctx, i)
	}
	return wp
}

func (wp *workerPool) run(ctx context.Context, id int) {
	defer wp.wg.Done()
	log := wp.log.WithWorker(id)
	log.LogWorkerStart(ctx)
	defer log.LogWorkerStop(ctx)

	for {
		e, err := wp.submit.Pop(ctx)
		if err != nil {
			return // ctx cancelled: pool is shutting down
		}
		if e == nil {
			return // ring closed and drained
		}
		dispatch(e)
		wp.comp.TryPush(e) // comp is sized to equal depth, so this never blocks
	}
}

// shutdown stops every worker goroutine and waits for them to exit. It does
// not drain or close the rings; callers handle that separately (Cancel
// drains the submission ring, Destroy closes both).
func (wp *workerPool) shutdown() {
	wp.stop()
	wp.wg.Wait()
}
