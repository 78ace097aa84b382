// Package ioq implements the asynchronous I/O queue: a bounded,
// fixed-depth queue of I/O operations (close, opendir, closedir) dispatched
// across a worker pool so a caller never blocks on the underlying syscall.
//
// # Basic Usage
//
//	q := ioq.Create(8, 4) // depth 8, 4 workers
//	defer q.Destroy()
//
//	fd := ...
//	if err := q.Close(fd, nil); err != nil {
//		// queue full or closed
//	}
//	ent, err := q.Pop(context.Background())
//
// # Lifecycle
//
// Entries move FREE -> SUBMITTED -> INFLIGHT -> COMPLETED -> FREE. Cancel
// drains queued-but-undispatched entries into cancelled completions without
// stopping the worker pool or the queue; Destroy is terminal and stops
// everything.
//
// # Thread Safety
//
// A *Ioq is safe for concurrent submission from multiple goroutines.
// Popping completions is intended for a single consumer goroutine (or
// serialized externally), matching the single-driver-thread shape of the
// original bfs I/O queue; TryPop/Pop themselves remain safe if called
// concurrently, but callers should not rely on ordering across concurrent
// poppers.
package ioq
