// Package bfserr defines the error taxonomy shared by the arena, varena,
// and ioq packages: allocation failure (reported as nil, not an error),
// submission failure, per-operation failure, and contract violation.
//
// Allocation failure is deliberately not represented here — arena.Alloc and
// varena.Alloc return nil on failure with no accompanying error, so callers
// check for nil rather than unwrap an error value. This package covers the
// other three categories, which do carry errors.
package bfserr

import "errors"

// Submission failures: returned by ioq.Close/Opendir/Closedir.
var (
	// ErrQueueFull is returned by a non-blocking submission when the entry
	// pool is exhausted.
	ErrQueueFull = errors.New("bfscore: queue full")

	// ErrQueueClosed is returned by any submission after Destroy.
	ErrQueueClosed = errors.New("bfscore: queue closed")
)

// ErrCancelled is the per-operation failure reported on an IoqEnt whose
// submission was drained by Cancel before a worker dispatched it. It is the
// Go name for the C errno ECANCELED.
var ErrCancelled = errors.New("bfscore: operation cancelled")

// Contract violations: detected only in debug builds (see arena's
// build-tag-gated poisoning in debug_on.go/debug_off.go), otherwise
// undefined behavior.
var (
	// ErrDoubleFree indicates a chunk was freed twice without an
	// intervening allocation. Only ever returned/panicked from debug
	// builds; release builds never detect this.
	ErrDoubleFree = errors.New("bfscore: double free detected")

	// ErrWrongCount indicates varena.Free was called with a count that
	// does not match the count given to the originating Alloc/Realloc.
	ErrWrongCount = errors.New("bfscore: varena free with mismatched count")
)
