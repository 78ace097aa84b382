//go:build bfsdebug

package varena

import (
	"unsafe"

	"github.com/bfswalk/bfscore/bfserr"
)

// Debug builds remember the element count each outstanding allocation was
// made with, so Free/Realloc can catch a caller passing a mismatched
// count. Like Arena's poisoning, this is a debug-build-only contract check
// with no release-build cost - VArena itself is not safe for concurrent
// use, so a plain map suffices.
var debugCounts = map[unsafe.Pointer]uint64{}

func (v *VArena) debugRecord(p unsafe.Pointer, count uint64) {
	if p == nil {
		return
	}
	debugCounts[p] = count
}

// debugCheck panics with bfserr.ErrWrongCount if p was recorded with a
// different count than the one given here, then forgets p.
func (v *VArena) debugCheck(p unsafe.Pointer, count uint64) {
	if p == nil {
		return
	}
	if want, ok := debugCounts[p]; ok && want != count {
		panic(bfserr.ErrWrongCount)
	}
	delete(debugCounts, p)
}
