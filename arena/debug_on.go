//go:build bfsdebug

package arena

import (
	"unsafe"

	"github.com/bfswalk/bfscore/bfserr"
)

// Debug builds (built with -tags bfsdebug) poison freed chunks with a
// recognizable byte pattern and panic on a detected double-free - grounded
// on hupe1980-vecgo/internal/arena's generation-tag idiom, adapted from
// "detect stale pointers" to "detect double free" since this arena has no
// pointer-aliasing concern to begin with.
//
// Release builds (the default, no build tag) never pay for this check; a
// repeated Free on the same pointer is undefined behavior there.

const poisonByte = 0xDE

// poisonFree overwrites a freed chunk's tail (past the free-list link word)
// with a recognizable pattern, and checks the pattern is already present
// before writing - which would indicate the chunk was already free.
func (a *Arena) poisonFree(p unsafe.Pointer) {
	const linkSize = unsafe.Sizeof(uintptr(0))
	if a.size <= linkSize {
		return
	}
	tail := unsafe.Slice((*byte)(unsafe.Add(p, linkSize)), a.size-linkSize)
	allPoisoned := true
	for _, b := range tail {
		if b != poisonByte {
			allPoisoned = false
			break
		}
	}
	if allPoisoned && len(tail) > 0 {
		panic(bfserr.ErrDoubleFree)
	}
	for i := range tail {
		tail[i] = poisonByte
	}
}

// clearPoison is called on Alloc to erase the poison pattern so a
// subsequent Free can distinguish "freshly freed" from "still poisoned
// from before".
func (a *Arena) clearPoison(p unsafe.Pointer) {
	const linkSize = unsafe.Sizeof(uintptr(0))
	if a.size <= linkSize {
		return
	}
	tail := unsafe.Slice((*byte)(unsafe.Add(p, linkSize)), a.size-linkSize)
	clear(tail)
}
