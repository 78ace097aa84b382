// Package arena implements a free-list-over-slabs allocator for a single
// fixed (alignment, size) pair, matching original_source/src/alloc.c's
// struct arena/arena_init/arena_alloc/arena_free/arena_destroy.
//
// Unlike a bump allocator, Arena recycles freed chunks: Alloc pops the head
// of a singly linked free list; Free pushes the chunk back onto it. Slabs
// grow the backing store on demand and are only released in Destroy -
// arena_free never returns memory to the raw allocator.
//
// Arena is not safe for concurrent use; callers must not share an Arena
// across goroutines (see spec's concurrency model - this is a deliberate
// scope exclusion, not an oversight).
package arena

import (
	"unsafe"

	"github.com/bfswalk/bfscore/rawalloc"
	"github.com/bfswalk/bfscore/sizeclass"
)

// minSlabBytes is the target size of the first slab, matching
// original_source/src/alloc.c's slab_alloc: "make the initial allocation
// size ~4K", trimmed down to a whole number of chunks and doubled per
// generation thereafter.
const minSlabBytes = 4096

// freeNode overlays the first machine word of a free chunk. It is never
// exposed to callers: Alloc/Free translate between this and the opaque
// unsafe.Pointer the public API deals in, keeping the free-list pointer
// type internal.
type freeNode struct {
	next unsafe.Pointer
}

// Arena owns a singly linked free list of same-shaped chunks and the slabs
// that back them. All chunks share one (align, size) pair.
type Arena struct {
	align uintptr
	size  uintptr

	head  unsafe.Pointer // head of the free list, or nil
	slabs [][]byte       // every slab ever allocated, kept alive for Destroy
}

// Init initializes arena for chunks of the given alignment and size.
// align and size are rounded up so that chunks are at least
// pointer-aligned and pointer-sized, since a free chunk's first word holds
// the free-list link.
func Init(align, size uintptr) *Arena {
	const ptrSize = unsafe.Sizeof(uintptr(0))
	const ptrAlign = unsafe.Alignof(uintptr(0))

	if align < ptrAlign {
		align = ptrAlign
	}
	if size < ptrSize {
		size = ptrSize
	}
	size = uintptr(sizeclass.AlignCeil(uint64(align), uint64(size)))

	return &Arena{align: align, size: size}
}

// For initializes an Arena sized for T. It is the Go equivalent of the
// spec's ARENA_INIT(arena, T) convenience macro.
func For[T any]() *Arena {
	var zero T
	return Init(unsafe.Alignof(zero), unsafe.Sizeof(zero))
}

// Alloc returns a pointer to an uninitialized, size-byte, align-aligned
// chunk, or nil if a new slab was needed and the backing allocator failed.
func (a *Arena) Alloc() unsafe.Pointer {
	if a.head == nil {
		if !a.growSlab() {
			return nil
		}
	}

	node := (*freeNode)(a.head)
	p := a.head
	a.head = node.next
	// The chunk is now live; its former free-list link is caller-owned
	// memory and must not be interpreted as a pointer anymore.
	node.next = nil
	a.clearPoison(p)
	return p
}

// Free returns p, previously obtained from Alloc, to the arena's free list.
// It is never released to the OS; only Destroy does that.
//
// Freeing the same pointer twice without an intervening Alloc is a
// contract violation (undefined behavior in release builds; detected on a
// best-effort basis in builds tagged bfsdebug).
func (a *Arena) Free(p unsafe.Pointer) {
	a.poisonFree(p)
	node := (*freeNode)(p)
	node.next = a.head
	a.head = p
}

// Destroy releases all slabs. The arena must not be used afterward.
func (a *Arena) Destroy() {
	a.slabs = nil
	a.head = nil
}

// NumSlabs reports how many slabs have been allocated so far.
func (a *Arena) NumSlabs() int {
	return len(a.slabs)
}

// growSlab allocates a new slab, doubling the chunk count relative to the
// previous generation, and threads its chunks onto the free list in
// reverse so that Alloc hands them out in ascending address order -
// mirroring original_source's slab_alloc/chunk_set_next chaining.
func (a *Arena) growSlab() bool {
	slabBytes := uint64(minSlabBytes)
	if slabBytes < uint64(a.size) {
		slabBytes = uint64(a.size)
	}
	slabBytes -= slabBytes % uint64(a.size)
	slabBytes <<= uint(len(a.slabs))

	slab := rawalloc.Zalloc(uint64(a.align), slabBytes)
	if slab == nil {
		return false
	}
	a.slabs = append(a.slabs, slab)

	n := uintptr(len(slab)) / a.size
	base := unsafe.Pointer(&slab[0])
	for i := n; i > 0; i-- {
		off := (i - 1) * a.size
		chunk := unsafe.Add(base, off)
		node := (*freeNode)(chunk)
		node.next = a.head
		a.head = chunk
	}

	return true
}
