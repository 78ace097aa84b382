// Package varena implements a bank of fixed arenas indexed by a power-of-two
// size class, for structs followed by a trailing variable-length array.
// original_source/src/alloc.h declares struct varena and its varena_*
// signatures but never implements them; this package fills that gap.
package varena

import (
	"math/bits"
	"unsafe"

	"github.com/bfswalk/bfscore/arena"
	"github.com/bfswalk/bfscore/sizeclass"
)

// VArena owns one Arena per size class for a single (align, min, off, esz)
// flexible-struct layout. Size classes are created lazily as larger
// allocations are requested.
type VArena struct {
	align uint64
	min   uint64
	off   uint64
	esz   uint64
	shift uint64

	arenas []*arena.Arena // arenas[k] holds chunks of classSize(k) bytes
}

// Init initializes a VArena for a struct of the given alignment and minimum
// size, whose flexible array begins at byte offset off and holds elements
// of size esz.
func Init(align, min, off, esz uint64) *VArena {
	// shift is the log2 of the smallest class's byte size, not an element
	// count: classOf buckets by byte size (off+esz*n), so the shift that
	// zeroes class 0 out must be computed in the same unit.
	shift := ceilLog2(sizeclass.FlexSize(align, min, off, esz, 0))

	return &VArena{align: align, min: min, off: off, esz: esz, shift: shift}
}

// ceilLog2 returns the smallest e such that 1<<e >= x (treating x<=1 as 0).
func ceilLog2(x uint64) uint64 {
	if x <= 1 {
		return 0
	}
	return uint64(bits.Len64(x - 1))
}

// classOf computes the size-class index for a flexible array of n elements.
// Both Alloc and Free route through this single function, so identical
// (align, min, off, esz, n) tuples always land in the same class.
func (v *VArena) classOf(n uint64) uint64 {
	need := v.off + v.esz*n
	if need < 1 {
		need = 1
	}
	e := ceilLog2(need)
	if e < v.shift {
		e = v.shift
	}
	return e - v.shift
}

// classSize returns the chunk size, in bytes, of size class k: the largest
// byte size classOf buckets into that class, i.e. 2^(shift+k), rounded up
// to the struct's alignment.
func (v *VArena) classSize(k uint64) uint64 {
	return sizeclass.AlignCeil(v.align, uint64(1)<<(v.shift+k))
}

// ensureClass grows the arena bank so that index k exists.
func (v *VArena) ensureClass(k uint64) {
	for uint64(len(v.arenas)) <= k {
		idx := uint64(len(v.arenas))
		size := v.classSize(idx)
		v.arenas = append(v.arenas, arena.Init(uintptr(v.align), uintptr(size)))
	}
}

// Alloc returns an uninitialized pointer to a struct sized for n trailing
// flexible-array elements, or nil on allocation failure.
func (v *VArena) Alloc(n uint64) unsafe.Pointer {
	k := v.classOf(n)
	v.ensureClass(k)
	p := v.arenas[k].Alloc()
	v.debugRecord(p, n)
	return p
}

// Free returns p, allocated with the given element count, to the arena
// bank. count must equal the count given to the allocating Alloc/Realloc
// call; mismatched counts are a contract violation (detected in debug
// builds via bfserr.ErrWrongCount).
func (v *VArena) Free(p unsafe.Pointer, count uint64) {
	v.debugCheck(p, count)
	k := v.classOf(count)
	v.ensureClass(k)
	v.arenas[k].Free(p)
}

// Realloc resizes a flexible struct from oldCount to newCount elements. If
// both counts map to the same size class, Realloc is a no-op that returns
// p unchanged. Otherwise it allocates a new chunk, copies
// min(oldCount,newCount)*esz + off bytes from p, frees the original, and
// returns the new pointer. On allocation failure, p remains valid and nil
// is returned.
func (v *VArena) Realloc(p unsafe.Pointer, oldCount, newCount uint64) unsafe.Pointer {
	oldClass := v.classOf(oldCount)
	newClass := v.classOf(newCount)
	if oldClass == newClass {
		v.debugCheck(p, oldCount)
		v.debugRecord(p, newCount)
		return p
	}

	next := v.Alloc(newCount)
	if next == nil {
		return nil
	}

	copyCount := oldCount
	if newCount < copyCount {
		copyCount = newCount
	}
	copyBytes := v.off + v.esz*copyCount

	src := unsafe.Slice((*byte)(p), copyBytes)
	dst := unsafe.Slice((*byte)(next), copyBytes)
	copy(dst, src)

	v.Free(p, oldCount)
	return next
}

// Destroy releases every size class's slabs.
func (v *VArena) Destroy() {
	for _, a := range v.arenas {
		a.Destroy()
	}
	v.arenas = nil
}

// NumClasses reports how many size classes have been created so far.
func (v *VArena) NumClasses() int {
	return len(v.arenas)
}
