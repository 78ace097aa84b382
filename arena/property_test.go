package arena

import (
	"math/rand"
	"testing"
	"unsafe"
)

// Invariant 1: for A in {1,2,4,8,16,64}, S across several magnitudes up to
// 2^20, N allocations then N frees in arbitrary order: every allocation is
// A-aligned and disjoint from every other live allocation; after the
// matched frees the arena holds no live chunks (every chunk is back on the
// free list, verified indirectly by reallocating N more chunks and finding
// them all among the previously-live set).
func TestInvariantAlignedDisjointArbitraryOrder(t *testing.T) {
	aligns := []uintptr{1, 2, 4, 8, 16, 64}
	sizes := []uintptr{1, 7, 32, 1024, 1 << 16, 1 << 20}
	const n = 200

	rng := rand.New(rand.NewSource(1))

	for _, align := range aligns {
		for _, size := range sizes {
			a := Init(align, size)

			ptrs := make([]unsafe.Pointer, n)
			live := map[unsafe.Pointer]bool{}
			for i := range ptrs {
				p := a.Alloc()
				if p == nil {
					t.Fatalf("Alloc(align=%d,size=%d) returned nil at i=%d", align, size, i)
				}
				if uintptr(p)%a.align != 0 {
					t.Fatalf("chunk %p not aligned to %d", p, a.align)
				}
				if live[p] {
					t.Fatalf("chunk %p double-allocated while live", p)
				}
				live[p] = true
				ptrs[i] = p
			}

			order := rng.Perm(n)
			for _, i := range order {
				a.Free(ptrs[i])
				delete(live, ptrs[i])
			}
			if len(live) != 0 {
				t.Fatalf("%d chunks still marked live after freeing all", len(live))
			}

			// Reallocating N more must draw only from the just-freed set -
			// confirms the arena holds no outstanding live chunks.
			freedSet := map[unsafe.Pointer]bool{}
			for _, p := range ptrs {
				freedSet[p] = true
			}
			for i := 0; i < n; i++ {
				p := a.Alloc()
				if !freedSet[p] {
					t.Fatalf("reallocated chunk %p not among freed set", p)
				}
			}

			a.Destroy()
		}
	}
}
