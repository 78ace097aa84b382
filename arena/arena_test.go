package arena

import (
	"testing"
	"unsafe"
)

func TestInitRoundsUpAlignAndSize(t *testing.T) {
	a := Init(1, 1)
	if a.align < unsafe.Alignof(uintptr(0)) {
		t.Errorf("align = %d, want >= pointer alignment", a.align)
	}
	if a.size < unsafe.Sizeof(uintptr(0)) {
		t.Errorf("size = %d, want >= pointer size", a.size)
	}
}

func TestAllocDisjointAndAligned(t *testing.T) {
	aligns := []uintptr{1, 2, 4, 8, 16, 64}
	for _, align := range aligns {
		a := Init(align, 32)
		seen := map[uintptr]bool{}
		var ptrs []unsafe.Pointer
		for i := 0; i < 1000; i++ {
			p := a.Alloc()
			if p == nil {
				t.Fatalf("Alloc returned nil at i=%d", i)
			}
			addr := uintptr(p)
			if addr%a.align != 0 {
				t.Fatalf("chunk %#x not aligned to %d", addr, a.align)
			}
			if seen[addr] {
				t.Fatalf("chunk %#x allocated twice while live", addr)
			}
			seen[addr] = true
			ptrs = append(ptrs, p)
		}
		for _, p := range ptrs {
			a.Free(p)
		}
		a.Destroy()
	}
}

// S2 (arena recycle): init with (8, 32); alloc 1000 chunks; free p[500..999]
// in reverse; alloc 500 more; each equals one of the freed addresses (LIFO).
func TestArenaRecycleLIFO(t *testing.T) {
	a := Init(8, 32)

	var ptrs []unsafe.Pointer
	for i := 0; i < 1000; i++ {
		ptrs = append(ptrs, a.Alloc())
	}

	freed := map[unsafe.Pointer]bool{}
	for i := 999; i >= 500; i-- {
		a.Free(ptrs[i])
		freed[ptrs[i]] = true
	}

	for i := 0; i < 500; i++ {
		p := a.Alloc()
		if !freed[p] {
			t.Fatalf("reallocated chunk %p was not one of the freed addresses", p)
		}
		delete(freed, p)
	}

	if len(freed) != 0 {
		t.Fatalf("%d freed chunks were never recycled", len(freed))
	}
}

func TestDestroyThenReinit(t *testing.T) {
	a := Init(8, 16)
	p := a.Alloc()
	if p == nil {
		t.Fatal("Alloc returned nil")
	}
	a.Destroy()
	if a.NumSlabs() != 0 {
		t.Errorf("NumSlabs after Destroy = %d, want 0", a.NumSlabs())
	}

	a = Init(8, 16)
	if a.Alloc() == nil {
		t.Fatal("Alloc after re-Init returned nil")
	}
	if a.NumSlabs() != 1 {
		t.Errorf("NumSlabs after re-Init and Alloc = %d, want 1", a.NumSlabs())
	}
}

func TestGrowthDoublesSlabs(t *testing.T) {
	a := Init(8, 4096) // one chunk per slab at the minimum slab size
	a.Alloc()
	if a.NumSlabs() != 1 {
		t.Fatalf("NumSlabs after 1 alloc = %d, want 1", a.NumSlabs())
	}
	a.Alloc()
	if a.NumSlabs() != 2 {
		t.Fatalf("NumSlabs after 2 allocs = %d, want 2", a.NumSlabs())
	}
	// The second slab holds twice as many chunks: 4096 + 2*4096 bytes.
	if got := a.Stats().Capacity; got != 3*4096 {
		t.Fatalf("Capacity after 2 slabs = %d, want %d", got, 3*4096)
	}
}

func TestTypedArena(t *testing.T) {
	type point struct{ X, Y int64 }

	ta := NewTyped[point]()
	defer ta.Destroy()

	p := ta.Alloc()
	if p == nil {
		t.Fatal("Alloc returned nil")
	}
	if p.X != 0 || p.Y != 0 {
		t.Errorf("Alloc did not zero-initialize: %+v", *p)
	}
	p.X, p.Y = 1, 2
	ta.Free(p)
}

func TestStats(t *testing.T) {
	a := Init(8, 32)
	a.Alloc()
	s := a.Stats()
	if s.NumSlabs != 1 {
		t.Errorf("Stats.NumSlabs = %d, want 1", s.NumSlabs)
	}
	if s.Capacity <= 0 {
		t.Errorf("Stats.Capacity = %d, want > 0", s.Capacity)
	}
}
