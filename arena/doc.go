// Package arena implements a fixed-size free-list allocator (see arena.go).
//
// # Overview
//
// Arena hands out uninitialized, appropriately-aligned chunks of one
// (alignment, size) pair, backed by slabs carved from rawalloc and doubling
// in chunk count each time the free list runs dry. Unlike a bump allocator,
// freed chunks are recycled via Free before a new slab is ever grown.
//
// # Basic Usage
//
//	a := arena.Init(8, 32)
//	defer a.Destroy()
//
//	p := a.Alloc()
//	a.Free(p)
//
// Or, for a single Go type:
//
//	ta := arena.NewTyped[MyStruct]()
//	defer ta.Destroy()
//	v := ta.Alloc()
//
// # Thread Safety
//
// Arena is not safe for concurrent use. Sharing an Arena across goroutines
// is out of scope for this package (see the project's concurrency model);
// there is no SafeArena wrapper.
//
// # Memory Management
//
//   - Alloc: O(1), pops the free-list head, growing a new slab on demand.
//   - Free: O(1), pushes the chunk back onto the free-list head.
//   - Destroy: releases every slab; the arena must not be reused afterward.
package arena
