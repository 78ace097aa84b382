// Package varena implements the variable-size arena allocator (see
// varena.go): a bank of fixed arena.Arenas, one per power-of-two size
// class, for structs followed by a trailing flexible array whose length is
// chosen per allocation.
//
// # Basic Usage
//
//	v := varena.Init(8, 24, 16, 8) // align=8, min=24, off=16, esz=8
//	defer v.Destroy()
//
//	p := v.Alloc(3)
//	p = v.Realloc(p, 3, 10)
//	v.Free(p, 10)
//
// # Size Classes
//
// classOf(n) buckets the struct's total byte size (off+esz*n) into the
// smallest power-of-two class that fits it, shifted so that class 0 is
// exactly the smallest class covering the struct's declared minimum size.
// The same function is used by Alloc and Free so identical (align, min,
// off, esz, n) tuples always land in the same class, with no risk of
// alloc and free drifting onto different boundaries.
//
// # Thread Safety
//
// Like arena.Arena, VArena is not safe for concurrent use.
package varena
