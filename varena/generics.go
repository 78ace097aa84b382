package varena

import "unsafe"

// Typed wraps a VArena for a header type H followed by a flexible array of
// E, grounded on pavanmanishd-arena/alloc.go's Alloc[T] generic helper
// pattern. Go has no native flexible array member, so the flexible region
// is reached via Elems: the first unsafe.Sizeof(H{}) bytes of each
// allocation hold H, and the next n*unsafe.Sizeof(E(0)) bytes hold the
// element array.
type Typed[H any, E any] struct {
	v *VArena
}

// NewTyped creates a Typed varena for header H and flexible elements E.
func NewTyped[H any, E any]() *Typed[H, E] {
	var h H
	var e E
	align := uint64(unsafe.Alignof(h))
	min := uint64(unsafe.Sizeof(h))
	esz := uint64(unsafe.Sizeof(e))
	return &Typed[H, E]{v: Init(align, min, min, esz)}
}

// Alloc returns a pointer to a zero-initialized H and a slice over its
// trailing n elements of E, backed by the same allocation.
func (t *Typed[H, E]) Alloc(n uint64) (*H, []E) {
	p := t.v.Alloc(n)
	if p == nil {
		return nil, nil
	}
	h := (*H)(p)
	var zero H
	*h = zero

	if n == 0 {
		return h, nil
	}
	off := unsafe.Sizeof(zero)
	elems := unsafe.Slice((*E)(unsafe.Add(p, off)), n)
	clear(elems)
	return h, elems
}

// Free returns the allocation backing h (allocated with the given element
// count) to the varena.
func (t *Typed[H, E]) Free(h *H, n uint64) {
	t.v.Free(unsafe.Pointer(h), n)
}

// Destroy releases all size classes.
func (t *Typed[H, E]) Destroy() {
	t.v.Destroy()
}

// VArena exposes the underlying untyped VArena, e.g. for Stats().
func (t *Typed[H, E]) VArena() *VArena {
	return t.v
}
