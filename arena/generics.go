package arena

import "unsafe"

// Typed is a typed Arena for T, wrapping For[T]() so callers don't
// repeat the type parameter at both the arena and the allocation call
// site, matching pavanmanishd-arena/alloc.go's Alloc[T](a) convenience
// generics.
type Typed[T any] struct {
	a *Arena
}

// NewTyped creates a Typed arena for T.
func NewTyped[T any]() *Typed[T] {
	return &Typed[T]{a: For[T]()}
}

// Alloc returns a zero-initialized *T allocated from the arena, or nil if
// the arena could not grow.
func (t *Typed[T]) Alloc() *T {
	p := t.a.Alloc()
	if p == nil {
		return nil
	}
	out := (*T)(p)
	var zero T
	*out = zero
	return out
}

// Free returns p to the arena's free list.
func (t *Typed[T]) Free(p *T) {
	t.a.Free(unsafe.Pointer(p))
}

// Destroy releases all slabs backing the typed arena.
func (t *Typed[T]) Destroy() {
	t.a.Destroy()
}

// Arena exposes the underlying untyped Arena, e.g. for Stats().
func (t *Typed[T]) Arena() *Arena {
	return t.a
}
