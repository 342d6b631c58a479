package container

// Allocator is the capability containers use to obtain and release backing
// storage. It is injected per container instance, so arena or pool
// allocators can be swapped in without changing container code.
type Allocator[E any] interface {
	// Alloc returns storage for exactly n elements, or nil when the
	// allocation cannot be satisfied. It never panics.
	Alloc(n int) []E

	// Free returns storage previously obtained from Alloc. Allocators that
	// do not reuse memory may ignore the call.
	Free(s []E)
}

// HeapAllocator allocates from the Go heap and never fails. The zero value
// is ready to use; it is the default when a container is created with a nil
// allocator.
type HeapAllocator[E any] struct{}

// Alloc returns a freshly made slice of n elements.
func (HeapAllocator[E]) Alloc(n int) []E {
	if n <= 0 {
		return nil
	}
	return make([]E, n)
}

// Free is a no-op; the Go runtime reclaims heap storage.
func (HeapAllocator[E]) Free([]E) {}

// Arena is a fixed-capacity bump allocator. Allocations are carved
// sequentially from a single backing slice and are never returned
// individually; Reset reclaims everything at once. Alloc returns nil once
// the arena is exhausted, which exercises the containers' poison paths.
type Arena[E any] struct {
	buf  []E
	used int
}

// NewArena creates an arena able to hand out a total of capacity elements.
func NewArena[E any](capacity int) *Arena[E] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[E]{buf: make([]E, capacity)}
}

// Alloc bumps the arena pointer by n elements. Returns nil when fewer than
// n elements remain.
func (a *Arena[E]) Alloc(n int) []E {
	if n <= 0 || n > len(a.buf)-a.used {
		return nil
	}
	s := a.buf[a.used : a.used+n : a.used+n]
	a.used += n
	return s
}

// Free is a no-op; arena storage is reclaimed only by Reset.
func (a *Arena[E]) Free([]E) {}

// Reset makes the entire arena available again. Storage handed out before
// the call must no longer be used.
func (a *Arena[E]) Reset() {
	clear(a.buf)
	a.used = 0
}

// Remaining returns the number of elements the arena can still provide.
func (a *Arena[E]) Remaining() int {
	return len(a.buf) - a.used
}
