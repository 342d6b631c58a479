// Package container provides exception-free, allocation-aware generic
// containers: a growable Array, and FlatMap/FlatSet associative containers
// backed by a single sorted array.
//
// # Error protocol
//
// No operation panics on resource exhaustion and none returns an error
// value. Instead every container carries a sticky "poisoned" flag: a failed
// allocation or a length overflow either reports failure directly (through
// a bool or NotFound result) or sets the flag, which then propagates until
// the caller acknowledges it via Unpollute, Clear or Purge. Valid reports
// the flag, so a long chain of fallible operations can be checked once at
// the end:
//
//	a := container.ArrayOf(25, 100, 75)
//	a.InsertP(1, 5).AddP(50)
//	if !a.Valid() {
//		// at least one step failed; content may be partial
//	}
//
// # Storage
//
// Containers obtain backing storage through the Allocator capability,
// injected per instance. The default HeapAllocator uses the Go heap and
// never fails; Arena is a fixed-size bump allocator that reports
// exhaustion, giving the failure paths above observable behavior.
//
// The containers are not synchronized; each instance is owned by a single
// goroutine at a time.
package container
