package text

import (
	"math"

	"github.com/parhelia512/tinytrl/mathx"
)

const (
	// NotFound denotes an invalid or nonexistent index. As a length
	// argument it selects everything up to the end of the string.
	NotFound = -1

	// MaxLength is the largest representable string length.
	MaxLength = math.MaxInt - 1

	// shortBufferSize is the inline slot size, terminator included.
	shortBufferSize = 24

	// ShortCapacity is the longest content the inline slot can hold.
	ShortCapacity = shortBufferSize - 1
)

// String is a byte string for ASCII or UTF-8 content with short string
// optimization: content up to ShortCapacity bytes lives in the struct
// itself and needs no heap allocation. Longer content moves to a heap
// buffer that grows by the shared capacity policy. The backing buffer
// always carries a terminating zero byte past the content, so Data is
// usable with zero-copy C interop.
//
// A third form wraps a caller-owned zero-terminated buffer without
// copying. Wrapped strings are read-only until Unwrap converts them to an
// owned form; mutating operations unwrap implicitly when they must grow.
//
// Failed or invalid operations poison the string instead of failing
// loudly: the flag is sticky, propagates from operands to results, and is
// cleared only by Unpollute, Clear or Burn. The zero value is an empty
// valid string.
type String struct {
	short    [shortBufferSize]byte
	chars    []byte // long or wrapped storage, terminator included
	length   int
	capacity int // usable capacity of the long form, terminator excluded
	long     bool
	wrapped  bool
	poisoned bool
}

// New creates a string copying content from a Go string.
func New(content string) String {
	var s String
	if s.SetLength(len(content)) {
		copy(s.buffer(), content)
	} else {
		s.Pollute()
	}
	return s
}

// FromRawBytes creates a string copying length bytes from buffer, zero
// bytes included.
func FromRawBytes(buffer []byte) String {
	var s String
	if s.SetLength(len(buffer)) {
		copy(s.buffer(), buffer)
	} else {
		s.Pollute()
	}
	return s
}

// FromBuffer creates a string copying content from buffer, stopping at
// the first zero byte if one occurs before the buffer ends.
func FromBuffer(buffer []byte) String {
	length := len(buffer)
	for i, b := range buffer {
		if b == 0 {
			length = i
			break
		}
	}
	return FromRawBytes(buffer[:length])
}

// Fill creates a string of length copies of fill.
func Fill(length int, fill byte) String {
	var s String
	if length < 0 || !s.SetLength(length) {
		s.Pollute()
		return s
	}
	content := s.buffer()[:length]
	for i := range content {
		content[i] = fill
	}
	return s
}

// FromChar creates a single-character string.
func FromChar(charCode byte) String {
	var s String
	s.short[0] = charCode
	s.length = 1
	return s
}

// Invalid creates an empty poisoned string.
func Invalid() String {
	var s String
	s.Pollute()
	return s
}

// Wrap creates a string borrowing buffer, which must hold the content
// followed by a terminating zero byte. No copy is made unless the content
// fits the inline slot or no terminator is present, in which cases the
// result is an ordinary owned string. The caller keeps ownership of a
// wrapped buffer and must not free or mutate it while the string is live.
func Wrap(buffer []byte) String {
	length := len(buffer)
	for i, b := range buffer {
		if b == 0 {
			length = i
			break
		}
	}
	if length <= ShortCapacity {
		return FromRawBytes(buffer[:length])
	}
	if length == len(buffer) {
		// No terminator; the buffer cannot be borrowed as-is.
		return FromRawBytes(buffer)
	}
	var s String
	s.chars = buffer
	s.length = length
	s.long = true
	s.wrapped = true
	return s
}

// Data returns the string content. For owned strings the returned slice
// is backed by the string itself and is invalidated by any mutation.
func (s *String) Data() []byte {
	return s.buffer()[:s.length]
}

// String returns the content as a Go string.
func (s String) String() string {
	return string(s.Data())
}

// At returns the byte at index. Out-of-range indices panic.
func (s String) At(index int) byte {
	return s.Data()[index]
}

// SetAt overwrites the byte at index. Out-of-range indices panic; writing
// into a wrapped string panics as well since its buffer is borrowed.
func (s *String) SetAt(index int, charCode byte) {
	if s.wrapped {
		panic("text: write into wrapped string")
	}
	s.Data()[index] = charCode
}

// First returns the first byte. Panics when the string is empty.
func (s String) First() byte {
	return s.Data()[0]
}

// Last returns the last byte. Panics when the string is empty.
func (s String) Last() byte {
	return s.Data()[s.length-1]
}

// Valid reports whether the string is not poisoned.
func (s String) Valid() bool {
	return !s.poisoned
}

// Pollute sets the sticky error flag.
func (s *String) Pollute() *String {
	s.poisoned = true
	return s
}

// Unpollute acknowledges and clears the error flag.
func (s *String) Unpollute() *String {
	s.poisoned = false
	return s
}

// Empty reports whether the string holds no content.
func (s String) Empty() bool {
	return s.length == 0
}

// Wrapped reports whether the string borrows a caller-owned buffer.
func (s String) Wrapped() bool {
	return s.wrapped
}

// Length returns the content length in bytes.
func (s String) Length() int {
	return s.length
}

// Capacity returns the content capacity: how long the string may grow
// before reallocating. A wrapped string has no capacity of its own.
func (s String) Capacity() int {
	switch {
	case s.wrapped:
		return 0
	case s.long:
		return s.capacity
	default:
		return ShortCapacity
	}
}

// SetCapacity grows the capacity to hold at least n content bytes. It
// never shrinks. Returns false when n is out of range.
func (s *String) SetCapacity(n int) bool {
	if n < 0 || n > MaxLength {
		return false
	}
	s.ensure(n)
	return true
}

// SetLength resizes the content to n bytes. Growth exposes whatever the
// buffer holds past the old terminator; callers normally overwrite it
// right away. Returns false when n is out of range.
func (s *String) SetLength(n int) bool {
	if n < 0 || n > MaxLength {
		return false
	}
	if n != s.length {
		if s.wrapped && n == 0 {
			s.release()
		} else {
			s.ensure(n)
			s.writeLength(n)
		}
	}
	return true
}

// Clear resets the string to empty and clears the poison flag. A long
// owned buffer is kept for reuse; a wrapped buffer is released.
func (s *String) Clear() {
	if s.long && !s.wrapped {
		s.length = 0
		s.chars[0] = 0
		s.poisoned = false
	} else {
		*s = String{}
	}
}

// Burn zeroes the content before resetting the length and poison flag,
// for secrets that must not linger in memory. Returns false for a wrapped
// string, whose buffer is not ours to erase.
func (s *String) Burn() bool {
	if s.wrapped {
		return false
	}
	clear(s.buffer()[:s.length])
	s.length = 0
	s.poisoned = false
	return true
}

// Shrink reallocates the string to fit its content, converting a long
// string back to the inline form when the content allows. Applying it
// twice changes nothing the second time. Returns false for a wrapped
// string.
func (s *String) Shrink() bool {
	if s.wrapped {
		return false
	}
	switch {
	case s.length == 0:
		poisoned := s.poisoned
		*s = String{poisoned: poisoned}
	case s.length+1 <= ShortCapacity:
		if s.long {
			content := s.chars[:s.length]
			s.chars = nil
			s.long = false
			s.capacity = 0
			clear(s.short[:])
			copy(s.short[:], content)
		}
	default:
		s.reallocate(s.length + 1)
	}
	return true
}

// Unwrap converts a wrapped string into an owned copy. Owned strings are
// returned unchanged, so the call is idempotent.
func (s *String) Unwrap() bool {
	if !s.wrapped {
		return true
	}
	s.reallocate(s.length + 1)
	return true
}

// Assign replaces the content with a copy of source. The source's poison
// status propagates.
func (s *String) Assign(source String) bool {
	s.Unwrap()
	if s.length != source.length {
		s.ensure(source.length)
		s.writeLength(source.length)
	}
	copy(s.buffer(), source.Data())
	if source.poisoned {
		s.Pollute()
	}
	return true
}

// Clone returns an owned deep copy. Cloning a wrapped string copies the
// borrowed content; the poison status carries over.
func (s *String) Clone() String {
	res := FromRawBytes(s.Data())
	res.poisoned = s.poisoned
	return res
}

// Store copies the content into dest, zero-filling any remainder of dest.
// Returns the number of content bytes copied.
func (s *String) Store(dest []byte) int {
	if len(dest) == 0 {
		return 0
	}
	copied := copy(dest, s.Data())
	clear(dest[copied:])
	return copied
}

// buffer returns the active backing storage, terminator slot included.
func (s *String) buffer() []byte {
	if s.long {
		return s.chars
	}
	return s.short[:]
}

// release resets to an empty owned string, keeping the poison flag.
func (s *String) release() {
	poisoned := s.poisoned
	*s = String{poisoned: poisoned}
}

// ensure grows the storage to hold capacity content bytes, converting
// wrapped or inline forms as required.
func (s *String) ensure(capacity int) {
	if actual := s.Capacity(); actual < capacity {
		s.reallocate(mathx.NextCapacity(capacity+1, actual, ShortCapacity))
	}
}

// reallocate moves the string into storage of total bytes, terminator
// included. Wrapped content lands in an owned buffer, or back in the
// inline slot when small enough.
func (s *String) reallocate(total int) {
	switch {
	case s.long && !s.wrapped:
		next := make([]byte, total)
		copy(next, s.chars[:min(len(s.chars), total)])
		s.chars = next
		s.capacity = total - 1
	case s.wrapped:
		content := s.chars[:s.length]
		if total > ShortCapacity {
			next := make([]byte, total)
			copy(next, content)
			s.chars = next
			s.capacity = total - 1
			s.wrapped = false
		} else {
			s.chars = nil
			s.long = false
			s.wrapped = false
			s.capacity = 0
			clear(s.short[:])
			// content still aliases the borrowed buffer
			copy(s.short[:], content)
		}
	default:
		next := make([]byte, total)
		copy(next, s.short[:s.length])
		s.chars = next
		s.long = true
		s.capacity = total - 1
	}
}

// writeLength records a new content length and terminates the buffer.
// Must not be called on a wrapped string.
func (s *String) writeLength(length int) {
	s.length = length
	s.buffer()[length] = 0
}
