package text

import "math/bits"

// WideString is a UTF-16 string, commonly needed for Windows API interop.
// Owned strings keep a terminating zero unit past the content; wrapped
// strings borrow a caller-owned zero-terminated buffer. There is no
// inline form and no spare capacity: every resize reallocates to fit.
//
// WideString shares the String poison protocol. The zero value is an
// empty valid string.
type WideString struct {
	chars    []uint16 // content plus terminator for owned strings
	length   int
	wrapped  bool
	poisoned bool
}

// WideFromBuffer creates a wide string copying content from buffer,
// stopping at the first zero unit if one occurs before the buffer ends.
func WideFromBuffer(buffer []uint16) WideString {
	var s WideString
	length := wideContentLength(buffer)
	if s.SetLength(length) {
		copy(s.chars, buffer[:length])
	} else {
		s.Pollute()
	}
	return s
}

// WideFromBufferByteSwap is WideFromBuffer with each unit byte-swapped
// while copying, for buffers read in the opposite endianness.
func WideFromBufferByteSwap(buffer []uint16) WideString {
	length := wideContentLength(buffer)
	var s WideString
	if s.SetLength(length) {
		for i := range length {
			s.chars[i] = bits.ReverseBytes16(buffer[i])
		}
	} else {
		s.Pollute()
	}
	return s
}

// WideFill creates a wide string of length copies of fill.
func WideFill(length int, fill uint16) WideString {
	var s WideString
	if length < 0 || !s.SetLength(length) {
		s.Pollute()
		return s
	}
	for i := range length {
		s.chars[i] = fill
	}
	return s
}

// WrapWide creates a wide string borrowing a zero-terminated buffer. The
// content runs up to the first zero unit, or the whole buffer when none
// is present. The caller keeps ownership and must not free or mutate the
// buffer while the string is live.
func WrapWide(buffer []uint16) WideString {
	if len(buffer) == 0 {
		return WideString{}
	}
	return WideString{
		chars:   buffer,
		length:  wideContentLength(buffer),
		wrapped: true,
	}
}

// Data returns the string content. For owned strings the returned slice
// is backed by the string itself and is invalidated by any mutation.
func (s *WideString) Data() []uint16 {
	return s.chars[:s.length]
}

// At returns the unit at index. Out-of-range indices panic.
func (s WideString) At(index int) uint16 {
	return s.Data()[index]
}

// First returns the first unit. Panics when the string is empty.
func (s WideString) First() uint16 {
	return s.Data()[0]
}

// Last returns the last unit. Panics when the string is empty.
func (s WideString) Last() uint16 {
	return s.Data()[s.length-1]
}

// Valid reports whether the string is not poisoned.
func (s WideString) Valid() bool {
	return !s.poisoned
}

// Pollute sets the sticky error flag.
func (s *WideString) Pollute() *WideString {
	s.poisoned = true
	return s
}

// Unpollute acknowledges and clears the error flag.
func (s *WideString) Unpollute() *WideString {
	s.poisoned = false
	return s
}

// Empty reports whether the string holds no content.
func (s WideString) Empty() bool {
	return s.length == 0
}

// Wrapped reports whether the string borrows a caller-owned buffer.
func (s WideString) Wrapped() bool {
	return s.wrapped
}

// Length returns the content length in UTF-16 units.
func (s WideString) Length() int {
	return s.length
}

// SetLength resizes the content to n units, reallocating exactly. A
// wrapped string becomes owned, keeping as much of the borrowed content
// as fits. Returns false when n is out of range.
func (s *WideString) SetLength(n int) bool {
	if n < 0 || n > MaxLength {
		return false
	}
	if n == s.length && !s.wrapped {
		return true
	}
	if n == 0 {
		poisoned := s.poisoned
		*s = WideString{poisoned: poisoned}
		return true
	}
	next := make([]uint16, n+1)
	copy(next, s.chars[:min(s.length, n)])
	s.chars = next
	s.length = n
	s.wrapped = false
	return true
}

// Clear resets the string to empty, releasing the storage and the poison
// flag.
func (s *WideString) Clear() {
	*s = WideString{}
}

// Burn zeroes the content before resetting the length and poison flag.
// Returns false for a wrapped string, whose buffer is not ours to erase.
func (s *WideString) Burn() bool {
	if s.wrapped {
		return false
	}
	clear(s.chars)
	s.length = 0
	s.poisoned = false
	return true
}

// Clone returns an owned deep copy; the poison status carries over.
func (s *WideString) Clone() WideString {
	var res WideString
	if res.SetLength(s.length) {
		copy(res.chars, s.Data())
	}
	res.poisoned = s.poisoned
	return res
}

// wideContentLength counts units up to the first zero.
func wideContentLength(buffer []uint16) int {
	for i, u := range buffer {
		if u == 0 {
			return i
		}
	}
	return len(buffer)
}
