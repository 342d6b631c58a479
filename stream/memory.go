package stream

import (
	"github.com/parhelia512/tinytrl/container"
	"github.com/parhelia512/tinytrl/mathx"
)

// MemoryStream stores stream data directly in memory. The backing buffer
// grows on demand following the shared capacity growth policy; a custom
// allocator may be injected to control where the buffer lives.
//
// The zero value is an empty, valid stream on the heap allocator.
type MemoryStream struct {
	state
	buffer   []byte
	position int
	size     int
	alloc    container.Allocator[byte]
}

// NewMemoryStream creates an empty memory stream.
func NewMemoryStream() *MemoryStream {
	return &MemoryStream{}
}

// NewMemoryStreamCapacity creates a memory stream with a preallocated buffer
// of the given size.
func NewMemoryStreamCapacity(capacity int) *MemoryStream {
	stream := &MemoryStream{}
	if capacity > 0 {
		if buffer := stream.allocator().Alloc(capacity); buffer != nil {
			stream.buffer = buffer
		}
	}
	return stream
}

// NewMemoryStreamAlloc creates an empty memory stream backed by the given
// allocator.
func NewMemoryStreamAlloc(alloc container.Allocator[byte]) *MemoryStream {
	return &MemoryStream{alloc: alloc}
}

func (m *MemoryStream) allocator() container.Allocator[byte] {
	if m.alloc == nil {
		m.alloc = container.HeapAllocator[byte]{}
	}
	return m.alloc
}

// Valid reports whether the stream has not been polluted.
func (m *MemoryStream) Valid() bool {
	return m.state.Valid()
}

// Memory returns the stream contents as a direct slice of the buffer.
func (m *MemoryStream) Memory() []byte {
	return m.buffer[:m.size]
}

// Capacity returns the current buffer capacity in bytes.
func (m *MemoryStream) Capacity() int {
	return len(m.buffer)
}

// SetCapacity grows the buffer to hold at least capacity bytes. The buffer
// never shrinks this way; use ShrinkToFit. Returns false when the
// allocation fails.
func (m *MemoryStream) SetCapacity(capacity int) bool {
	if capacity <= len(m.buffer) {
		return true
	}
	return m.reallocate(mathx.GrowCapacity(capacity, len(m.buffer)))
}

// ShrinkToFit reallocates the buffer to match the stream size exactly. An
// empty stream is cleared instead, keeping its buffer.
func (m *MemoryStream) ShrinkToFit() bool {
	if m.size == 0 {
		m.Clear()
		return true
	}
	if m.size < len(m.buffer) {
		return m.reallocate(m.size)
	}
	return true
}

// Clear resets the stream size to zero and removes the polluted status while
// preserving the allocated capacity.
func (m *MemoryStream) Clear() {
	m.size = 0
	m.poisoned = false
}

// Read copies up to len(buffer) bytes from the current position.
func (m *MemoryStream) Read(buffer []byte) int {
	if len(buffer) == 0 {
		return 0
	}
	remaining := 0
	if m.position <= m.size {
		remaining = m.size - m.position
	}
	bytesRead := min(len(buffer), remaining)
	if bytesRead > 0 {
		copy(buffer, m.buffer[m.position:m.position+bytesRead])
		m.position += bytesRead
	}
	return bytesRead
}

// Write copies len(buffer) bytes into the stream at the current position,
// growing the backing buffer as needed. Returns Failure when the allocation
// fails.
func (m *MemoryStream) Write(buffer []byte) int {
	if len(buffer) == 0 {
		return 0
	}
	tentativeSize := m.position + len(buffer)
	if tentativeSize > len(m.buffer) {
		if !m.reallocate(mathx.GrowCapacity(tentativeSize, len(m.buffer))) {
			return Failure
		}
	}
	if m.position > m.size {
		// A seek past the end leaves a hole; holes read back as zeros.
		clear(m.buffer[m.size:m.position])
	}
	copy(m.buffer[m.position:], buffer)
	m.position = tentativeSize
	m.size = max(m.size, m.position)
	return len(buffer)
}

// Seek adjusts the position relative to origin. Positions are clamped at
// zero and may point past the current size; a subsequent Write or Truncate
// extends the stream.
func (m *MemoryStream) Seek(offset int64, origin SeekOrigin) int64 {
	base := int64(0)
	switch origin {
	case Current:
		base = int64(m.position)
	case End:
		base = int64(m.size)
	}
	m.position = int(max(base+offset, 0))
	return int64(m.position)
}

// Truncate resizes the stream to the current position, growing the buffer
// when the position lies past the end. Returns false when the allocation
// fails.
func (m *MemoryStream) Truncate() bool {
	switch {
	case m.position < m.size:
		m.size = m.position

	case m.position > m.size:
		if m.position > len(m.buffer) {
			if !m.reallocate(mathx.GrowCapacity(m.position, len(m.buffer))) {
				return false
			}
		}
		clear(m.buffer[m.size:m.position])
		m.size = m.position
	}
	return true
}

// Flush is a no-op for memory streams.
func (m *MemoryStream) Flush() bool {
	return true
}

// Position returns the current position.
func (m *MemoryStream) Position() int64 {
	return int64(m.position)
}

// Size returns the stream size.
func (m *MemoryStream) Size() int64 {
	return int64(m.size)
}

// Copy transfers size bytes from source, reading directly into the backing
// buffer instead of going through an intermediate block buffer. A size of
// zero copies the whole remainder of source.
func (m *MemoryStream) Copy(source Stream, size int64, blockSize int) int64 {
	if position, sourceSize := source.Position(), source.Size(); position >= 0 && sourceSize > 0 {
		if position >= sourceSize {
			return 0 // End of source stream reached.
		}
		blockSize = clampBlockSize(source, size, blockSize)

		if m.position == 0 && len(m.buffer) == 0 && blockSize > 0 {
			// Preallocate the buffer to match the source remainder.
			if !m.reallocate(blockSize) {
				return Failure
			}
		}
	}
	if size < 0 || blockSize <= 0 {
		return Failure
	}

	totalBytesRead := int64(0)
	for {
		bytesToRead := blockSize
		if size != 0 && size-totalBytesRead < int64(bytesToRead) {
			bytesToRead = int(size - totalBytesRead)
		}
		if bytesToRead == 0 {
			break
		}
		if tentativeSize := m.position + bytesToRead; tentativeSize > len(m.buffer) {
			if !m.reallocate(mathx.GrowCapacity(tentativeSize, len(m.buffer))) {
				m.Pollute()
				break
			}
		}
		if m.position > m.size {
			// A seek past the end leaves a hole; holes read back as zeros.
			clear(m.buffer[m.size:m.position])
		}
		bytesRead := source.Read(m.buffer[m.position : m.position+bytesToRead])
		if bytesRead < 0 {
			m.Pollute()
			break
		}
		if bytesRead == 0 {
			break
		}
		m.position += bytesRead
		m.size = max(m.size, m.position)
		totalBytesRead += int64(bytesRead)
	}
	return totalBytesRead
}

// reallocate moves the stream contents into a buffer of exactly the given
// capacity.
func (m *MemoryStream) reallocate(capacity int) bool {
	if capacity == len(m.buffer) {
		return true
	}
	alloc := m.allocator()
	buffer := alloc.Alloc(capacity)
	if buffer == nil && capacity > 0 {
		return false
	}
	copy(buffer, m.buffer[:min(m.size, capacity)])
	alloc.Free(m.buffer)
	m.buffer = buffer
	return true
}
