package stream

import (
	"encoding/binary"

	"github.com/parhelia512/tinytrl/mathx"
	"github.com/parhelia512/tinytrl/text"
)

// Failure denotes an operation that is not supported or could not complete.
const Failure = -1

// DefaultBlockSize is the block size used for copy operations when the
// caller does not specify one.
const DefaultBlockSize = 8192

// SeekOrigin selects the reference point for Seek operations.
type SeekOrigin uint8

const (
	// Beginning seeks relative to the start of the stream.
	Beginning SeekOrigin = iota

	// Current seeks relative to the current position.
	Current

	// End seeks relative to the end of the stream.
	End
)

// Stream is a general-purpose byte stream for input and output operations.
//
// Failed operations report Failure (or false) instead of returning errors;
// the buffered helpers additionally set a sticky error bit that can be
// inspected through Valid and propagates through subsequent operations, the
// same protocol the text and container packages follow.
type Stream interface {
	// Valid reports whether the stream has not been polluted by a failed
	// buffered operation. Implementations may add further state checks,
	// such as handle validity.
	Valid() bool

	// Pollute sets the sticky error bit, marking the stream as polluted.
	Pollute()

	// Read reads up to len(buffer) bytes into buffer and returns the number
	// of bytes read, or Failure.
	Read(buffer []byte) int

	// Write writes len(buffer) bytes from buffer and returns the number of
	// bytes written, or Failure.
	Write(buffer []byte) int

	// Seek adjusts the position relative to the given origin and returns
	// the resulting position from the beginning of the stream, or Failure.
	Seek(offset int64, origin SeekOrigin) int64

	// Truncate cuts the stream at the current position.
	Truncate() bool

	// Flush forces any buffered data to be written out.
	Flush() bool

	// Position returns the current position from the beginning of the stream.
	Position() int64

	// Size returns the size of the stream, or Failure.
	Size() int64

	// Copy transfers size bytes from source starting at the current
	// positions of both streams, block by block. A size of zero copies the
	// whole remainder of source. Returns the number of bytes copied, or
	// Failure; any read, write or allocation failure pollutes the stream.
	Copy(source Stream, size int64, blockSize int) int64
}

// state carries the sticky error bit shared by stream implementations.
type state struct {
	poisoned bool
}

// Valid reports whether the stream has not been polluted.
func (s *state) Valid() bool {
	return !s.poisoned
}

// Pollute sets the sticky error bit.
func (s *state) Pollute() {
	s.poisoned = true
}

// copyStream is the generic block-wise copy loop shared by stream
// implementations that have no faster path. It reads from source into an
// intermediate buffer and drains the buffer into dest, tolerating short
// writes. Returns the number of bytes read from source, or Failure.
func copyStream(dest, source Stream, size int64, blockSize int) int64 {
	blockSize = clampBlockSize(source, size, blockSize)
	if blockSize <= 0 || size < 0 {
		dest.Pollute()
		return Failure
	}

	buffer := make([]byte, blockSize)
	totalBytesRead := int64(0)
	storedBytes := 0
	available := true

	for {
		if storedBytes < blockSize && available {
			// Read additional data into the intermediate buffer.
			bytesToRead := blockSize - storedBytes
			if size != 0 && size-totalBytesRead < int64(bytesToRead) {
				bytesToRead = int(size - totalBytesRead)
			}
			bytesRead := source.Read(buffer[storedBytes : storedBytes+bytesToRead])
			if bytesRead < 0 {
				dest.Pollute()
				break
			}
			available = bytesRead != 0
			storedBytes += bytesRead
			totalBytesRead += int64(bytesRead)
		}

		if storedBytes == 0 {
			break // End of source reached and all bytes have been copied.
		}
		bytesWritten := dest.Write(buffer[:storedBytes])
		if bytesWritten <= 0 {
			dest.Pollute()
			break
		}
		if bytesWritten < storedBytes {
			copy(buffer, buffer[bytesWritten:storedBytes])
		}
		storedBytes -= bytesWritten
	}
	return totalBytesRead
}

// clampBlockSize limits the copy block size so it does not exceed the
// remainder of the source stream or the requested copy size.
func clampBlockSize(source Stream, size int64, blockSize int) int {
	position := source.Position()
	sourceSize := source.Size()

	if position >= 0 && sourceSize > 0 {
		limit := int64(blockSize)
		if sourceSize-position < limit {
			limit = sourceSize - position
		}
		if size > 0 && size < limit {
			limit = size
		}
		blockSize = int(mathx.Saturate(limit, 0, int64(blockSize)))
	}
	return blockSize
}

// ReadBuffer reads exactly len(buffer) bytes from the stream. If fewer bytes
// are available, the remainder of buffer is zero-filled and the stream is
// polluted.
func ReadBuffer(s Stream, buffer []byte) {
	bytesRead := s.Read(buffer)
	if bytesRead < len(buffer) {
		if bytesRead < 0 {
			bytesRead = 0
		}
		clear(buffer[bytesRead:])
		s.Pollute()
	}
}

// WriteBuffer writes exactly len(buffer) bytes to the stream, polluting the
// stream when fewer bytes could be written.
func WriteBuffer(s Stream, buffer []byte) {
	if s.Write(buffer) != len(buffer) {
		s.Pollute()
	}
}

// ReadString reads the remainder of the stream and appends it to string.
// A read failure pollutes the stream; running out of string space marks the
// string as polluted with the data partially read.
func ReadString(s Stream, str *text.String) {
	remainingBytes := -1
	if position, size := s.Position(), s.Size(); position >= 0 && size > 0 {
		remainingBytes = int(max(size-position, 0))
	}

	if remainingBytes != -1 {
		if str.Length() > text.MaxLength-remainingBytes {
			remainingBytes = text.MaxLength - str.Length()
			str.Pollute() // Overflow, the data will be partially read.
			if remainingBytes <= 0 {
				return
			}
		}
		readStringChunk(s, str, remainingBytes)
		return
	}

	// Buffered read against a source of unknown size.
	const bufferSize = 65536
	for {
		chunkSize := bufferSize
		if str.Length() > text.MaxLength-chunkSize {
			chunkSize = text.MaxLength - str.Length()
			if chunkSize <= 0 {
				str.Pollute() // Overflow.
				return
			}
		}
		if !readStringChunk(s, str, chunkSize) {
			return
		}
	}
}

// readStringChunk reads up to size bytes and appends them to string.
// Reports whether a full chunk was consumed and more data may follow.
func readStringChunk(s Stream, str *text.String, size int) bool {
	chunk := make([]byte, size)
	bytesRead := s.Read(chunk)
	if bytesRead < 0 {
		s.Pollute()
		return false
	}
	if bytesRead > 0 {
		str.Append(text.FromRawBytes(chunk[:bytesRead]))
	}
	return bytesRead == size && str.Valid()
}

// WriteString writes the contents of string to the stream. Writing a
// polluted string pollutes the stream.
func WriteString(s Stream, str *text.String) {
	if !str.Valid() {
		s.Pollute()
	}
	if str.Length() > 0 {
		WriteBuffer(s, str.Data())
	}
}

// ReadUint8 reads a single byte, returning zero and polluting the stream on
// a short read.
func ReadUint8(s Stream) uint8 {
	var scratch [1]byte
	ReadBuffer(s, scratch[:])
	return scratch[0]
}

// ReadUint16 reads a little-endian 16-bit value.
func ReadUint16(s Stream) uint16 {
	var scratch [2]byte
	ReadBuffer(s, scratch[:])
	return binary.LittleEndian.Uint16(scratch[:])
}

// ReadUint32 reads a little-endian 32-bit value.
func ReadUint32(s Stream) uint32 {
	var scratch [4]byte
	ReadBuffer(s, scratch[:])
	return binary.LittleEndian.Uint32(scratch[:])
}

// ReadUint64 reads a little-endian 64-bit value.
func ReadUint64(s Stream) uint64 {
	var scratch [8]byte
	ReadBuffer(s, scratch[:])
	return binary.LittleEndian.Uint64(scratch[:])
}

// WriteUint8 writes a single byte, polluting the stream on a short write.
func WriteUint8(s Stream, value uint8) {
	scratch := [1]byte{value}
	WriteBuffer(s, scratch[:])
}

// WriteUint16 writes a little-endian 16-bit value.
func WriteUint16(s Stream, value uint16) {
	var scratch [2]byte
	binary.LittleEndian.PutUint16(scratch[:], value)
	WriteBuffer(s, scratch[:])
}

// WriteUint32 writes a little-endian 32-bit value.
func WriteUint32(s Stream, value uint32) {
	var scratch [4]byte
	binary.LittleEndian.PutUint32(scratch[:], value)
	WriteBuffer(s, scratch[:])
}

// WriteUint64 writes a little-endian 64-bit value.
func WriteUint64(s Stream, value uint64) {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], value)
	WriteBuffer(s, scratch[:])
}
