// Package stream provides byte stream input/output with the library's
// sticky validity protocol instead of error returns.
//
// # Overview
//
// A Stream exposes positioned reads, writes, seeking, truncation and
// block-wise copying. Primitive operations report byte counts, with Failure
// (-1) standing in for an unrecoverable error. The buffered helpers
// (ReadBuffer, WriteBuffer, the integer codecs and the string transfers)
// instead commit to an all-or-nothing contract: a short transfer zero-fills
// the remainder and sets a sticky error bit on the stream, exactly the
// poison protocol the text and container packages use. Once set, the bit
// persists until the stream is cleared or closed, so a pipeline of reads can
// be validated with a single check at the end:
//
//	var header [16]byte
//	stream.ReadBuffer(s, header[:])
//	count := stream.ReadUint32(s)
//	if !s.Valid() {
//	    // One or more reads came up short; header and count hold zeros
//	    // for the missing bytes.
//	}
//
// # Implementations
//
//   - FileStream: wraps an operating system file. Mode flags select
//     read/write/truncate behavior; share-deny flags map to POSIX advisory
//     locks on platforms that have them.
//   - MemoryStream: keeps data in a growable in-memory buffer, using the
//     same capacity growth policy as the containers and an injectable
//     allocator.
//
// The package also carries small file utilities (LoadString, SaveString,
// FileExists, DirectoryExists, CreateDirectory) built on FileStream.
//
// Streams are not safe for concurrent use.
package stream
