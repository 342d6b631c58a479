//go:build linux || freebsd

package stream

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to permanent storage.
//
// On Linux and FreeBSD, fdatasync() provides sufficient guarantees without
// forcing a metadata sync.
func syncFile(file *os.File) bool {
	return unix.Fdatasync(int(file.Fd())) == nil
}
