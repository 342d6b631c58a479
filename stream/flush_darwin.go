//go:build darwin

package stream

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to permanent storage.
//
// macOS doesn't have fdatasync, so use fsync.
func syncFile(file *os.File) bool {
	return unix.Fsync(int(file.Fd())) == nil
}
