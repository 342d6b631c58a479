//go:build !linux && !freebsd && !darwin

package stream

import "os"

// syncFile flushes file data to permanent storage.
func syncFile(file *os.File) bool {
	return file.Sync() == nil
}
