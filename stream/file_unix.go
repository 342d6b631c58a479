//go:build unix

package stream

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// lockFile places a POSIX advisory record lock over the whole file according
// to the share-deny flags. Filesystems that do not support locking are
// treated as unlocked rather than failing the open.
func lockFile(file *os.File, mode FileMode) bool {
	lock := unix.Flock_t{
		Type:   unix.F_RDLCK,
		Whence: unix.SEEK_SET,
	}
	if mode&ShareDenyRead != 0 {
		lock.Type = unix.F_WRLCK
	}

	err := unix.FcntlFlock(file.Fd(), unix.F_SETLK, &lock)
	if err == nil || errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOTSUP) {
		return true
	}
	return false
}
