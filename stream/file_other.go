//go:build !unix

package stream

import "os"

// lockFile is a no-op on platforms without POSIX advisory locks; share-deny
// flags are accepted but not enforced.
func lockFile(*os.File, FileMode) bool {
	return true
}
