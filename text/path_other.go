//go:build !windows

package text

const (
	// PathDelimiter is the native path separator.
	PathDelimiter = '/'

	// EndLine is the native line break sequence.
	EndLine = "\n"

	wrongPathDelimiter = '\\'
)

// fileNameStart returns the index where the file name component begins.
func fileNameStart(filePath String) int {
	if pos := FindCharLast(filePath, PathDelimiter, 0, 0); pos != NotFound {
		return pos + 1
	}
	return 0
}
