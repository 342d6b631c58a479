//go:build windows

package text

const (
	// PathDelimiter is the native path separator.
	PathDelimiter = '\\'

	// EndLine is the native line break sequence.
	EndLine = "\r\n"

	wrongPathDelimiter = '/'
)

// fileNameStart returns the index where the file name component begins.
// A drive prefix without a separator still counts as path.
func fileNameStart(filePath String) int {
	pos := FindCharLast(filePath, PathDelimiter, 0, 0)
	if pos == NotFound {
		pos = FindCharLast(filePath, ':', 0, 0)
	}
	if pos != NotFound {
		return pos + 1
	}
	return 0
}
