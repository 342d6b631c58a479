package stream

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/parhelia512/tinytrl/text"
)

// FileMode holds one or more file mode and share flags ORed together.
type FileMode uint32

// File mode and sharing flags.
const (
	// ModeRead opens the file for reading.
	ModeRead FileMode = 0x01

	// ModeWrite opens the file for writing, creating it when missing.
	ModeWrite FileMode = 0x02

	// ModeTruncate truncates the file if it already exists.
	ModeTruncate FileMode = 0x04

	// ShareDenyRead prevents other processes reading from the file.
	ShareDenyRead FileMode = 0x10

	// ShareDenyWrite prevents other processes writing to the file.
	ShareDenyWrite FileMode = 0x20

	// ShareDenyDelete prevents other processes deleting or renaming the
	// file. Not supported on POSIX systems; opening fails.
	ShareDenyDelete FileMode = 0x40

	// ModeCreate opens the file for read/write, truncating an existing one.
	ModeCreate = ModeRead | ModeWrite | ModeTruncate

	// ModeAppend opens the file for read/write, keeping existing contents.
	ModeAppend = ModeRead | ModeWrite

	// ShareExclusive prevents other processes accessing the file.
	ShareExclusive = ShareDenyRead | ShareDenyWrite
)

// FileStream provides stream access to a file. Share-deny flags are mapped
// to advisory record locks where the platform supports them, so they only
// constrain processes that take part in the same locking discipline.
type FileStream struct {
	state
	file *os.File
}

// OpenFile opens fileName with the given mode flags and default permissions
// and wraps it in a file stream. The returned stream is never nil; a failed
// open leaves it without a valid handle, which Valid reports.
func OpenFile(fileName *text.String, mode FileMode) *FileStream {
	return OpenFileAttr(fileName, mode, 0)
}

// OpenFileAttr opens fileName with the given mode flags and permission bits
// used when the file is created. Zero attributes select the 0666 default.
func OpenFileAttr(fileName *text.String, mode FileMode, attributes os.FileMode) *FileStream {
	stream := &FileStream{}

	if mode&(ModeRead|ModeWrite) == 0 || mode&ShareDenyDelete != 0 {
		return stream
	}
	if !fileName.Valid() || fileName.Empty() {
		return stream
	}

	flags := 0
	if mode&ModeWrite != 0 {
		flags |= os.O_CREATE
		if mode&ModeRead != 0 {
			flags |= os.O_RDWR
		} else {
			flags |= os.O_WRONLY
		}
		if mode&ModeTruncate != 0 {
			flags |= os.O_TRUNC
		}
	} else {
		flags |= os.O_RDONLY
	}
	if attributes == 0 {
		attributes = 0o666
	}

	file, err := os.OpenFile(fileName.String(), flags, attributes)
	if err != nil {
		return stream
	}
	if mode&ShareExclusive != 0 && !lockFile(file, mode) {
		file.Close()
		return stream
	}
	stream.file = file
	return stream
}

// Valid reports whether the stream holds an open file and has not been
// polluted.
func (f *FileStream) Valid() bool {
	return f.file != nil && f.state.Valid()
}

// Handle returns the underlying file, or nil when the open failed or the
// stream has been closed.
func (f *FileStream) Handle() *os.File {
	return f.file
}

// Close releases the file handle. Subsequent operations fail.
func (f *FileStream) Close() {
	if f.file != nil {
		f.file.Close()
		f.file = nil
	}
}

// Read reads up to len(buffer) bytes from the file. Returns the number of
// bytes read, zero at end of file, or Failure.
func (f *FileStream) Read(buffer []byte) int {
	if f.file == nil {
		return Failure
	}
	if len(buffer) == 0 {
		return 0
	}
	bytesRead, err := f.file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return Failure
	}
	return bytesRead
}

// Write writes len(buffer) bytes to the file. Returns the number of bytes
// written, or Failure.
func (f *FileStream) Write(buffer []byte) int {
	if f.file == nil {
		return Failure
	}
	if len(buffer) == 0 {
		return 0
	}
	bytesWritten, err := f.file.Write(buffer)
	if err != nil && bytesWritten == 0 {
		return Failure
	}
	return bytesWritten
}

// Seek adjusts the file position relative to origin and returns the new
// position, or Failure.
func (f *FileStream) Seek(offset int64, origin SeekOrigin) int64 {
	if f.file == nil {
		return Failure
	}
	whence := io.SeekStart
	switch origin {
	case Current:
		whence = io.SeekCurrent
	case End:
		whence = io.SeekEnd
	}
	position, err := f.file.Seek(offset, whence)
	if err != nil {
		return Failure
	}
	return position
}

// Truncate cuts the file at the current position.
func (f *FileStream) Truncate() bool {
	if f.file == nil {
		return false
	}
	position := f.Position()
	if position < 0 {
		return false
	}
	return f.file.Truncate(position) == nil
}

// Flush forces buffered file data to permanent storage.
func (f *FileStream) Flush() bool {
	if f.file == nil {
		return false
	}
	return syncFile(f.file)
}

// Position returns the current position from the beginning of the file.
func (f *FileStream) Position() int64 {
	return f.Seek(0, Current)
}

// Size returns the size of the file, or Failure.
func (f *FileStream) Size() int64 {
	if f.file == nil {
		return Failure
	}
	info, err := f.file.Stat()
	if err != nil {
		return Failure
	}
	return info.Size()
}

// Copy transfers size bytes from source into the file. A size of zero copies
// the whole remainder of source.
func (f *FileStream) Copy(source Stream, size int64, blockSize int) int64 {
	return copyStream(f, source, size, blockSize)
}

// LoadString loads the contents of the given file into a string. The result
// is polluted when the file cannot be opened or fully read. UTF-8 text files
// may start with a BOM marker (0xEF, 0xBB, 0xBF) which is kept verbatim.
func LoadString(fileName *text.String) text.String {
	var contents text.String

	file := OpenFile(fileName, ModeRead|ShareDenyWrite)
	defer file.Close()
	if !file.Valid() {
		contents.Pollute()
		return contents
	}

	if size := file.Size(); size > 0 {
		// Preallocate the string to avoid multiple allocations.
		if size > int64(text.MaxLength) {
			size = int64(text.MaxLength)
		}
		if !contents.SetCapacity(int(size)) {
			contents.Pollute()
		}
	}
	ReadString(file, &contents)
	if !file.Valid() {
		contents.Pollute()
	}
	return contents
}

// SaveString saves the contents of the given string into a file, replacing
// any existing file.
func SaveString(fileName, contents *text.String) bool {
	file := OpenFile(fileName, ModeCreate|ShareExclusive)
	defer file.Close()
	if !file.Valid() {
		return false
	}
	WriteString(file, contents)
	return file.Valid()
}

// FileExists tests whether the given regular file exists.
func FileExists(fileName *text.String) bool {
	if !fileName.Valid() || fileName.Empty() {
		return false
	}
	info, err := os.Stat(fileName.String())
	return err == nil && info.Mode().IsRegular()
}

// DirectoryExists tests whether the given directory exists.
func DirectoryExists(directoryName *text.String) bool {
	if !directoryName.Valid() || directoryName.Empty() {
		return false
	}
	info, err := os.Stat(directoryName.String())
	return err == nil && info.IsDir()
}

// CreateDirectory creates the given directory, including missing parents.
// Returns true when the directory exists afterwards.
func CreateDirectory(directoryName *text.String) bool {
	if !directoryName.Valid() || directoryName.Empty() {
		return false
	}

	err := os.Mkdir(directoryName.String(), 0o775)
	switch {
	case err == nil:
		return true

	case errors.Is(err, fs.ErrNotExist):
		// Parent does not exist, try to create it first.
		separator := text.FindCharLast(*directoryName, text.PathDelimiter, 0, 0)
		if separator == text.NotFound {
			return false
		}
		parent := directoryName.Substr(0, separator)
		if !CreateDirectory(&parent) {
			return false
		}
		return os.Mkdir(directoryName.String(), 0o775) == nil

	case errors.Is(err, fs.ErrExist):
		return DirectoryExists(directoryName) // Make sure it is really a directory.

	default:
		return false
	}
}
