package stream

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parhelia512/tinytrl/text"
)

func tempFileName(t *testing.T, name string) text.String {
	t.Helper()
	return text.New(filepath.Join(t.TempDir(), name))
}

func TestFileStream_CreateWriteRead(t *testing.T) {
	fileName := tempFileName(t, "data.bin")

	file := OpenFile(&fileName, ModeCreate)
	require.True(t, file.Valid())
	require.Equal(t, 5, file.Write([]byte("hello")))
	assert.Equal(t, int64(5), file.Size())
	file.Close()

	file = OpenFile(&fileName, ModeRead)
	require.True(t, file.Valid())
	defer file.Close()

	buffer := make([]byte, 5)
	require.Equal(t, 5, file.Read(buffer))
	assert.Equal(t, []byte("hello"), buffer)
	assert.Equal(t, 0, file.Read(buffer), "read at end of file returns zero")
}

func TestFileStream_OpenMissing(t *testing.T) {
	fileName := tempFileName(t, "missing.bin")
	file := OpenFile(&fileName, ModeRead)
	defer file.Close()

	assert.False(t, file.Valid())
	assert.Equal(t, Failure, file.Read(make([]byte, 1)))
	assert.Equal(t, Failure, file.Write([]byte("x")))
	assert.Equal(t, int64(Failure), file.Seek(0, Beginning))
	assert.Equal(t, int64(Failure), file.Size())
}

func TestFileStream_RejectedModes(t *testing.T) {
	fileName := tempFileName(t, "rejected.bin")

	file := OpenFile(&fileName, ShareDenyWrite)
	assert.False(t, file.Valid(), "neither read nor write requested")

	file = OpenFile(&fileName, ModeCreate|ShareDenyDelete)
	assert.False(t, file.Valid(), "deny-delete is not supported")

	bad := text.Invalid()
	file = OpenFile(&bad, ModeCreate)
	assert.False(t, file.Valid(), "polluted file name")
}

func TestFileStream_SeekAndPosition(t *testing.T) {
	fileName := tempFileName(t, "seek.bin")
	file := OpenFile(&fileName, ModeCreate)
	require.True(t, file.Valid())
	defer file.Close()

	file.Write([]byte("0123456789"))
	assert.Equal(t, int64(3), file.Seek(3, Beginning))
	assert.Equal(t, int64(5), file.Seek(2, Current))
	assert.Equal(t, int64(8), file.Seek(-2, End))
	assert.Equal(t, int64(8), file.Position())

	buffer := make([]byte, 2)
	require.Equal(t, 2, file.Read(buffer))
	assert.Equal(t, []byte("89"), buffer)
}

func TestFileStream_Truncate(t *testing.T) {
	fileName := tempFileName(t, "trunc.bin")
	file := OpenFile(&fileName, ModeCreate)
	require.True(t, file.Valid())
	defer file.Close()

	file.Write([]byte("0123456789"))
	file.Seek(4, Beginning)
	require.True(t, file.Truncate())
	assert.Equal(t, int64(4), file.Size())
}

func TestFileStream_Append(t *testing.T) {
	fileName := tempFileName(t, "append.bin")

	file := OpenFile(&fileName, ModeCreate)
	require.True(t, file.Valid())
	file.Write([]byte("head"))
	file.Close()

	// Append mode keeps existing contents.
	file = OpenFile(&fileName, ModeAppend)
	require.True(t, file.Valid())
	file.Seek(0, End)
	file.Write([]byte("tail"))
	require.True(t, file.Flush())
	file.Close()

	loaded := LoadString(&fileName)
	require.True(t, loaded.Valid())
	assert.Equal(t, "headtail", loaded.String())
}

func TestFileStream_ShareExclusive(t *testing.T) {
	fileName := tempFileName(t, "locked.bin")
	file := OpenFile(&fileName, ModeCreate|ShareExclusive)
	require.True(t, file.Valid())
	defer file.Close()

	file.Write([]byte("guarded"))
	assert.True(t, file.Valid())
}

func TestFileStream_CopyFromMemory(t *testing.T) {
	fileName := tempFileName(t, "copy.bin")
	file := OpenFile(&fileName, ModeCreate)
	require.True(t, file.Valid())
	defer file.Close()

	source := NewMemoryStream()
	source.Write([]byte("stream contents"))
	source.Seek(0, Beginning)

	require.Equal(t, int64(15), file.Copy(source, 0, 4))
	require.True(t, file.Valid())

	file.Seek(0, Beginning)
	var contents text.String
	ReadString(file, &contents)
	assert.Equal(t, "stream contents", contents.String())
}

func TestLoadSaveString(t *testing.T) {
	fileName := tempFileName(t, "note.txt")
	contents := text.New("line one\nline two\n")

	require.True(t, SaveString(&fileName, &contents))
	loaded := LoadString(&fileName)
	require.True(t, loaded.Valid())
	assert.Equal(t, contents.String(), loaded.String())

	// Saving again replaces the previous contents.
	replacement := text.New("short")
	require.True(t, SaveString(&fileName, &replacement))
	loaded = LoadString(&fileName)
	assert.Equal(t, "short", loaded.String())
}

func TestLoadString_Missing(t *testing.T) {
	fileName := tempFileName(t, "absent.txt")
	loaded := LoadString(&fileName)
	assert.False(t, loaded.Valid())
	assert.True(t, loaded.Empty())
}

func TestSaveString_PollutedContents(t *testing.T) {
	fileName := tempFileName(t, "bad.txt")
	contents := text.Invalid()
	assert.False(t, SaveString(&fileName, &contents))
}

func TestFileExists(t *testing.T) {
	fileName := tempFileName(t, "exists.txt")
	assert.False(t, FileExists(&fileName))

	contents := text.New("x")
	require.True(t, SaveString(&fileName, &contents))
	assert.True(t, FileExists(&fileName))

	directory := text.New(filepath.Dir(fileName.String()))
	assert.False(t, FileExists(&directory), "directories are not regular files")
	assert.True(t, DirectoryExists(&directory))
	assert.False(t, DirectoryExists(&fileName))
}

func TestCreateDirectory(t *testing.T) {
	base := t.TempDir()

	nested := text.New(filepath.Join(base, "a", "b", "c"))
	require.True(t, CreateDirectory(&nested), "missing parents are created")
	assert.True(t, DirectoryExists(&nested))

	assert.True(t, CreateDirectory(&nested), "existing directory is accepted")

	fileName := text.New(filepath.Join(base, "file.txt"))
	contents := text.New("x")
	require.True(t, SaveString(&fileName, &contents))
	assert.False(t, CreateDirectory(&fileName), "existing file is not a directory")

	var empty text.String
	assert.False(t, CreateDirectory(&empty))
}
