package text

// FixFilePath replaces any occurrence of the wrong platform's path
// delimiter with the native one. Returns the fixed copy.
func FixFilePath(filePath String) String {
	res := filePath.Clone()
	SearchReplaceAllChars(&res, wrongPathDelimiter, PathDelimiter)
	return res
}

// AppendFileSubPath joins a sub-path onto a path, adding a delimiter
// only when the path does not already end with one.
func AppendFileSubPath(filePath, subPath String) String {
	res := filePath.Clone()
	if !res.Empty() && res.Last() != PathDelimiter {
		res.AppendByte(PathDelimiter)
	}
	res.Append(subPath)
	return res
}

// ExtractFileName returns the file name component of a path.
func ExtractFileName(filePath String) String {
	return filePath.Substr(fileNameStart(filePath), NotFound)
}

// ExtractFilePath returns the directory component of a path, trailing
// delimiter included, or an empty string when the path has none.
func ExtractFilePath(filePath String) String {
	if start := fileNameStart(filePath); start > 0 {
		return filePath.Substr(0, start)
	}
	return String{}
}

// ExtractFileExtension returns the extension of the file name, dot
// included, or an empty string when the name has none. A leading dot of
// a hidden file and a trailing dot both count as no extension.
func ExtractFileExtension(filePath String) String {
	start := fileNameStart(filePath)
	dot := FindCharLast(filePath, '.', 0, 0)
	if dot != NotFound && dot > start && dot != filePath.Length()-1 {
		return filePath.Substr(dot, NotFound)
	}
	return String{}
}

// ChangeFileExtension replaces the extension of the file name with a new
// one, which must start with a dot. An empty extension strips the
// current one; a name without an extension gets the new one appended.
func ChangeFileExtension(filePath, extension String) String {
	if filePath.Empty() {
		return filePath
	}
	start := fileNameStart(filePath)
	dot := FindCharLast(filePath, '.', 0, 0)

	res := filePath.Clone()
	if dot != NotFound && dot > start {
		res.ReplaceAt(extension, dot)
	} else {
		res.Append(extension)
	}
	return res
}
