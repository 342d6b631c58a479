package text

import "bytes"

// UpperChar converts an ASCII character to upper case; other byte values
// pass through unchanged.
func UpperChar(charCode byte) byte {
	if charCode >= 'a' && charCode <= 'z' {
		return charCode - 32
	}
	return charCode
}

// LowerChar converts an ASCII character to lower case; other byte values
// pass through unchanged.
func LowerChar(charCode byte) byte {
	if charCode >= 'A' && charCode <= 'Z' {
		return charCode + 32
	}
	return charCode
}

// CompareStr compares two strings lexicographically by byte value. A
// positive length compares at most that many characters of each side.
// Returns a negative, zero or positive value in the usual three-way
// convention.
func CompareStr(left, right String, length int) int {
	leftData, rightData := left.Data(), right.Data()
	if length > 0 {
		leftData = leftData[:min(len(leftData), length)]
		rightData = rightData[:min(len(rightData), length)]
	}
	common := min(len(leftData), len(rightData))
	if comparison := bytes.Compare(leftData[:common], rightData[:common]); comparison != 0 {
		return comparison
	}
	return len(leftData) - len(rightData)
}

// SameStr reports whether two strings are equal, optionally limited to
// the first length characters.
func SameStr(left, right String, length int) bool {
	return CompareStr(left, right, length) == 0
}

// CompareText compares two strings lexicographically ignoring ASCII
// case. A positive length compares at most that many characters.
func CompareText(left, right String, length int) int {
	return compareTextBytes(left.Data(), right.Data(), length)
}

// SameText reports whether two strings are equal ignoring ASCII case,
// optionally limited to the first length characters.
func SameText(left, right String, length int) bool {
	return CompareText(left, right, length) == 0
}

func compareTextBytes(left, right []byte, length int) int {
	lengthLeft, lengthRight := len(left), len(right)
	if length > 0 {
		lengthLeft = min(lengthLeft, length)
		lengthRight = min(lengthRight, length)
	}
	for i := range min(lengthLeft, lengthRight) {
		codeLeft, codeRight := left[i], right[i]
		if codeLeft != codeRight {
			codeLeft = UpperChar(codeLeft)
			codeRight = UpperChar(codeRight)
			if codeLeft != codeRight {
				return int(codeLeft) - int(codeRight)
			}
		}
	}
	return lengthLeft - lengthRight
}

// clampFindRange normalizes the position/length window that the search
// functions accept: zero length means everything to the end, a negative
// position consumes part of the length, and overshoot is clamped.
func clampFindRange(stringLength, position, length int) (int, int) {
	if length == 0 {
		length = stringLength
	}
	if position < 0 {
		length += position
		position = 0
	}
	if position+length > stringLength {
		length = max(stringLength-position, 0)
		position = min(position, stringLength)
	}
	return position, max(length, 0)
}

// FindStr searches for the first occurrence of match within the window
// of string selected by position and length (zero length meaning the
// rest). Returns the index or NotFound.
func FindStr(s, match String, position, length int) int {
	position, length = clampFindRange(s.length, position, length)
	matchLength := match.length
	if length == 0 || matchLength == 0 {
		return NotFound
	}
	stringData, matchData := s.Data(), match.Data()
	for i := position; i <= position+length-matchLength; i++ {
		if bytes.Equal(stringData[i:i+matchLength], matchData) {
			return i
		}
	}
	return NotFound
}

// FindStrLast searches for the last non-overlapping occurrence of match
// within the window. Returns the index or NotFound.
func FindStrLast(s, match String, position, length int) int {
	position, length = clampFindRange(s.length, position, length)
	matchLength := match.length
	index := NotFound
	if length == 0 || matchLength == 0 {
		return index
	}
	stringData, matchData := s.Data(), match.Data()
	for i := position; i <= position+length-matchLength; i++ {
		if bytes.Equal(stringData[i:i+matchLength], matchData) {
			index = i
			i += matchLength - 1
		}
	}
	return index
}

// FindText searches like FindStr but ignores ASCII case.
func FindText(s, match String, position, length int) int {
	position, length = clampFindRange(s.length, position, length)
	matchLength := match.length
	if length == 0 || matchLength == 0 {
		return NotFound
	}
	stringData, matchData := s.Data(), match.Data()
	for i := position; i <= position+length-matchLength; i++ {
		if compareTextBytes(stringData[i:i+matchLength], matchData, 0) == 0 {
			return i
		}
	}
	return NotFound
}

// FindTextLast searches like FindStrLast but ignores ASCII case.
func FindTextLast(s, match String, position, length int) int {
	position, length = clampFindRange(s.length, position, length)
	matchLength := match.length
	index := NotFound
	if length == 0 || matchLength == 0 {
		return index
	}
	stringData, matchData := s.Data(), match.Data()
	for i := position; i <= position+length-matchLength; i++ {
		if compareTextBytes(stringData[i:i+matchLength], matchData, 0) == 0 {
			index = i
			i += matchLength - 1
		}
	}
	return index
}

// FindChar searches for the first occurrence of a character within the
// window. Returns the index or NotFound.
func FindChar(s String, charCode byte, position, length int) int {
	position, length = clampFindRange(s.length, position, length)
	if i := bytes.IndexByte(s.Data()[position:position+length], charCode); i != NotFound {
		return position + i
	}
	return NotFound
}

// FindCharLast searches for the last occurrence of a character within
// the window. Returns the index or NotFound.
func FindCharLast(s String, charCode byte, position, length int) int {
	position, length = clampFindRange(s.length, position, length)
	if i := bytes.LastIndexByte(s.Data()[position:position+length], charCode); i != NotFound {
		return position + i
	}
	return NotFound
}

// ContainsStr reports whether the window of string contains match.
func ContainsStr(s, match String, position, length int) bool {
	return FindStr(s, match, position, length) != NotFound
}

// ContainsText reports whether the window contains match ignoring ASCII
// case.
func ContainsText(s, match String, position, length int) bool {
	return FindText(s, match, position, length) != NotFound
}

// StartsWith reports whether string has match at position. An empty
// match never matches.
func StartsWith(s, match String, position int) bool {
	position = max(position, 0)
	matchLength := match.length
	if matchLength == 0 || position+matchLength > s.length {
		return false
	}
	return bytes.Equal(s.Data()[position:position+matchLength], match.Data())
}

// StartsWithText is StartsWith ignoring ASCII case.
func StartsWithText(s, match String, position int) bool {
	position = max(position, 0)
	matchLength := match.length
	if matchLength == 0 || position+matchLength > s.length {
		return false
	}
	return compareTextBytes(s.Data()[position:position+matchLength], match.Data(), 0) == 0
}

// EndsWith reports whether string ends with match. An empty match never
// matches.
func EndsWith(s, match String) bool {
	matchLength := match.length
	if matchLength == 0 || matchLength > s.length {
		return false
	}
	return bytes.Equal(s.Data()[s.length-matchLength:], match.Data())
}

// EndsWithText is EndsWith ignoring ASCII case.
func EndsWithText(s, match String) bool {
	matchLength := match.length
	if matchLength == 0 || matchLength > s.length {
		return false
	}
	return compareTextBytes(s.Data()[s.length-matchLength:], match.Data(), 0) == 0
}

// UpperCase returns a copy of string with ASCII letters upper-cased.
// Poison propagates to the result.
func UpperCase(s String) String {
	res := s.Clone()
	content := res.Data()
	for i, code := range content {
		content[i] = UpperChar(code)
	}
	return res
}

// LowerCase returns a copy of string with ASCII letters lower-cased.
// Poison propagates to the result.
func LowerCase(s String) String {
	res := s.Clone()
	content := res.Data()
	for i, code := range content {
		content[i] = LowerChar(code)
	}
	return res
}
