package text

import "github.com/parhelia512/tinytrl/mathx"

// Append appends suffix to the string. A poisoned suffix poisons the
// result; content past MaxLength is truncated and poisons the string.
func (s *String) Append(suffix String) *String {
	if !s.internalAppend(suffix.Data()) || suffix.poisoned {
		s.Pollute()
	}
	return s
}

// AppendString appends a Go string.
func (s *String) AppendString(suffix string) *String {
	if !s.internalAppend([]byte(suffix)) {
		s.Pollute()
	}
	return s
}

// AppendByte appends a single character.
func (s *String) AppendByte(suffix byte) *String {
	if s.length >= MaxLength {
		return s.Pollute()
	}
	s.ensure(s.length + 1)
	s.buffer()[s.length] = suffix
	s.writeLength(s.length + 1)
	return s
}

// Prepend inserts prefix at the start of the string. A poisoned prefix
// poisons the result.
func (s *String) Prepend(prefix String) *String {
	if !s.internalPrepend(prefix.Data()) || prefix.poisoned {
		s.Pollute()
	}
	return s
}

// PrependString inserts a Go string at the start.
func (s *String) PrependString(prefix string) *String {
	if !s.internalPrepend([]byte(prefix)) {
		s.Pollute()
	}
	return s
}

// PrependByte inserts a single character at the start.
func (s *String) PrependByte(prefix byte) *String {
	if s.length >= MaxLength {
		return s.Pollute()
	}
	s.ensure(s.length + 1)
	content := s.buffer()
	copy(content[1:s.length+1], content[:s.length])
	content[0] = prefix
	s.writeLength(s.length + 1)
	return s
}

// Concat overwrites the string with prefix followed by suffix. Poison
// from either operand propagates.
func (s *String) Concat(prefix, suffix String) *String {
	if !s.internalConcat(prefix.Data(), suffix.Data()) || prefix.poisoned || suffix.poisoned {
		s.Pollute()
	}
	return s
}

// CopyFrom overwrites the string with a range of source: sourceLength
// bytes starting at sourcePosition. A sourceLength of NotFound selects
// everything to the end; ranges are clamped to the source content. When
// the clamped range is empty the string keeps its previous content. A
// poisoned source poisons the result.
func (s *String) CopyFrom(source String, sourcePosition, sourceLength int) *String {
	if !s.internalCopy(source.Data(), sourcePosition, sourceLength) || source.poisoned {
		s.Pollute()
	}
	return s
}

// Substr returns a new string holding a range of this one, with the same
// clamping as CopyFrom. Poison propagates to the result.
func (s *String) Substr(position, length int) String {
	var res String
	if !res.internalCopy(s.Data(), position, length) || s.poisoned {
		res.Pollute()
	}
	return res
}

// Replace substitutes the range [position, position+length) of the string
// with the given range of source. Either length may be NotFound to select
// everything to the end; both ranges are clamped. The string contracts or
// expands as needed. A poisoned source poisons the result.
func (s *String) Replace(source String, position, length, sourcePosition, sourceLength int) *String {
	if !s.internalReplace(source.Data(), position, length, sourcePosition, sourceLength) || source.poisoned {
		s.Pollute()
	}
	return s
}

// ReplaceAt substitutes everything from position to the end of the string
// with the whole of source.
func (s *String) ReplaceAt(source String, position int) *String {
	return s.Replace(source, position, NotFound, 0, NotFound)
}

// Insert places the whole of source at position, clamped into the string.
// A poisoned source poisons the result.
func (s *String) Insert(source String, position int) *String {
	return s.InsertRange(source, position, 0, source.length)
}

// InsertRange places a clamped range of source at position.
func (s *String) InsertRange(source String, position, sourcePosition, sourceLength int) *String {
	if !s.internalInsert(source.Data(), position, sourcePosition, sourceLength) || source.poisoned {
		s.Pollute()
	}
	return s
}

// InsertByte places a single character at position, clamped into the
// string. Returns false on overflow.
func (s *String) InsertByte(charCode byte, position int) bool {
	if s.length >= MaxLength {
		return false
	}
	position = mathx.Saturate(position, 0, s.length)
	s.ensure(s.length + 1)
	content := s.buffer()
	copy(content[position+1:s.length+1], content[position:s.length])
	content[position] = charCode
	s.writeLength(s.length + 1)
	return true
}

// Erase removes length bytes starting at position. A length of NotFound
// removes everything to the end; a negative position consumes part of the
// length. Out-of-range remainders are clamped, so Erase never fails.
func (s *String) Erase(position, length int) *String {
	if length == NotFound {
		length = s.length
	}
	if length <= 0 {
		return s
	}
	currentLength := s.length
	if position < 0 {
		length += position
		position = 0
	}
	if position+length > currentLength {
		length = max(currentLength-position, 0)
		position = min(position, currentLength)
	}
	if length != 0 {
		s.Unwrap()
		content := s.buffer()
		copy(content[position:], content[position+length:currentLength])
		s.writeLength(currentLength - length)
	}
	return s
}

func (s *String) internalAppend(suffix []byte) bool {
	length, suffixLength := s.length, len(suffix)
	complete := true
	if length > MaxLength-suffixLength {
		suffixLength = MaxLength - length
		complete = false
	}
	if suffixLength > 0 {
		s.ensure(length + suffixLength)
		copy(s.buffer()[length:], suffix[:suffixLength])
		s.writeLength(length + suffixLength)
	}
	return complete
}

func (s *String) internalPrepend(prefix []byte) bool {
	prefixLength := len(prefix)
	if prefixLength == 0 {
		return true
	}
	length := s.length
	complete := true
	if length > MaxLength-prefixLength {
		length = MaxLength - prefixLength
		complete = false
	}
	s.ensure(length + prefixLength)
	content := s.buffer()
	copy(content[prefixLength:length+prefixLength], content[:length])
	copy(content, prefix)
	s.writeLength(length + prefixLength)
	return complete
}

func (s *String) internalConcat(prefix, suffix []byte) bool {
	prefixLength, suffixLength := len(prefix), len(suffix)
	complete := true
	if suffixLength > MaxLength-prefixLength {
		suffixLength = MaxLength - prefixLength
		complete = false
	}
	destLength := prefixLength + suffixLength
	s.ensure(destLength)
	content := s.buffer()
	copy(content, prefix)
	copy(content[prefixLength:], suffix[:suffixLength])
	s.writeLength(destLength)
	return complete
}

func (s *String) internalCopy(source []byte, sourcePosition, sourceLength int) bool {
	actualSourceLength := len(source)
	if sourceLength == NotFound {
		sourceLength = actualSourceLength
	}
	if sourceLength < 0 {
		return false
	}
	if sourcePosition < 0 {
		sourceLength += sourcePosition
		sourcePosition = 0
	}
	if sourcePosition+sourceLength > actualSourceLength {
		sourceLength = max(actualSourceLength-sourcePosition, 0)
	}
	if sourceLength > 0 {
		s.ensure(sourceLength)
		copy(s.buffer(), source[sourcePosition:sourcePosition+sourceLength])
		s.writeLength(sourceLength)
	}
	return true
}

func (s *String) internalReplace(source []byte, position, length, sourcePosition, sourceLength int) bool {
	if length == NotFound {
		length = s.length
	}
	if sourceLength == NotFound {
		sourceLength = len(source)
	}
	length = max(length, 0)
	sourceLength = max(sourceLength, 0)
	if length == 0 && sourceLength == 0 {
		return true
	}

	actualSourceLength := len(source)
	if sourcePosition < 0 {
		sourceLength += sourcePosition
		sourcePosition = 0
	}
	if sourcePosition+sourceLength > actualSourceLength {
		sourceLength = max(actualSourceLength-sourcePosition, 0)
		sourcePosition = min(sourcePosition, actualSourceLength)
	}

	actualLength := s.length
	if position < 0 {
		length += position
		position = 0
	}
	if position+length > actualLength {
		length = max(actualLength-position, 0)
		position = min(position, actualLength)
	}

	lengthDiff := sourceLength - length
	if lengthDiff != 0 || sourceLength != 0 {
		s.Unwrap()
	}
	if lengthDiff != 0 {
		if lengthDiff > 0 {
			if actualLength > MaxLength-lengthDiff {
				return false
			}
			s.ensure(actualLength + lengthDiff)
		}
		content := s.buffer()
		if moveLength := actualLength - (position + length); moveLength > 0 {
			copy(content[position+sourceLength:position+sourceLength+moveLength],
				content[position+length:position+length+moveLength])
		}
	}
	if sourceLength > 0 {
		copy(s.buffer()[position:], source[sourcePosition:sourcePosition+sourceLength])
	}
	if lengthDiff != 0 {
		s.writeLength(actualLength + lengthDiff)
	}
	return true
}

func (s *String) internalInsert(source []byte, position, sourcePosition, sourceLength int) bool {
	if sourceLength == NotFound {
		sourceLength = len(source)
	}
	if sourceLength <= 0 {
		return true
	}
	actualSourceLength := len(source)
	if sourcePosition < 0 {
		sourceLength += sourcePosition
		sourcePosition = 0
	}
	if sourcePosition+sourceLength > actualSourceLength {
		sourceLength = max(actualSourceLength-sourcePosition, 0)
		sourcePosition = min(sourcePosition, actualSourceLength)
	}
	currentLength := s.length
	position = mathx.Saturate(position, 0, currentLength)
	if sourceLength > 0 {
		if currentLength > MaxLength-sourceLength {
			return false
		}
		s.ensure(currentLength + sourceLength)
		content := s.buffer()
		copy(content[position+sourceLength:currentLength+sourceLength], content[position:currentLength])
		copy(content[position:], source[sourcePosition:sourcePosition+sourceLength])
		s.writeLength(currentLength + sourceLength)
	}
	return true
}
