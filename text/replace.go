package text

// SearchReplaceChar replaces the first occurrence of a character with
// another, unwrapping the string first. Returns s for chaining.
func SearchReplaceChar(s *String, match, replacement byte) *String {
	s.Unwrap()
	content := s.Data()
	for i, code := range content {
		if code == match {
			content[i] = replacement
			break
		}
	}
	return s
}

// SearchReplaceAllChars replaces every occurrence of a character with
// another, unwrapping the string first. Returns s for chaining.
func SearchReplaceAllChars(s *String, match, replacement byte) *String {
	s.Unwrap()
	content := s.Data()
	for i, code := range content {
		if code == match {
			content[i] = replacement
		}
	}
	return s
}

// SearchReplace replaces the first occurrence of match with replacement.
// Poison from either operand propagates to s. Returns s for chaining.
func SearchReplace(s *String, match, replacement String) *String {
	if matchLength := match.length; matchLength > 0 {
		if position := FindStr(*s, match, 0, 0); position != NotFound {
			s.Replace(replacement, position, matchLength, 0, replacement.length)
		}
	}
	if match.poisoned {
		s.Pollute()
	}
	return s
}

// SearchReplaceAll replaces every occurrence of match with replacement,
// scanning left to right and never rescanning replaced content. Returns
// s for chaining.
func SearchReplaceAll(s *String, match, replacement String) *String {
	if matchLength := match.length; matchLength > 0 {
		replacementLength := replacement.length
		for position := 0; ; position += replacementLength {
			if position = FindStr(*s, match, position, 0); position == NotFound {
				break
			}
			s.Replace(replacement, position, matchLength, 0, replacementLength)
			if !s.Valid() {
				break
			}
		}
	}
	if match.poisoned {
		s.Pollute()
	}
	return s
}

// SearchReplaceText replaces the first occurrence of match ignoring
// ASCII case. Returns s for chaining.
func SearchReplaceText(s *String, match, replacement String) *String {
	if matchLength := match.length; matchLength > 0 {
		if position := FindText(*s, match, 0, 0); position != NotFound {
			s.Replace(replacement, position, matchLength, 0, replacement.length)
		}
	}
	if match.poisoned {
		s.Pollute()
	}
	return s
}

// SearchReplaceTextAll replaces every occurrence of match ignoring ASCII
// case. Returns s for chaining.
func SearchReplaceTextAll(s *String, match, replacement String) *String {
	if matchLength := match.length; matchLength > 0 {
		replacementLength := replacement.length
		for position := 0; ; position += replacementLength {
			if position = FindText(*s, match, position, 0); position == NotFound {
				break
			}
			s.Replace(replacement, position, matchLength, 0, replacementLength)
			if !s.Valid() {
				break
			}
		}
	}
	if match.poisoned {
		s.Pollute()
	}
	return s
}

// SearchEraseAll removes every occurrence of match. Returns s for
// chaining.
func SearchEraseAll(s *String, match String) *String {
	if matchLength := match.length; matchLength > 0 {
		for position := 0; ; {
			if position = FindStr(*s, match, position, 0); position == NotFound {
				break
			}
			s.Erase(position, matchLength)
		}
	}
	if match.poisoned {
		s.Pollute()
	}
	return s
}
