package text

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// ParseInt parses the string as a 64-bit integer. A base of 0 infers the
// base from a 0x/0o/0b prefix. Surrounding ASCII whitespace is ignored.
func ParseInt(s String, base int) (int64, bool) {
	value, err := strconv.ParseInt(strings.TrimSpace(s.String()), base, 64)
	return value, err == nil
}

// ParseIntDef parses the string as a 64-bit integer, returning
// defaultValue when the string does not parse.
func ParseIntDef(s String, defaultValue int64, base int) int64 {
	if value, ok := ParseInt(s, base); ok {
		return value
	}
	return defaultValue
}

// FormatInt renders a 64-bit integer in the given base (2 to 36). An
// unsupported base yields an empty poisoned string.
func FormatInt(value int64, base int) String {
	if base < 2 || base > 36 {
		return Invalid()
	}
	return New(strconv.FormatInt(value, base))
}

// ParseFloat parses the string as a 32-bit floating-point number.
func ParseFloat(s String) (float32, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s.String()), 32)
	return float32(value), err == nil
}

// ParseFloatDef parses the string as a 32-bit floating-point number,
// returning defaultValue when the string does not parse.
func ParseFloatDef(s String, defaultValue float32) float32 {
	if value, ok := ParseFloat(s); ok {
		return value
	}
	return defaultValue
}

// FormatFloat renders a 32-bit floating-point number in the shortest
// form that round-trips.
func FormatFloat(value float32) String {
	return New(strconv.FormatFloat(float64(value), 'g', -1, 32))
}

// ParseDouble parses the string as a 64-bit floating-point number.
func ParseDouble(s String) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s.String()), 64)
	return value, err == nil
}

// ParseDoubleDef parses the string as a 64-bit floating-point number,
// returning defaultValue when the string does not parse.
func ParseDoubleDef(s String, defaultValue float64) float64 {
	if value, ok := ParseDouble(s); ok {
		return value
	}
	return defaultValue
}

// FormatDouble renders a 64-bit floating-point number in the shortest
// form that round-trips.
func FormatDouble(value float64) String {
	return New(strconv.FormatFloat(value, 'g', -1, 64))
}

// FromWide creates a UTF-8 string from a UTF-16 one. Unpaired surrogates
// convert to U+FFFD and poison the result; poison from the source
// propagates as well.
func FromWide(wide WideString) String {
	content, valid := utf16ToUTF8(wide.Data())
	res := FromRawBytes(content)
	if !valid || wide.poisoned {
		res.Pollute()
	}
	return res
}

// Wide converts the string to UTF-16. Invalid UTF-8 sequences convert to
// U+FFFD and poison the result; poison from the source propagates as
// well.
func (s *String) Wide() WideString {
	units, valid := utf8ToUTF16(s.Data())
	var res WideString
	if res.SetLength(len(units)) {
		copy(res.chars, units)
	}
	if !valid || s.poisoned {
		res.Pollute()
	}
	return res
}

// FromUTF16LE creates a UTF-8 string from a little-endian UTF-16 byte
// stream, as read from Windows-originated files. A byte-order mark is
// consumed if present; a decode failure yields a poisoned string.
func FromUTF16LE(data []byte) String {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	decoded, err := decoder.Bytes(stripUTF16LEBOM(data))
	if err != nil {
		return Invalid()
	}
	return FromRawBytes(decoded)
}

// UTF16LE renders the string as a little-endian UTF-16 byte stream
// without a byte-order mark. Returns nil and false on encode failure.
func UTF16LE(s String) ([]byte, bool) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	encoded, err := encoder.Bytes(s.Data())
	if err != nil {
		return nil, false
	}
	return encoded, true
}

func stripUTF16LEBOM(data []byte) []byte {
	if len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE {
		return data[2:]
	}
	return data
}

// utf8ToUTF16 transcodes with validation: the conversion always
// completes, but the second result is false when any invalid sequence
// was replaced.
func utf8ToUTF16(content []byte) ([]uint16, bool) {
	units := make([]uint16, 0, len(content))
	valid := true
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size <= 1 {
			valid = false
		}
		units = utf16.AppendRune(units, r)
		i += size
	}
	return units, valid
}

// utf16ToUTF8 transcodes with validation of surrogate pairing.
func utf16ToUTF8(units []uint16) ([]byte, bool) {
	content := make([]byte, 0, len(units)*3)
	valid := true
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 < len(units) {
				if next := rune(units[i+1]); next >= 0xDC00 && next < 0xE000 {
					content = utf8.AppendRune(content, utf16.DecodeRune(u, next))
					i++
					continue
				}
			}
			valid = false
			content = utf8.AppendRune(content, utf8.RuneError)
		case u >= 0xDC00 && u < 0xE000:
			valid = false
			content = utf8.AppendRune(content, utf8.RuneError)
		default:
			content = utf8.AppendRune(content, u)
		}
	}
	return content, valid
}
