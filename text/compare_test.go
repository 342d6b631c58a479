package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareStr(t *testing.T) {
	assert.Zero(t, CompareStr(New("abc"), New("abc"), 0))
	assert.Negative(t, CompareStr(New("abc"), New("abd"), 0))
	assert.Positive(t, CompareStr(New("abd"), New("abc"), 0))
	assert.Negative(t, CompareStr(New("ab"), New("abc"), 0))
	assert.Positive(t, CompareStr(New("abc"), New("ab"), 0))

	// Limited comparison ignores the tails.
	assert.Zero(t, CompareStr(New("abcX"), New("abcY"), 3))
	assert.True(t, SameStr(New("abcX"), New("abcY"), 3))
	assert.False(t, SameStr(New("abcX"), New("abcY"), 0))
}

func TestCompareText(t *testing.T) {
	assert.Zero(t, CompareText(New("Hello"), New("hELLO"), 0))
	assert.True(t, SameText(New("MiXeD"), New("mixed"), 0))
	assert.False(t, SameText(New("abc"), New("abd"), 0))
	assert.True(t, SameText(New("abcX"), New("ABCY"), 3))

	// Only ASCII letters fold.
	assert.False(t, SameText(New("\xC3\xA9"), New("\xC3\x89"), 0))
}

func TestUpperLowerChar(t *testing.T) {
	assert.Equal(t, byte('A'), UpperChar('a'))
	assert.Equal(t, byte('Z'), UpperChar('z'))
	assert.Equal(t, byte('1'), UpperChar('1'))
	assert.Equal(t, byte('a'), LowerChar('A'))
	assert.Equal(t, byte('~'), LowerChar('~'))
}

func TestFindStr(t *testing.T) {
	s := New("one two three two one")

	assert.Equal(t, 4, FindStr(s, New("two"), 0, 0))
	assert.Equal(t, 14, FindStr(s, New("two"), 5, 0))
	assert.Equal(t, NotFound, FindStr(s, New("four"), 0, 0))
	assert.Equal(t, NotFound, FindStr(s, New(""), 0, 0))

	// A window too small for the match misses.
	assert.Equal(t, NotFound, FindStr(s, New("two"), 0, 5))
	assert.Equal(t, 4, FindStr(s, New("two"), 0, 7))

	// Negative position consumes part of the window.
	assert.Equal(t, 0, FindStr(s, New("one"), -2, 5))
}

func TestFindStrLast(t *testing.T) {
	s := New("one two three two one")
	assert.Equal(t, 14, FindStrLast(s, New("two"), 0, 0))
	assert.Equal(t, 18, FindStrLast(s, New("one"), 0, 0))
	assert.Equal(t, NotFound, FindStrLast(s, New("four"), 0, 0))

	// Non-overlapping scan.
	aa := New("aaaa")
	assert.Equal(t, 2, FindStrLast(aa, New("aa"), 0, 0))
}

func TestFindText(t *testing.T) {
	s := New("Alpha BETA gamma")
	assert.Equal(t, 6, FindText(s, New("beta"), 0, 0))
	assert.Equal(t, 11, FindText(s, New("GAMMA"), 0, 0))
	assert.Equal(t, 0, FindTextLast(s, New("ALPHA"), 0, 0))
	assert.Equal(t, NotFound, FindText(s, New("delta"), 0, 0))
}

func TestFindChar(t *testing.T) {
	s := New("a.b.c")
	assert.Equal(t, 1, FindChar(s, '.', 0, 0))
	assert.Equal(t, 3, FindChar(s, '.', 2, 0))
	assert.Equal(t, 3, FindCharLast(s, '.', 0, 0))
	assert.Equal(t, NotFound, FindChar(s, 'z', 0, 0))
	assert.Equal(t, NotFound, FindChar(s, 'c', 0, 4))
}

// TestFindChar_NegativeLength verifies that an empty search window yields
// NotFound for every find variant instead of panicking.
func TestFindChar_NegativeLength(t *testing.T) {
	s := New("hello")
	assert.Equal(t, NotFound, FindChar(s, 'o', 0, -3))
	assert.Equal(t, NotFound, FindCharLast(s, 'o', 0, -3))
	assert.Equal(t, NotFound, FindStr(s, New("o"), 0, -3))
	assert.Equal(t, NotFound, FindText(s, New("O"), 0, -3))
	assert.Equal(t, NotFound, FindChar(s, 'h', -9, 4), "negative position consuming the whole length")
}

func TestContains(t *testing.T) {
	s := New("needle in a haystack")
	assert.True(t, ContainsStr(s, New("haystack"), 0, 0))
	assert.False(t, ContainsStr(s, New("thread"), 0, 0))
	assert.True(t, ContainsText(s, New("NEEDLE"), 0, 0))
}

func TestStartsEndsWith(t *testing.T) {
	s := New("prefix-body-suffix")

	assert.True(t, StartsWith(s, New("prefix"), 0))
	assert.True(t, StartsWith(s, New("body"), 7))
	assert.False(t, StartsWith(s, New("body"), 0))
	assert.False(t, StartsWith(s, New(""), 0), "empty match never matches")
	assert.True(t, StartsWithText(s, New("PREFIX"), 0))

	assert.True(t, EndsWith(s, New("suffix")))
	assert.False(t, EndsWith(s, New("prefix")))
	assert.True(t, EndsWithText(s, New("SUFFIX")))
	assert.False(t, EndsWith(s, New("")))

	long := New("xy")
	assert.False(t, StartsWith(long, New("xyz"), 0))
	assert.False(t, EndsWith(long, New("wxy")))
}

func TestUpperLowerCase(t *testing.T) {
	assert.Equal(t, "HELLO 123!", UpperCase(New("Hello 123!")).String())
	assert.Equal(t, "hello 123!", LowerCase(New("HELLO 123!")).String())

	tainted := Invalid()
	assert.False(t, UpperCase(tainted).Valid())
}

func TestSearchReplaceChars(t *testing.T) {
	s := New("a-b-c")
	SearchReplaceChar(&s, '-', '+')
	assert.Equal(t, "a+b-c", s.String())

	SearchReplaceAllChars(&s, '-', '+')
	assert.Equal(t, "a+b+c", s.String())
}

func TestSearchReplaceChars_UnwrapsFirst(t *testing.T) {
	buffer := append([]byte("path\\to\\some\\file, long enough to wrap"), 0)
	s := Wrap(buffer)
	assert.True(t, s.Wrapped())

	SearchReplaceAllChars(&s, '\\', '/')
	assert.False(t, s.Wrapped())
	assert.Equal(t, "path/to/some/file, long enough to wrap", s.String())
	assert.Equal(t, byte('\\'), buffer[4], "borrowed buffer untouched")
}

func TestSearchReplace(t *testing.T) {
	s := New("one fish two fish")
	SearchReplace(&s, New("fish"), New("cat"))
	assert.Equal(t, "one cat two fish", s.String())

	SearchReplaceAll(&s, New("cat"), New("dog"))
	SearchReplaceAll(&s, New("fish"), New("dog"))
	assert.Equal(t, "one dog two dog", s.String())
}

func TestSearchReplaceAll_GrowingReplacement(t *testing.T) {
	s := New("aaa")
	SearchReplaceAll(&s, New("a"), New("aa"))
	assert.Equal(t, "aaaaaa", s.String(), "replaced content is not rescanned")
}

func TestSearchReplaceText(t *testing.T) {
	s := New("Foo and FOO and foo")
	SearchReplaceText(&s, New("foo"), New("bar"))
	assert.Equal(t, "bar and FOO and foo", s.String())

	SearchReplaceTextAll(&s, New("FOO"), New("baz"))
	assert.Equal(t, "bar and baz and baz", s.String())
}

func TestSearchEraseAll(t *testing.T) {
	s := New("a--b--c")
	SearchEraseAll(&s, New("--"))
	assert.Equal(t, "abc", s.String())
}

func TestSearchReplace_PoisonedMatch(t *testing.T) {
	s := New("content")
	SearchReplaceAll(&s, Invalid(), New("x"))
	assert.False(t, s.Valid())
	assert.Equal(t, "content", s.String())
}
