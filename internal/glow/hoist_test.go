package glow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoistReplacesLiterals(t *testing.T) {
	testCases := []struct {
		src     string
		hoisted string
		strings []string
	}{
		{`42`, `42`, []string{}},
		{`""`, `"$_STR0"`, []string{""}},
		{`"abc"`, `"$_STR0"`, []string{"abc"}},
		{`"hi\"there"`, `"$_STR0"`, []string{`hi"there`}},
		{`"a\nb"`, `"$_STR0"`, []string{`a\nb`}},
		{`f("x", "y")`, `f("$_STR0", "$_STR1")`, []string{"x", "y"}},
		{`"x" + "x"`, `"$_STR0" + "$_STR0"`, []string{"x"}},
		{`"a, b" + c`, `"$_STR0" + c`, []string{"a, b"}},
		{"func f(): str {\n  \"body\"\n}", "func f(): str {\n  \"$_STR0\"\n}", []string{"body"}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		hoisted, meta, err := Hoist(tc.src)

		assert.NoError(err, tc.src)
		assert.Equal(tc.hoisted, hoisted, tc.src)
		assert.Equal(tc.strings, meta.Strings(), tc.src)
	}
}

func TestHoistDeduplicates(t *testing.T) {
	assert := assert.New(t)

	hoisted, meta, err := Hoist(`g("same", "other", "same")`)
	require.NoError(t, err)

	assert.Equal(`g("$_STR0", "$_STR1", "$_STR0")`, hoisted)
	assert.Equal(2, meta.Len())
	ph, ok := meta.Placeholder("same")
	assert.True(ok)
	assert.Equal("$_STR0", ph)
	_, ok = meta.Placeholder("missing")
	assert.False(ok)
}

func TestHoistTables(t *testing.T) {
	assert := assert.New(t)

	_, meta, err := Hoist(`say("hi\"there", "x")`)
	require.NoError(t, err)

	assert.Equal(map[string]string{
		"$_STR0": `hi"there`,
		"$_STR1": "x",
	}, meta.StringTable())
	assert.Equal(map[string]string{
		`"$_STR0"`: `"hi\"there"`,
		`"$_STR1"`: `"x"`,
	}, meta.RawTable())
}

func TestSourceMetaLookup(t *testing.T) {
	assert := assert.New(t)

	_, meta, err := Hoist(`"a" "b"`)
	require.NoError(t, err)

	body, ok := meta.Lookup("$_STR1")
	assert.True(ok)
	assert.Equal("b", body)

	for _, ph := range []string{"$_STR2", "$_STR-1", "$_STR01", "$_STR", "STR0", "x"} {
		_, ok := meta.Lookup(ph)
		assert.False(ok, ph)
	}
}

func TestHoistErrors(t *testing.T) {
	testCases := []struct {
		src    string
		kind   ErrorKind
		target error
		offset int
	}{
		{`"abc`, UnexpectedEOF, ErrUnexpectedEOF, 0},
		{`x + "abc\`, UnexpectedEOF, ErrUnexpectedEOF, 4},
		{"\"abc\ndef\"", UnclosedQuote, ErrUnclosedQuote, 0},
		{"a(\"ok\", \"no\n\")", UnclosedQuote, ErrUnclosedQuote, 8},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		_, _, err := Hoist(tc.src)

		var syntaxErr *SyntaxError
		require.True(t, errors.As(err, &syntaxErr), tc.src)
		assert.Equal(tc.kind, syntaxErr.Kind, tc.src)
		assert.Equal(tc.offset, syntaxErr.Offset, tc.src)
		assert.True(errors.Is(err, tc.target), tc.src)
	}
}

func TestOriginalOffset(t *testing.T) {
	assert := assert.New(t)

	// a "hello" b  ->  a "$_STR0" b
	hoisted, meta, err := Hoist(`a "hello" b`)
	require.NoError(t, err)
	require.Equal(t, `a "$_STR0" b`, hoisted)

	assert.Equal(0, meta.OriginalOffset(0))
	assert.Equal(2, meta.OriginalOffset(2))
	assert.Equal(2, meta.OriginalOffset(5))
	assert.Equal(9, meta.OriginalOffset(10))
	assert.Equal(10, meta.OriginalOffset(11))
}
