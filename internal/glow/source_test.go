package glow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceLineCol(t *testing.T) {
	src := NewSource("test.glow", "ab\ncd\n\né f")
	testCases := []struct {
		offset int
		line   int
		col    int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{5, 2, 3},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 2},
		{10, 4, 3},
		{-4, 1, 1},
		{100, 4, 4},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		line, col := src.LineCol(tc.offset)

		assert.Equal(tc.line, line, "offset %d", tc.offset)
		assert.Equal(tc.col, col, "offset %d", tc.offset)
	}
}

func TestSourceNormalisesLineEndings(t *testing.T) {
	assert := assert.New(t)
	src := NewSource("crlf.glow", "a\r\nb\r\nc")

	assert.Equal("a\nb\nc", src.Contents())
	assert.Equal("crlf.glow", src.Name())
	line, col := src.LineCol(4)
	assert.Equal(3, line)
	assert.Equal(1, col)
}

func TestTrimSpan(t *testing.T) {
	buf := " \t a b \n"
	assert.Equal(t, "a b", trimSpan(buf, whole(buf)).In(buf))
	assert.Equal(t, 0, trimSpan(buf, Span{0, 3}).Len())
}
