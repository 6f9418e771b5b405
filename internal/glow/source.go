package glow

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) into a single source buffer.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int {
	return s.End - s.Start
}

// In returns the text s covers in buf.
func (s Span) In(buf string) string {
	return buf[s.Start:s.End]
}

// Source holds the text of one source unit together with the offsets of its
// line starts, so that byte offsets can be reported as line and column.
type Source struct {
	name       string
	contents   string
	lineStarts []int
}

// NewSource creates a source unit. Windows line endings are turned into unix
// ones, every offset in the parser refers to the normalised text.
func NewSource(name string, contents string) *Source {
	contents = strings.ReplaceAll(contents, "\r\n", "\n")
	src := &Source{name: name, contents: contents, lineStarts: []int{0}}
	for i := 0; i < len(contents); i++ {
		if contents[i] == '\n' {
			src.lineStarts = append(src.lineStarts, i+1)
		}
	}
	return src
}

func (src *Source) Name() string {
	return src.name
}

func (src *Source) Contents() string {
	return src.contents
}

// LineCol returns the 1-based line and rune column of the given byte offset.
// Offsets out of range are clamped.
func (src *Source) LineCol(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(src.contents) {
		offset = len(src.contents)
	}
	i := sort.Search(len(src.lineStarts), func(i int) bool {
		return src.lineStarts[i] > offset
	}) - 1
	start := src.lineStarts[i]
	return i + 1, utf8.RuneCountInString(src.contents[start:offset]) + 1
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// trimSpan shrinks s so that it neither starts nor ends with whitespace.
func trimSpan(buf string, s Span) Span {
	for s.Start < s.End && isSpace(buf[s.Start]) {
		s.Start++
	}
	for s.End > s.Start && isSpace(buf[s.End-1]) {
		s.End--
	}
	return s
}
