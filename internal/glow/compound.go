package glow

import (
	"regexp"
	"strings"
)

// Step is one link of a compound match. It consumes a leading portion of at
// and returns the consumed span.
type Step func(buf string, at Span) (Span, bool, error)

// Pattern is a Step matching a regular expression anchored at the start of
// the remaining text.
func Pattern(pattern string) Step {
	re := regexp.MustCompile(`^(?:` + pattern + `)`)
	return func(buf string, at Span) (Span, bool, error) {
		loc := re.FindStringIndex(at.In(buf))
		if loc == nil {
			return Span{}, false, nil
		}
		return Span{at.Start, at.Start + loc[1]}, true, nil
	}
}

// Brackets is a Step matching a bracket group, delimiters included.
func Brackets(opening, closing byte) Step {
	return func(buf string, at Span) (Span, bool, error) {
		return matchBrackets(buf, at, opening, closing, true)
	}
}

// compoundMatch applies steps in order, each to what the previous one left.
// It fails as a whole as soon as one step fails or consumes nothing.
func compoundMatch(buf string, at Span, steps ...Step) ([]Span, bool, error) {
	spans := make([]Span, 0, len(steps))
	rest := at
	for _, step := range steps {
		s, ok, err := step(buf, rest)
		if err != nil {
			return nil, false, err
		}
		if !ok || s.Len() == 0 {
			return nil, false, nil
		}
		spans = append(spans, s)
		rest.Start = s.End
	}
	return spans, true, nil
}

// conditionStep matches the condition of an if statement: text on the
// current line up to the last space that is followed by "{", optionally
// after one line break.
func conditionStep(buf string, at Span) (Span, bool, error) {
	text := at.In(buf)
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	for p := len(line) - 1; p >= 1; p-- {
		if line[p] != ' ' {
			continue
		}
		if p+1 < len(text) && text[p+1] == '{' {
			return Span{at.Start, at.Start + p + 1}, true, nil
		}
		if p+2 < len(text) && text[p+1] == '\n' && text[p+2] == '{' {
			return Span{at.Start, at.Start + p + 2}, true, nil
		}
	}
	return Span{}, false, nil
}

// returnTypeStep matches ":" followed by the return type up to the opening
// brace of the body. The type sits on one line; a single line break may
// separate it from the brace.
func returnTypeStep(buf string, at Span) (Span, bool, error) {
	text := at.In(buf)
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) || text[i] != ':' {
		return Span{}, false, nil
	}
	for j := i + 1; j < len(text); j++ {
		switch {
		case text[j] == '\n':
			if j >= i+2 && j+1 < len(text) && text[j+1] == '{' {
				return Span{at.Start, at.Start + j + 1}, true, nil
			}
			return Span{}, false, nil
		case text[j] == '{' && j >= i+2:
			return Span{at.Start, at.Start + j}, true, nil
		}
	}
	return Span{}, false, nil
}
