package glow

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NodeMatch is the result of a successful match attempt: the span that was
// consumed and how it decomposes. A match with a single argument is atomic:
// that argument is the matched span and the node is built straight from its
// text.
type NodeMatch struct {
	Args    []Span
	Matched Span
}

// newNodeMatch creates a match over matched. Without args the match is
// atomic and its only argument is matched itself.
func newNodeMatch(matched Span, args ...Span) *NodeMatch {
	if len(args) == 0 {
		args = []Span{matched}
	}
	return &NodeMatch{Args: args, Matched: matched}
}

func (m *NodeMatch) MatchLength() int {
	return m.Matched.Len()
}

func (m *NodeMatch) MatchedText(buf string) string {
	return m.Matched.In(buf)
}

func (m *NodeMatch) IsAtomic() bool {
	return len(m.Args) == 1
}

// Matcher recognises a leading portion of at. It returns nil without an error
// when the text does not match. Matchers are pure functions of their input.
type Matcher func(buf string, at Span) (*NodeMatch, error)

// regexMatcher matches the leading span that satisfies pattern.
func regexMatcher(pattern string) Matcher {
	re := regexp.MustCompile(`^(?:` + pattern + `)`)
	return func(buf string, at Span) (*NodeMatch, error) {
		loc := re.FindStringIndex(at.In(buf))
		if loc == nil || loc[1] == 0 {
			return nil, nil
		}
		return newNodeMatch(Span{at.Start, at.Start + loc[1]}), nil
	}
}

var matchWord = regexMatcher(`[\p{L}\p{N}_]+`)

// matchName matches an identifier. Identifiers cannot start with a numeral.
func matchName(buf string, at Span) (*NodeMatch, error) {
	m, err := matchWord(buf, at)
	if m == nil || err != nil {
		return nil, err
	}
	if r, _ := utf8.DecodeRuneInString(m.MatchedText(buf)); unicode.IsDigit(r) {
		return nil, nil
	}
	return m, nil
}

var (
	matchInteger = regexMatcher(`[0-9]+`)
	matchFloat   = regexMatcher(`[0-9]+\.[0-9]+`)
	matchBoolean = regexMatcher(`(?:true|false)\b`)
)

// matchString matches a quoted literal, quotes included.
func matchString(buf string, at Span) (*NodeMatch, error) {
	if at.Len() == 0 || buf[at.Start] != '"' {
		return nil, nil
	}
	_, end, err := scanLiteral(buf[:at.End], at.Start)
	if err != nil {
		return nil, err
	}
	return newNodeMatch(Span{at.Start, end}), nil
}

// unquoteString returns the body of a quoted literal with \" unescaped.
func unquoteString(quoted string) string {
	return strings.ReplaceAll(quoted[1:len(quoted)-1], `\"`, `"`)
}

// binaryMatcher matches `<left> marker <right>`, splitting on the first
// marker outside brackets. The whole span is consumed; both sides are left
// as unparsed text.
func binaryMatcher(marker string) Matcher {
	return func(buf string, at Span) (*NodeMatch, error) {
		text := at.In(buf)
		i := indexTopLevel(text, marker)
		if i < 1 || i+len(marker) >= len(text) {
			return nil, nil
		}
		left := Span{at.Start, at.Start + i}
		right := Span{at.Start + i + len(marker), at.End}
		return newNodeMatch(at, left, right), nil
	}
}

// bracketedMatcher matches `subject(args)`: the subject is the shortest
// non-empty text before an opening delimiter, the arguments are the content
// of the bracket group that follows.
func bracketedMatcher(opening, closing byte) Matcher {
	return func(buf string, at Span) (*NodeMatch, error) {
		text := at.In(buf)
		if len(text) < 2 {
			return nil, nil
		}
		i := strings.IndexByte(text[1:], opening)
		if i < 0 {
			return nil, nil
		}
		subject := Span{at.Start, at.Start + i + 1}
		inner, ok, err := matchBrackets(buf, Span{subject.End, at.End}, opening, closing, false)
		if !ok || err != nil {
			return nil, err
		}
		return newNodeMatch(Span{at.Start, inner.End + 1}, subject, inner), nil
	}
}

// matchIfStatement matches `if <condition> {<body>}`. The arguments are the
// condition and the body without its braces.
func matchIfStatement(buf string, at Span) (*NodeMatch, error) {
	spans, ok, err := compoundMatch(buf, at,
		Pattern(`if\b`),
		conditionStep,
		Brackets('{', '}'),
	)
	if !ok || err != nil {
		return nil, err
	}
	cond, body := spans[1], spans[2]
	return newNodeMatch(Span{at.Start, body.End}, cond, unwrap(body)), nil
}

// matchFunction matches `func <name>(<params>): <type> {<body>}`. The
// arguments are the name, the parameter list and the body without their
// delimiters, and the return type without its colon.
func matchFunction(buf string, at Span) (*NodeMatch, error) {
	spans, ok, err := compoundMatch(buf, at,
		Pattern(`func[ \t]+`),
		Pattern(`[\p{L}\p{N}_]+[ \t]*`),
		Brackets('(', ')'),
		returnTypeStep,
		Brackets('{', '}'),
	)
	if !ok || err != nil {
		return nil, err
	}
	name, params, ret, body := spans[1], spans[2], spans[3], spans[4]
	ret.Start += strings.IndexByte(ret.In(buf), ':') + 1
	return newNodeMatch(Span{at.Start, body.End}, name, unwrap(params), ret, unwrap(body)), nil
}

// unwrap drops the delimiters around a bracket group.
func unwrap(s Span) Span {
	return Span{s.Start + 1, s.End - 1}
}
