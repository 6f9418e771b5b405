package glow

// MatchBrackets returns the group text starts with, from its opening
// delimiter to the matching closing one. Unless include is set the
// delimiters themselves are cut off. ok is false when text does not start
// with opening or the group never closes.
func MatchBrackets(text string, opening, closing byte, include bool) (string, bool, error) {
	s, ok, err := matchBrackets(text, Span{0, len(text)}, opening, closing, include)
	if !ok || err != nil {
		return "", false, err
	}
	return s.In(text), true, nil
}

// SearchBrackets is MatchBrackets for the first group anywhere in text. A
// closing delimiter before any opening one is an UnbalancedBracket error.
func SearchBrackets(text string, opening, closing byte, include bool) (string, bool, error) {
	s, ok, err := searchBrackets(text, Span{0, len(text)}, opening, closing, include)
	if !ok || err != nil {
		return "", false, err
	}
	return s.In(text), true, nil
}

func matchBrackets(buf string, at Span, opening, closing byte, include bool) (Span, bool, error) {
	if at.Len() == 0 || buf[at.Start] != opening {
		return Span{}, false, nil
	}
	return searchBrackets(buf, at, opening, closing, include)
}

func searchBrackets(buf string, at Span, opening, closing byte, include bool) (Span, bool, error) {
	depth := 0
	start := -1
	for i := at.Start; i < at.End; i++ {
		switch buf[i] {
		case opening:
			if start < 0 {
				start = i
			}
			depth++
		case closing:
			depth--
		default:
			continue
		}
		if depth < 0 {
			return Span{}, false, newSyntaxError(UnbalancedBracket, i, buf[i:at.End])
		}
		if depth == 0 && start >= 0 {
			if include {
				return Span{start, i + 1}, true, nil
			}
			return Span{start + 1, i}, true, nil
		}
	}
	return Span{}, false, nil
}

// indexTopLevel returns the offset of the first marker in text that is
// neither inside brackets nor inside a string literal, or -1.
func indexTopLevel(text string, marker string) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '"':
			for i++; i < len(text) && text[i] != '"'; i++ {
				if text[i] == '\\' {
					i++
				}
			}
			continue
		case '(', '{':
			depth++
			continue
		case ')', '}':
			depth--
			continue
		}
		if depth == 0 && len(text)-i >= len(marker) && text[i:i+len(marker)] == marker {
			return i
		}
	}
	return -1
}
