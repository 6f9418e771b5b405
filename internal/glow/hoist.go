package glow

import (
	"strconv"
	"strings"
)

const placeholderPrefix = "$_STR"

type literal struct {
	body string
	// raw is the first quoted occurrence, escapes included
	raw string
}

// replacement records where a quoted placeholder was written in the hoisted
// text and how long the literal it stands for was.
type replacement struct {
	at          int
	hoistedLen  int
	originalLen int
}

// SourceMeta is the registry of string literals hoisted out of one source
// unit. Literals are deduplicated by body and addressed by insertion index.
type SourceMeta struct {
	literals     []literal
	index        map[string]int
	replacements []replacement
}

func newSourceMeta() *SourceMeta {
	return &SourceMeta{index: make(map[string]int)}
}

func placeholder(i int) string {
	return placeholderPrefix + strconv.Itoa(i)
}

// Hoist replaces every string literal in text by a quoted placeholder and
// returns the rewritten text with the registry of literal bodies. Inside a
// literal, \" stands for a quote; every other character is kept as is.
func Hoist(text string) (string, *SourceMeta, error) {
	meta := newSourceMeta()
	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '"' {
			out.WriteByte(text[i])
			i++
			continue
		}
		body, end, err := scanLiteral(text, i)
		if err != nil {
			return "", nil, err
		}
		quoted := `"` + placeholder(meta.add(body, text[i:end])) + `"`
		meta.replacements = append(meta.replacements, replacement{out.Len(), len(quoted), end - i})
		out.WriteString(quoted)
		i = end
	}
	return out.String(), meta, nil
}

// scanLiteral reads the literal whose opening quote is at buf[start]. It
// returns the unescaped body and the offset just past the closing quote.
func scanLiteral(buf string, start int) (string, int, error) {
	var body strings.Builder
	for i := start + 1; i < len(buf); i++ {
		switch c := buf[i]; {
		case c == '\\' && i+1 < len(buf) && buf[i+1] == '"':
			body.WriteByte('"')
			i++
		case c == '\\' && i+1 == len(buf):
			return "", 0, newSyntaxError(UnexpectedEOF, start, buf[start:])
		case c == '"':
			return body.String(), i + 1, nil
		case c == '\n':
			return "", 0, newSyntaxError(UnclosedQuote, start, buf[start:i])
		default:
			body.WriteByte(c)
		}
	}
	return "", 0, newSyntaxError(UnexpectedEOF, start, buf[start:])
}

func (meta *SourceMeta) add(body, raw string) int {
	if i, ok := meta.index[body]; ok {
		return i
	}
	meta.literals = append(meta.literals, literal{body, raw})
	meta.index[body] = len(meta.literals) - 1
	return len(meta.literals) - 1
}

// Len returns the number of distinct literals.
func (meta *SourceMeta) Len() int {
	return len(meta.literals)
}

// Strings returns the literal bodies in registration order.
func (meta *SourceMeta) Strings() []string {
	bodies := make([]string, len(meta.literals))
	for i, lit := range meta.literals {
		bodies[i] = lit.body
	}
	return bodies
}

// Placeholder returns the placeholder standing for body, if body was hoisted.
func (meta *SourceMeta) Placeholder(body string) (string, bool) {
	i, ok := meta.index[body]
	if !ok {
		return "", false
	}
	return placeholder(i), true
}

// Lookup returns the literal body a placeholder stands for.
func (meta *SourceMeta) Lookup(ph string) (string, bool) {
	if !strings.HasPrefix(ph, placeholderPrefix) {
		return "", false
	}
	i, err := strconv.Atoi(ph[len(placeholderPrefix):])
	if err != nil || i < 0 || i >= len(meta.literals) || placeholder(i) != ph {
		return "", false
	}
	return meta.literals[i].body, true
}

// StringTable maps each placeholder to its literal body.
func (meta *SourceMeta) StringTable() map[string]string {
	table := make(map[string]string, len(meta.literals))
	for i, lit := range meta.literals {
		table[placeholder(i)] = lit.body
	}
	return table
}

// RawTable maps each quoted placeholder to the quoted literal as it was
// written in the source.
func (meta *SourceMeta) RawTable() map[string]string {
	table := make(map[string]string, len(meta.literals))
	for i, lit := range meta.literals {
		table[`"`+placeholder(i)+`"`] = lit.raw
	}
	return table
}

func (meta *SourceMeta) rawReplacer() *strings.Replacer {
	pairs := make([]string, 0, 2*len(meta.literals))
	for i, lit := range meta.literals {
		pairs = append(pairs, `"`+placeholder(i)+`"`, lit.raw)
	}
	return strings.NewReplacer(pairs...)
}

// OriginalOffset maps an offset in the hoisted text back to the original
// text. Offsets inside a placeholder map to the literal's opening quote.
func (meta *SourceMeta) OriginalOffset(offset int) int {
	shift := 0
	for _, r := range meta.replacements {
		if offset <= r.at {
			break
		}
		if offset < r.at+r.hoistedLen {
			return r.at + shift
		}
		shift += r.originalLen - r.hoistedLen
	}
	return offset + shift
}
