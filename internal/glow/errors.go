package glow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies the conditions that abort a parse.
type ErrorKind int

const (
	// UnclosedQuote is a line break inside an open string literal.
	UnclosedQuote ErrorKind = iota
	// UnexpectedEOF is the end of input inside an open string literal.
	UnexpectedEOF
	// UnbalancedBracket is a closing delimiter with no matching opening one.
	UnbalancedBracket
	// NoOperationMatch is a span that no kind of the active context matches.
	NoOperationMatch
)

var (
	ErrUnclosedQuote     = errors.New("unclosed quote")
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
	ErrUnbalancedBracket = errors.New("unbalanced bracket")
	ErrNoOperationMatch  = errors.New("no operation matches expression")
)

func (kind ErrorKind) String() string {
	switch kind {
	case UnclosedQuote:
		return "UnclosedQuote"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case UnbalancedBracket:
		return "UnbalancedBracket"
	case NoOperationMatch:
		return "NoOperationMatch"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

func (kind ErrorKind) sentinel() error {
	switch kind {
	case UnclosedQuote:
		return ErrUnclosedQuote
	case UnexpectedEOF:
		return ErrUnexpectedEOF
	case UnbalancedBracket:
		return ErrUnbalancedBracket
	}
	return ErrNoOperationMatch
}

// SyntaxError wraps one of the Err* sentinels with the text that caused it
// and where that text starts. Offset is a byte offset into the text being
// scanned; once the error leaves the parser it refers to the original source
// and Line and Col are set.
type SyntaxError struct {
	Kind   ErrorKind
	Offset int
	Text   string
	Line   int
	Col    int
}

func newSyntaxError(kind ErrorKind, offset int, text string) *SyntaxError {
	return &SyntaxError{Kind: kind, Offset: offset, Text: text}
}

func (err *SyntaxError) Error() string {
	msg := err.Kind.sentinel().Error()
	text := err.Text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	if err.Line == 0 {
		return fmt.Sprintf("Error at '%s': %s", text, msg)
	}
	if text == "" {
		return fmt.Sprintf("[line %d:%d] Error at end: %s", err.Line, err.Col, msg)
	}
	return fmt.Sprintf("[line %d:%d] Error at '%s': %s", err.Line, err.Col, text, msg)
}

func (err *SyntaxError) Unwrap() error {
	return err.Kind.sentinel()
}

// locate moves the error from hoisted-text coordinates to the original
// source. meta is nil for errors raised while hoisting.
func (err *SyntaxError) locate(src *Source, meta *SourceMeta) {
	if meta != nil {
		err.Offset = meta.OriginalOffset(err.Offset)
		err.Text = meta.rawReplacer().Replace(err.Text)
	}
	err.Line, err.Col = src.LineCol(err.Offset)
}
