// Package glow parses source text of the glow language into a syntax tree.
//
//	decls, err := glow.Parse(src)
//	if errors.Is(err, glow.ErrNoOperationMatch) {
//		...
//	}
package glow

import (
	core "github.com/iahuang/glow/internal/glow"
)

type (
	Node        = core.Node
	NodeVisitor = core.NodeVisitor
	NodeGroup   = core.NodeGroup
	SyntaxError = core.SyntaxError
	ErrorKind   = core.ErrorKind
	Config      = core.Config
	Option      = core.Option
	AstPrinter  = core.AstPrinter
)

const (
	UnclosedQuote     = core.UnclosedQuote
	UnexpectedEOF     = core.UnexpectedEOF
	UnbalancedBracket = core.UnbalancedBracket
	NoOperationMatch  = core.NoOperationMatch
)

var (
	ErrUnclosedQuote     = core.ErrUnclosedQuote
	ErrUnexpectedEOF     = core.ErrUnexpectedEOF
	ErrUnbalancedBracket = core.ErrUnbalancedBracket
	ErrNoOperationMatch  = core.ErrNoOperationMatch
)

var (
	WithConfig = core.WithConfig
	WithTrace  = core.WithTrace
	LoadConfig = core.LoadConfig
)

// Parse resolves src as a sequence of top-level declarations.
func Parse(src string, opts ...Option) (*NodeGroup, error) {
	return core.NewParser(src, nil, opts...).Parse()
}

// ParseExpression resolves src as a single expression.
func ParseExpression(src string, opts ...Option) (Node, error) {
	return core.NewParser(src, nil, opts...).ParseExpression()
}
