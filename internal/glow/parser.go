package glow

import (
	"errors"
	"io"
	"os"
)

// Parser turns one source unit into a syntax tree. Each call hoists the
// string literals, resolves the hoisted text and restores the literals in
// the result; nothing is shared between calls.
type Parser struct {
	source   *Source
	grammar  *Grammar
	reporter Reporter
	trace    io.Writer
	err      error
}

// Option configures a Parser.
type Option func(parser *Parser)

// WithGrammar replaces the default contexts.
func WithGrammar(grammar *Grammar) Option {
	return func(parser *Parser) {
		parser.grammar = grammar
	}
}

// WithConfig applies a loaded configuration. Tracing goes to stderr unless a
// trace writer was set.
func WithConfig(cfg *Config) Option {
	return func(parser *Parser) {
		grammar, err := cfg.Grammar()
		if err != nil {
			parser.err = err
			return
		}
		parser.grammar = grammar
		if cfg.Trace && parser.trace == nil {
			parser.trace = os.Stderr
		}
	}
}

// WithTrace writes every resolution attempt to w.
func WithTrace(w io.Writer) Option {
	return func(parser *Parser) {
		parser.trace = w
	}
}

// NewParser creates a parser for the given source text. reporter may be nil.
func NewParser(source string, reporter Reporter, opts ...Option) *Parser {
	parser := &Parser{
		source:   NewSource("", source),
		grammar:  DefaultGrammar(),
		reporter: reporter,
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse resolves the whole unit as a sequence of root-level declarations.
func (parser *Parser) Parse() (*NodeGroup, error) {
	if parser.err != nil {
		return nil, parser.fail(parser.err, nil)
	}
	hoisted, meta, err := Hoist(parser.source.Contents())
	if err != nil {
		return nil, parser.fail(err, nil)
	}

	r := newResolver(hoisted, parser.grammar, parser.trace)
	decls := NewNodeGroup(nil)
	at := Span{0, len(hoisted)}
	for {
		at = trimSpan(hoisted, at)
		if at.Len() == 0 {
			break
		}
		node, matched, err := r.resolveMatch(at, parser.grammar.Root)
		if err != nil {
			return nil, parser.fail(err, meta)
		}
		decls.Nodes = append(decls.Nodes, node)
		at.Start = matched.End
	}

	Restore(decls, meta)
	return decls, nil
}

// ParseExpression resolves the whole unit as one expression.
func (parser *Parser) ParseExpression() (Node, error) {
	return parser.ParseIn(parser.grammar.Expression)
}

// ParseIn resolves the whole unit with the kinds of ctx.
func (parser *Parser) ParseIn(ctx Context) (Node, error) {
	if parser.err != nil {
		return nil, parser.fail(parser.err, nil)
	}
	hoisted, meta, err := Hoist(parser.source.Contents())
	if err != nil {
		return nil, parser.fail(err, nil)
	}

	r := newResolver(hoisted, parser.grammar, parser.trace)
	node, err := r.resolve(Span{0, len(hoisted)}, ctx)
	if err != nil {
		return nil, parser.fail(err, meta)
	}

	Restore(node, meta)
	return node, nil
}

// fail locates err in the original source, reports it and hands it back.
func (parser *Parser) fail(err error, meta *SourceMeta) error {
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		syntaxErr.locate(parser.source, meta)
	}
	if parser.reporter != nil {
		parser.reporter.Report(err)
	}
	return err
}
