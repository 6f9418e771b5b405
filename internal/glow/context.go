package glow

import "strings"

// Context is the ordered set of kinds eligible at one parsing position.
// Earlier kinds are tried first.
type Context struct {
	name  string
	kinds []Kind
}

// NewContext creates a context trying kinds in the given order. Repeated
// kinds keep their first position.
func NewContext(name string, kinds ...Kind) Context {
	ctx := Context{name: name}
	for _, kind := range kinds {
		if !ctx.Has(kind) {
			ctx.kinds = append(ctx.kinds, kind)
		}
	}
	return ctx
}

// Compose concatenates ctx with others into a new context.
func (ctx Context) Compose(name string, others ...Context) Context {
	kinds := append([]Kind(nil), ctx.kinds...)
	for _, other := range others {
		kinds = append(kinds, other.kinds...)
	}
	return NewContext(name, kinds...)
}

func (ctx Context) Name() string {
	return ctx.name
}

func (ctx Context) Kinds() []Kind {
	return append([]Kind(nil), ctx.kinds...)
}

func (ctx Context) Has(kind Kind) bool {
	for _, k := range ctx.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (ctx Context) String() string {
	names := make([]string, len(ctx.kinds))
	for i, kind := range ctx.kinds {
		names[i] = kind.String()
	}
	return ctx.name + "[" + strings.Join(names, " ") + "]"
}

// RootContext holds the statement-level productions.
func RootContext() Context {
	return NewContext("root", KindFunction)
}

// ExpressionContext holds the productions legal in expression position.
func ExpressionContext() Context {
	return NewContext("expression",
		KindName,
		KindInteger,
		KindFloat,
		KindString,
		KindMultiplication,
		KindDivision,
		KindAddition,
		KindSubtraction,
		KindCall,
		KindDot,
	)
}

// CallArgsContext is the expression context plus the comma production; it is
// only used while decomposing argument lists.
func CallArgsContext() Context {
	return ExpressionContext().Compose("call-args", NewContext("comma", KindComma))
}

// Grammar is the set of contexts one parser works with.
type Grammar struct {
	Root       Context
	Expression Context
	CallArgs   Context
}

func DefaultGrammar() *Grammar {
	return &Grammar{
		Root:       RootContext(),
		Expression: ExpressionContext(),
		CallArgs:   CallArgsContext(),
	}
}
