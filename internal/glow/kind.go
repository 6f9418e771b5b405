package glow

import "fmt"

// Kind identifies a grammar production. The set is closed; every kind has an
// entry in the productions table.
type Kind int

const (
	KindName Kind = iota
	KindInteger
	KindFloat
	KindString
	KindBoolean
	KindMultiplication
	KindDivision
	KindAddition
	KindSubtraction
	KindCall
	KindDot
	KindComma
	KindIfStatement
	KindFunction
	kindCount
)

// production pairs a kind with its matcher and the way its node is built:
// atom for atomic matches, build for matches with several arguments.
type production struct {
	name  string
	match Matcher
	atom  func(text string) Node
	build func(r *resolver, m *NodeMatch) (Node, error)
}

var productions [kindCount]production

func init() {
	productions = [kindCount]production{
		KindName: {
			name:  "Name",
			match: matchName,
			atom:  func(text string) Node { return NewName(text) },
		},
		KindInteger: {
			name:  "Integer",
			match: matchInteger,
			atom:  func(text string) Node { return NewInteger(text) },
		},
		KindFloat: {
			name:  "Float",
			match: matchFloat,
			atom:  func(text string) Node { return NewFloat(text) },
		},
		KindString: {
			name:  "String",
			match: matchString,
			atom:  func(text string) Node { return NewString(unquoteString(text)) },
		},
		KindBoolean: {
			name:  "Boolean",
			match: matchBoolean,
			atom:  func(text string) Node { return NewBoolean(text) },
		},
		KindMultiplication: {
			name:  "MultiplicationOp",
			match: binaryMatcher("*"),
			build: buildBinary(func(a, b Node) Node { return NewMultiplicationOp(a, b) }),
		},
		KindDivision: {
			name:  "DivisionOp",
			match: binaryMatcher("/"),
			build: buildBinary(func(a, b Node) Node { return NewDivisionOp(a, b) }),
		},
		KindAddition: {
			name:  "AdditionOp",
			match: binaryMatcher("+"),
			build: buildBinary(func(a, b Node) Node { return NewAdditionOp(a, b) }),
		},
		KindSubtraction: {
			name:  "SubtractionOp",
			match: binaryMatcher("-"),
			build: buildBinary(func(a, b Node) Node { return NewSubtractionOp(a, b) }),
		},
		KindCall: {
			name:  "CallOp",
			match: bracketedMatcher('(', ')'),
			build: buildCall,
		},
		KindDot: {
			name:  "DotOp",
			match: binaryMatcher("."),
			build: buildBinary(func(a, b Node) Node { return NewDotOp(a, b) }),
		},
		KindComma: {
			name:  "CommaOp",
			match: binaryMatcher(","),
			build: buildComma,
		},
		KindIfStatement: {
			name:  "IfStatement",
			match: matchIfStatement,
			build: buildIfStatement,
		},
		KindFunction: {
			name:  "Function",
			match: matchFunction,
			build: buildFunction,
		},
	}
}

func (kind Kind) String() string {
	if kind < 0 || kind >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(kind))
	}
	return productions[kind].name
}

// KindByName returns the kind with the given production name, e.g.
// "AdditionOp".
func KindByName(name string) (Kind, bool) {
	for kind := Kind(0); kind < kindCount; kind++ {
		if productions[kind].name == name {
			return kind, true
		}
	}
	return 0, false
}

// Match runs the matcher of kind on text.
func (kind Kind) Match(text string) (*NodeMatch, error) {
	return productions[kind].match(text, Span{0, len(text)})
}

func buildBinary(newNode func(a, b Node) Node) func(r *resolver, m *NodeMatch) (Node, error) {
	return func(r *resolver, m *NodeMatch) (Node, error) {
		a, err := r.resolve(m.Args[0], r.grammar.Expression)
		if err != nil {
			return nil, err
		}
		b, err := r.resolve(m.Args[1], r.grammar.Expression)
		if err != nil {
			return nil, err
		}
		return newNode(a, b), nil
	}
}

func buildComma(r *resolver, m *NodeMatch) (Node, error) {
	a, err := r.resolve(m.Args[0], r.grammar.CallArgs)
	if err != nil {
		return nil, err
	}
	b, err := r.resolve(m.Args[1], r.grammar.CallArgs)
	if err != nil {
		return nil, err
	}
	return NewCommaOp(a, b), nil
}

func buildCall(r *resolver, m *NodeMatch) (Node, error) {
	callee, err := r.resolve(m.Args[0], r.grammar.Expression)
	if err != nil {
		return nil, err
	}
	args, err := r.resolveGroup(m.Args[1])
	if err != nil {
		return nil, err
	}
	return NewCallOp(callee, args), nil
}

func buildIfStatement(r *resolver, m *NodeMatch) (Node, error) {
	cond, err := r.resolve(m.Args[0], r.grammar.Expression)
	if err != nil {
		return nil, err
	}
	return NewIfStatement(cond, NewBlock(m.Args[1].In(r.buf))), nil
}

var nameContext = NewContext("name", KindName)

func buildFunction(r *resolver, m *NodeMatch) (Node, error) {
	name, err := r.resolve(m.Args[0], nameContext)
	if err != nil {
		return nil, err
	}
	params, err := r.resolveGroup(m.Args[1])
	if err != nil {
		return nil, err
	}
	ret, err := r.resolve(m.Args[2], r.grammar.Expression)
	if err != nil {
		return nil, err
	}
	return NewFunction(name.(*Name), params, ret, NewBlock(m.Args[3].In(r.buf))), nil
}
