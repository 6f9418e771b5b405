package glow

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// resolver builds nodes out of spans of one hoisted buffer.
type resolver struct {
	buf     string
	grammar *Grammar
	trace   io.Writer
	depth   int
	memo    map[memoKey]memoEntry
}

// memoKey identifies one resolution: a trimmed span tried against a context.
// The context is keyed by its rendering so that two contexts sharing a name
// but not their kinds stay apart.
type memoKey struct {
	at  Span
	ctx string
}

type memoEntry struct {
	node    Node
	matched Span
	err     error
}

func newResolver(buf string, grammar *Grammar, trace io.Writer) *resolver {
	return &resolver{
		buf:     buf,
		grammar: grammar,
		trace:   trace,
		memo:    make(map[memoKey]memoEntry),
	}
}

func (r *resolver) resolve(at Span, ctx Context) (Node, error) {
	node, _, err := r.resolveMatch(at, ctx)
	return node, err
}

// resolveMatch tries the kinds of ctx in order on the trimmed span and
// returns the node of the first one whose match reaches the end of the
// expression, together with the span that match consumed.
//
// A candidate whose sub-parts cannot be resolved is skipped in favour of the
// next one. Any other error aborts resolution. The outcome only depends on
// the span and the context, so it is computed once per pair.
func (r *resolver) resolveMatch(at Span, ctx Context) (Node, Span, error) {
	at = trimSpan(r.buf, at)
	key := memoKey{at, ctx.String()}
	if e, ok := r.memo[key]; ok {
		r.depth++
		r.tracef("reusing %s on %q", ctx.name, at.In(r.buf))
		r.depth--
		return e.node, e.matched, e.err
	}
	node, matched, err := r.tryKinds(at, ctx)
	r.memo[key] = memoEntry{node, matched, err}
	return node, matched, err
}

func (r *resolver) tryKinds(at Span, ctx Context) (Node, Span, error) {
	r.depth++
	defer func() { r.depth-- }()

	for _, kind := range ctx.kinds {
		prod := &productions[kind]
		r.tracef("testing %s on %q", kind, at.In(r.buf))
		m, err := prod.match(r.buf, at)
		if err != nil {
			return nil, Span{}, err
		}
		if m == nil || !reachesExprEnd(r.buf, at, m) {
			continue
		}

		var node Node
		if m.IsAtomic() {
			node = prod.atom(m.Args[0].In(r.buf))
		} else {
			node, err = prod.build(r, m)
		}
		if errors.Is(err, ErrNoOperationMatch) {
			r.tracef("rejected %s", kind)
			continue
		}
		if err != nil {
			return nil, Span{}, err
		}
		r.tracef("accepted %s", kind)
		return node, m.Matched, nil
	}
	return nil, Span{}, newSyntaxError(NoOperationMatch, at.Start, at.In(r.buf))
}

// resolveGroup resolves an argument or parameter list into a flat group.
// A blank list is an empty group.
func (r *resolver) resolveGroup(at Span) (*NodeGroup, error) {
	if trimSpan(r.buf, at).Len() == 0 {
		return NewNodeGroup(nil), nil
	}
	node, err := r.resolve(at, r.grammar.CallArgs)
	if err != nil {
		return nil, err
	}
	return FlattenCommas(node), nil
}

// reachesExprEnd reports whether what is left of at after m is blank up to
// the end of its first line.
func reachesExprEnd(buf string, at Span, m *NodeMatch) bool {
	rest := buf[m.Matched.End:at.End]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest) == ""
}

func (r *resolver) tracef(format string, args ...interface{}) {
	if r.trace == nil {
		return
	}
	fmt.Fprintf(r.trace, "%s%s\n", strings.Repeat("\t", r.depth-1), fmt.Sprintf(format, args...))
}
