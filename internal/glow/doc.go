/*
Package glow turns glow source text into a syntax tree by trial matching.

There is no token stream. Each node kind knows how to recognise a leading
portion of some text, and the resolver tries the kinds that are legal at a
position (a Context) in a fixed order, accepting the first one whose match
reaches the end of the expression. Sub-parts of the accepted match are then
resolved the same way.

Productions

	function   --> "func" NAME "(" params ")" ":" type "{" body "}" ;
	ifStmt     --> "if" condition "{" body "}" ;
	expr       --> NAME | INTEGER | FLOAT | STRING
	             | expr "*" expr | expr "/" expr
	             | expr "+" expr | expr "-" expr
	             | expr "(" args? ")"
	             | expr "." expr ;
	args       --> expr ( "," expr )* ;

Binary productions split on the first occurrence of their operator outside
brackets. Precedence is the order of the kinds in the active context, not an
arithmetic precedence table: with the default expression context,

	a+b*c   resolves to   (* (+ a b) c)

Function and if bodies are kept as raw text in a Block node.

A match only has to reach the end of its line. Text after a line break is
left over even inside brackets, so

	f(a
	, b)   resolves to   (call f [a])

Matchers look for bracket groups at the start of the text, where the depth
never drops below zero. A stray closing bracket therefore makes no kind
match and is reported as ErrNoOperationMatch; ErrUnbalancedBracket only comes
out of SearchBrackets.

Before matching, string literals are hoisted out of the text into a
SourceMeta registry and replaced by "$_STR<n>" placeholders; once the tree is
built, Restore puts the literal bodies back.
*/
package glow

//go:generate go run ../cmd/ast_codegen --package glow .
