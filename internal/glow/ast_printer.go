package glow

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders a tree as an s-expression, e.g. `(+ a (* b c))`.
type AstPrinter struct{}

func (printer *AstPrinter) Print(node Node) string {
	s, _ := node.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) parenthesize(name string, nodes ...Node) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, node := range nodes {
		b.WriteString(" ")
		b.WriteString(printer.Print(node))
	}
	b.WriteString(")")
	return b.String(), nil
}

func (printer *AstPrinter) VisitName(node *Name) (interface{}, error) {
	return node.Identifier, nil
}

func (printer *AstPrinter) VisitInteger(node *Integer) (interface{}, error) {
	return node.Value, nil
}

func (printer *AstPrinter) VisitFloat(node *Float) (interface{}, error) {
	return node.Value, nil
}

func (printer *AstPrinter) VisitString(node *String) (interface{}, error) {
	return strconv.Quote(node.Value), nil
}

func (printer *AstPrinter) VisitBoolean(node *Boolean) (interface{}, error) {
	return node.Value, nil
}

func (printer *AstPrinter) VisitDotOp(node *DotOp) (interface{}, error) {
	return printer.parenthesize(".", node.A, node.B)
}

func (printer *AstPrinter) VisitAdditionOp(node *AdditionOp) (interface{}, error) {
	return printer.parenthesize("+", node.A, node.B)
}

func (printer *AstPrinter) VisitSubtractionOp(node *SubtractionOp) (interface{}, error) {
	return printer.parenthesize("-", node.A, node.B)
}

func (printer *AstPrinter) VisitMultiplicationOp(node *MultiplicationOp) (interface{}, error) {
	return printer.parenthesize("*", node.A, node.B)
}

func (printer *AstPrinter) VisitDivisionOp(node *DivisionOp) (interface{}, error) {
	return printer.parenthesize("/", node.A, node.B)
}

func (printer *AstPrinter) VisitCommaOp(node *CommaOp) (interface{}, error) {
	return printer.parenthesize(",", node.A, node.B)
}

func (printer *AstPrinter) VisitCallOp(node *CallOp) (interface{}, error) {
	return printer.parenthesize("call", node.Callee, node.Args)
}

func (printer *AstPrinter) VisitIfStatement(node *IfStatement) (interface{}, error) {
	return printer.parenthesize("if", node.Condition, node.Block)
}

func (printer *AstPrinter) VisitFunction(node *Function) (interface{}, error) {
	return printer.parenthesize("func", node.Name, node.Args, node.ReturnType, node.Block)
}

func (printer *AstPrinter) VisitNodeGroup(node *NodeGroup) (interface{}, error) {
	items := make([]string, len(node.Nodes))
	for i, n := range node.Nodes {
		items[i] = printer.Print(n)
	}
	return "[" + strings.Join(items, " ") + "]", nil
}

func (printer *AstPrinter) VisitBlock(node *Block) (interface{}, error) {
	return fmt.Sprintf("(block %s)", strconv.Quote(strings.TrimSpace(node.Source))), nil
}
