package glow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAstPrinter(t *testing.T) {
	testCases := []struct {
		node Node
		want string
	}{
		{NewAdditionOp(NewName("a"), NewMultiplicationOp(NewInteger("2"), NewFloat("0.5"))), `(+ a (* 2 0.5))`},
		{NewSubtractionOp(NewName("a"), NewDivisionOp(NewName("b"), NewName("c"))), `(- a (/ b c))`},
		{NewDotOp(NewName("a"), NewName("b")), `(. a b)`},
		{NewCommaOp(NewString("x\ny"), NewBoolean("false")), `(, "x\ny" false)`},
		{NewCallOp(NewName("f"), group()), `(call f [])`},
		{group(NewName("a"), NewName("b")), `[a b]`},
		{NewIfStatement(NewName("c"), NewBlock("\n  x\n")), `(if c (block "x"))`},
		{
			NewFunction(NewName("f"), group(NewName("a")), NewName("int"), NewBlock(" return a ")),
			`(func f [a] int (block "return a"))`,
		},
	}

	assert := assert.New(t)
	printer := &AstPrinter{}
	for _, tc := range testCases {
		assert.Equal(tc.want, printer.Print(tc.node))
	}
}
