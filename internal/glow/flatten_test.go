package glow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenCommas(t *testing.T) {
	a, b, c, d := NewName("a"), NewName("b"), NewName("c"), NewName("d")
	testCases := []struct {
		node Node
		want *NodeGroup
	}{
		{a, group(a)},
		{NewCommaOp(a, b), group(a, b)},
		{NewCommaOp(a, NewCommaOp(b, c)), group(a, b, c)},
		{NewCommaOp(NewCommaOp(a, b), NewCommaOp(c, d)), group(a, b, c, d)},
		{NewAdditionOp(a, b), group(NewAdditionOp(a, b))},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.want, FlattenCommas(tc.node))
	}
}

func TestFlattenKeepsNestedCalls(t *testing.T) {
	inner := NewCallOp(NewName("g"), group(NewName("a"), NewName("b")))
	node := NewCommaOp(inner, NewName("c"))

	assert.Equal(t, group(inner, NewName("c")), FlattenCommas(node))
}
