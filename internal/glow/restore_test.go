package glow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreStrings(t *testing.T) {
	assert := assert.New(t)
	_, meta, err := Hoist(`f("a+b", "say \"hi\"")`)
	require.NoError(t, err)

	node := NewCallOp(NewName("f"), group(NewString("$_STR0"), NewString("$_STR1"), NewString("$_STR9")))
	Restore(node, meta)

	assert.Equal(group(NewString("a+b"), NewString(`say "hi"`), NewString("$_STR9")), node.Args)
}

func TestRestoreBlocks(t *testing.T) {
	_, meta, err := Hoist("{\n  print(\"x\", \"y \\\"z\\\"\")\n}")
	require.NoError(t, err)

	block := NewBlock("\n  print(\"$_STR0\", \"$_STR1\")\n")
	fn := NewFunction(NewName("f"), group(), NewName("void"), block)
	Restore(group(fn), meta)

	assert.Equal(t, "\n  print(\"x\", \"y \\\"z\\\"\")\n", block.Source)
}

func TestRestoreWithoutLiterals(t *testing.T) {
	_, meta, err := Hoist(`a + b`)
	require.NoError(t, err)

	node := NewString("$_STR0")
	Restore(node, meta)
	Restore(node, nil)
	Restore(nil, meta)

	assert.Equal(t, "$_STR0", node.Value)
}
