package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAst(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	require.NoError(t, defineAst(dir, "glow", "Node", nodeTypes))

	src, err := os.ReadFile(filepath.Join(dir, "node.go"))
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "node.go", src, 0)
	require.NoError(t, err)

	assert.Contains(string(src), "// Code generated by ast_codegen. DO NOT EDIT.")
	assert.Contains(string(src), "func NewCallOp(Callee Node, Args *NodeGroup) *CallOp {")
	assert.Contains(string(src), "VisitFunction(node *Function) (interface{}, error)")
	assert.Contains(string(src), "return []Node{node.Name, node.Args, node.ReturnType, node.Block}")
	assert.Contains(string(src), "func (node *NodeGroup) Children() []Node {\n\treturn node.Nodes\n}")
}

func TestDefineAstPackageFromDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nodes")
	require.NoError(t, os.Mkdir(dir, 0o755))

	require.NoError(t, defineAst(dir, "", "Node", []string{"Leaf: Value string"}))

	src, err := os.ReadFile(filepath.Join(dir, "node.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package nodes\n")
}

func TestDefineChildren(t *testing.T) {
	testCases := []struct {
		fields []string
		want   string
	}{
		{[]string{"Value string"}, "\treturn nil\n"},
		{[]string{"Items []Node"}, "\treturn node.Items\n"},
		{[]string{"A Node", "B *Leaf"}, "\treturn []Node{node.A, node.B}\n"},
		{[]string{"A Node", "Items []Node"}, "\treturn append([]Node{node.A}, node.Items...)\n"},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		var out bytes.Buffer
		defineChildren(&out, "Node", "T", tc.fields)

		assert.Contains(out.String(), tc.want, tc.fields)
	}
}
