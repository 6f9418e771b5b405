package main

// ast_codegen writes the syntax node definitions of the glow parser.

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// we do it the scripting way, instead of having types support from Go stdlib
var nodeTypes = []string{
	"Name: Identifier string",
	"Integer: Value string",
	"Float: Value string",
	"String: Value string",
	"Boolean: Value string",
	"DotOp: A Node, B Node",
	"AdditionOp: A Node, B Node",
	"SubtractionOp: A Node, B Node",
	"MultiplicationOp: A Node, B Node",
	"DivisionOp: A Node, B Node",
	// CommaOp only lives while an argument list is being resolved, it is
	// flattened into a NodeGroup before the tree is finished.
	"CommaOp: A Node, B Node",
	"CallOp: Callee Node, Args *NodeGroup",
	"IfStatement: Condition Node, Block *Block",
	"Function: Name *Name, Args *NodeGroup, ReturnType Node, Block *Block",
	"NodeGroup: Nodes []Node",
	// Block keeps a body as raw source text, it is not parsed any further.
	"Block: Source string",
}

func main() {
	var packageName string
	cmd := &cobra.Command{
		Use:   "ast_codegen <output directory>",
		Short: "Generate the syntax node definitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return defineAst(args[0], packageName, "Node", nodeTypes)
		},
	}
	cmd.Flags().StringVar(&packageName, "package", "", "package name (default: base name of the output directory)")

	if err := cmd.Execute(); err != nil {
		os.Exit(64)
	}
}

func defineAst(outputDir string, packageName string, baseName string, types []string) error {
	if packageName == "" {
		abs, err := filepath.Abs(outputDir)
		if err != nil {
			return err
		}
		packageName = filepath.Base(abs)
	}

	var writer bytes.Buffer
	fmt.Fprintf(&writer, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&writer, "package %s\n\n", packageName)

	// Interface for every node in the AST
	fmt.Fprintf(&writer, "// %s is implemented by every syntax tree element.\n", baseName)
	fmt.Fprintf(&writer, "type %s interface {\n", baseName)
	fmt.Fprintf(&writer, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&writer, "\tChildren() []%s\n", baseName)
	fmt.Fprintf(&writer, "}\n\n")

	defineVisitor(&writer, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&writer, baseName, typeName, fields)
	}

	src, err := format.Source(writer.Bytes())
	if err != nil {
		return err
	}
	fpath := filepath.Join(outputDir, fmt.Sprintf("%s.go", strings.ToLower(baseName)))
	return os.WriteFile(fpath, src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "// %sVisitor has one method per node type.\n", baseName)
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s(%s *%s) (interface{}, error)\n",
			typeName,
			strings.ToLower(baseName),
			typeName,
		)
	}
	fmt.Fprintf(writer, "}\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
	}

	// Struct definition
	fmt.Fprintf(writer, "\ntype %s struct {\n", typeName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(writer, "func New%s(%s) *%s {\n", typeName, fieldList, typeName)
	var fieldNames []string
	for _, f := range fields {
		fieldName := strings.TrimSpace(strings.Split(f, " ")[0])
		fieldNames = append(fieldNames, fieldName)
	}
	fmt.Fprintf(writer, "\treturn &%s{%s}\n", typeName, strings.Join(fieldNames, ", "))
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	receiver := strings.ToLower(baseName)
	fmt.Fprintf(
		writer,
		"func (%s *%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		receiver, typeName, baseName,
	)
	fmt.Fprintf(writer, "\treturn visitor.Visit%s(%s)\n", typeName, receiver)
	fmt.Fprintf(writer, "}\n\n")

	defineChildren(writer, baseName, typeName, fields)
}

// defineChildren lists the fields holding nodes: fields typed as the base
// interface, pointers to node types, and slices of the base interface.
func defineChildren(writer io.Writer, baseName string, typeName string, fields []string) {
	receiver := strings.ToLower(baseName)
	var children []string
	var slices []string
	for _, f := range fields {
		parts := strings.Fields(f)
		name, typ := parts[0], parts[1]
		switch {
		case typ == baseName || strings.HasPrefix(typ, "*"):
			children = append(children, receiver+"."+name)
		case typ == "[]"+baseName:
			slices = append(slices, receiver+"."+name)
		}
	}

	fmt.Fprintf(writer, "func (%s *%s) Children() []%s {\n", receiver, typeName, baseName)
	switch {
	case len(children) == 0 && len(slices) == 0:
		fmt.Fprintf(writer, "\treturn nil\n")
	case len(children) == 0 && len(slices) == 1:
		fmt.Fprintf(writer, "\treturn %s\n", slices[0])
	default:
		expr := fmt.Sprintf("[]%s{%s}", baseName, strings.Join(children, ", "))
		for _, s := range slices {
			expr = fmt.Sprintf("append(%s, %s...)", expr, s)
		}
		fmt.Fprintf(writer, "\treturn %s\n", expr)
	}
	fmt.Fprintf(writer, "}\n")
}
