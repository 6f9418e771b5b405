package glow_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/iahuang/glow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	assert := assert.New(t)
	src := "func greet(name): str {\n  print(\"hello, \" + name)\n}\n"

	decls, err := glow.Parse(src)
	require.NoError(t, err)

	printer := &glow.AstPrinter{}
	assert.Equal(`[(func greet [name] str (block "print(\"hello, \" + name)"))]`, printer.Print(decls))
}

func TestParseExpression(t *testing.T) {
	node, err := glow.ParseExpression(`log.info("a", x * 2)`)
	require.NoError(t, err)

	printer := &glow.AstPrinter{}
	assert.Equal(t, `(call (. log info) ["a" (* x 2)])`, printer.Print(node))
}

func TestErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := glow.ParseExpression("f(a")
	assert.True(errors.Is(err, glow.ErrNoOperationMatch))

	_, err = glow.Parse("func f(): str { \"x }")
	assert.True(errors.Is(err, glow.ErrUnexpectedEOF))
	var syntaxErr *glow.SyntaxError
	if assert.True(errors.As(err, &syntaxErr)) {
		assert.Equal(glow.UnexpectedEOF, syntaxErr.Kind)
		assert.Equal(1, syntaxErr.Line)
		assert.Equal(17, syntaxErr.Col)
	}
}

func TestConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glow.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contexts:\n  expression: [Boolean, Name]\n"), 0o644))

	cfg, err := glow.LoadConfig(path)
	require.NoError(t, err)

	node, err := glow.ParseExpression("false", glow.WithConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, "false", (&glow.AstPrinter{}).Print(node))
}
