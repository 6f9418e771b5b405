package glow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindNames(t *testing.T) {
	assert := assert.New(t)

	for kind := Kind(0); kind < kindCount; kind++ {
		name := kind.String()
		assert.NotEmpty(name)

		found, ok := KindByName(name)
		assert.True(ok, name)
		assert.Equal(kind, found, name)
	}

	assert.Equal("CommaOp", KindComma.String())
	assert.Equal("Kind(99)", Kind(99).String())

	_, ok := KindByName("Modulo")
	assert.False(ok)
}

func TestEveryKindCanBuild(t *testing.T) {
	for kind := Kind(0); kind < kindCount; kind++ {
		prod := productions[kind]
		assert.NotNil(t, prod.match, kind.String())
		assert.True(t, prod.atom != nil || prod.build != nil, kind.String())
	}
}
