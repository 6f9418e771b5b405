package glow

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	r := NewSimpleReporter(io.Discard)

	assert.False(t, r.HadError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := errors.New("Test error")
	_, err2 := NewParser("a b", nil).ParseExpression()

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", err1, err2), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(errors.New("Test error"))

	r.Reset()
	assert.False(t, r.HadError())
}

func TestParserReportsToSimpleReporter(t *testing.T) {
	var out strings.Builder
	r := NewSimpleReporter(&out)

	_, err := NewParser("\"open", r).ParseExpression()

	assert.Error(t, err)
	assert.Equal(t, "[line 1:1] Error at '\"open': unexpected end of input\n", out.String())
}
