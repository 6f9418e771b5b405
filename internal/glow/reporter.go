package glow

import (
	"fmt"
	"io"
)

// Reporter receives every error that aborts a parse, before the parser
// returns it. One reporter can be shared by the parsers of several source
// units; Reset clears HadError between them.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter prints each syntax error on its own line, in the
// "[line L:C] Error at '...'" form, and remembers that one was seen.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
