package glow

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func group(nodes ...Node) *NodeGroup {
	return NewNodeGroup(nodes)
}

func whole(text string) Span {
	return Span{0, len(text)}
}
