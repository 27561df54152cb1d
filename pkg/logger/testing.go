package logger

import (
	"bytes"
)

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default output and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	ogOut, ogLevel := Default.Out, Default.Level
	tb.Cleanup(func() { Default.Out, Default.Level = ogOut, ogLevel })
	buf := &bytes.Buffer{}
	Default.Out = buf
	return buf
}
