// Package slimfmt is a small, runtime-driven replacement-field text
// formatter: a format string containing brace-delimited fields plus a
// positional sequence of heterogeneous argument values is rendered into
// a buffer and from there to a string or an io.Writer sink.
package slimfmt

import (
	"io"

	"github.com/mattn/go-colorable"
)

func adaptArgs(args []any) []Value {
	if len(args) == 0 {
		return nil
	}
	values := make([]Value, len(args))
	for i, a := range args {
		values[i] = ValueOf(a)
	}
	return values
}

// Format runs the engine against a pooled private buffer and returns a
// freshly copied string.
func Format(format string, args ...any) string {
	buf := getPooledBuf()
	defer buf.Free()
	runFormat(buf, format, adaptArgs(args))
	return buf.String()
}

// Print runs the engine and flushes the result to sink.
func Print(sink io.Writer, format string, args ...any) error {
	buf := getPooledBuf()
	defer buf.Free()
	runFormat(buf, format, adaptArgs(args))
	_, err := buf.WriteTo(sink)
	return err
}

// Println is Print with a trailing '\n' appended before flushing.
func Println(sink io.Writer, format string, args ...any) error {
	buf := getPooledBuf()
	defer buf.Free()
	runFormat(buf, format, adaptArgs(args))
	buf.Push('\n')
	_, err := buf.WriteTo(sink)
	return err
}

// Null runs the engine purely for its diagnostic side effects and
// discards the rendered output.
func Null(format string, args ...any) {
	buf := getPooledBuf()
	defer buf.Free()
	runFormat(buf, format, adaptArgs(args))
}

// StdoutWriter wraps os.Stdout so ANSI color codes render correctly on
// Windows consoles.
func StdoutWriter() io.Writer { return colorable.NewColorableStdout() }

// StderrWriter is StdoutWriter's stderr counterpart.
func StderrWriter() io.Writer { return colorable.NewColorableStderr() }
