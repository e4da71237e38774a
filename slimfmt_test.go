package slimfmt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errWriteFailed = errors.New("write failed")

func TestPrintFlushesToSink(t *testing.T) {
	var out bytes.Buffer
	err := Print(&out, "hi {}", "there")
	assert.NoError(t, err)
	assert.Equal(t, "hi there", out.String())
}

func TestPrintlnAppendsNewline(t *testing.T) {
	var out bytes.Buffer
	err := Println(&out, "hi {}", "there")
	assert.NoError(t, err)
	assert.Equal(t, "hi there\n", out.String())
}

func TestNullDiscardsOutputButStillRuns(t *testing.T) {
	assert.NotPanics(t, func() {
		Null("{%r99}", 1)
	})
}

type erroringWriter struct{}

func (erroringWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

func TestPrintPropagatesSinkError(t *testing.T) {
	err := Print(erroringWriter{}, "hi")
	assert.ErrorIs(t, err, errWriteFailed)
}
