package slimfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	color.NoColor = true
}

func TestAssertfNoopWhenStderrAssertDisabled(t *testing.T) {
	EnableStderrAssert(false)
	var buf bytes.Buffer
	old := diagHandler
	diagHandler = newAssertHandler(&buf)
	defer func() { diagHandler = old }()

	assertf(false, "should not print")
	if buf.Len() != 0 {
		t.Errorf("expected no diagnostic output, got %q", buf.String())
	}
}

func TestAssertfPrintsWhenEnabled(t *testing.T) {
	EnableStderrAssert(true)
	defer EnableStderrAssert(false)

	var buf bytes.Buffer
	old := diagHandler
	diagHandler = newAssertHandler(&buf)
	defer func() { diagHandler = old }()

	assertf(false, "width overflow")
	out := buf.String()
	if !strings.Contains(out, "width overflow") {
		t.Errorf("expected diagnostic to mention expression, got %q", out)
	}
	if !strings.HasPrefix(out, "In ") {
		t.Errorf("expected diagnostic to start with 'In ', got %q", out)
	}
}

func TestAssertfTrueCondIsNoop(t *testing.T) {
	EnableStderrAssert(true)
	defer EnableStderrAssert(false)

	var buf bytes.Buffer
	old := diagHandler
	diagHandler = newAssertHandler(&buf)
	defer func() { diagHandler = old }()

	assertf(true, "all good")
	if buf.Len() != 0 {
		t.Errorf("expected no output for a true condition, got %q", buf.String())
	}
}
