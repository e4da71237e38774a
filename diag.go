package slimfmt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

var stderrAssertMode atomic.Bool

var fprintAssertLabel = color.New(color.FgRed).FprintFunc()
var fprintAssertExpr = color.New(color.Faint).FprintFunc()

// assertHandler renders one line per diagnostic in the fixed shape
// "In <fn>:<line>:\n  <expression>", resolving the caller's position
// from the record's PC the way the teacher's AddSource option does.
type assertHandler struct {
	w io.Writer
}

func newAssertHandler(w io.Writer) *assertHandler {
	return &assertHandler{w: w}
}

func (h *assertHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *assertHandler) Handle(_ context.Context, r slog.Record) error {
	fn, line := "unknown", 0
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		if f, _ := frames.Next(); f.Function != "" {
			fn = filepath.Base(f.Function)
			line = f.Line
		}
	}
	fprintAssertLabel(h.w, fmt.Sprintf("In %s:%d:\n", fn, line))
	fprintAssertExpr(h.w, fmt.Sprintf("  %s\n", r.Message))
	return nil
}

func (h *assertHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *assertHandler) WithGroup(_ string) slog.Handler      { return h }

var diagHandler slog.Handler = newAssertHandler(colorable.NewColorableStderr())

// EnableStderrAssert turns STDERR_ASSERT mode on or off. It is off by
// default, in which case assertf never prints.
func EnableStderrAssert(enabled bool) {
	stderrAssertMode.Store(enabled)
}

func stderrAssertEnabled() bool {
	return stderrAssertMode.Load()
}

// assertf is the engine's fire-and-forget diagnostic hook. A false
// cond with STDERR_ASSERT mode enabled prints one diagnostic line;
// either way formatting continues, since a malformed spec never
// aborts a format call.
func assertf(cond bool, expr string) {
	if cond || !stderrAssertEnabled() {
		return
	}
	pc, _, _, _ := runtime.Caller(1)
	r := slog.NewRecord(time.Time{}, slog.LevelError, expr, pc)
	_ = diagHandler.Handle(context.Background(), r)
}
