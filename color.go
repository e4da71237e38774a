package slimfmt

import (
	"sync/atomic"

	"github.com/fatih/color"
)

// colorMode is the single process-wide toggle the diagnostic sink
// consults; it sits at the sink boundary, not inside the formatting
// engine itself, and must be safe to read from any goroutine.
var colorMode atomic.Bool

// SetColorMode sets whether diagnostic output is colorized, returning
// the previous setting. It mirrors the teacher's SetColor, generalized
// to an atomic swap since this value may be read from a different
// goroutine than the one that sets it.
func SetColorMode(enabled bool) bool {
	prev := colorMode.Swap(enabled)
	color.NoColor = !enabled
	return prev
}

// colorModeEnabled reports the current color mode.
func colorModeEnabled() bool {
	return colorMode.Load()
}

func init() {
	colorMode.Store(!color.NoColor)
}
