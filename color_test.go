package slimfmt

import "testing"

func TestSetColorModeReturnsPrevious(t *testing.T) {
	orig := colorModeEnabled()
	defer SetColorMode(orig)

	SetColorMode(true)
	prev := SetColorMode(false)
	if !prev {
		t.Errorf("expected previous value true, got %v", prev)
	}
	if colorModeEnabled() {
		t.Errorf("expected color mode to be false after swap")
	}
}
