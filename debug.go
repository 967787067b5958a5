package isometric

import (
	"fmt"
	"os"
)

// Debug enables stderr diagnostics such as the render-before-update
// warning. The package is single-threaded; toggle it before the game loop.
var Debug = true

// warnf prints a diagnostic line to stderr when Debug is enabled.
func warnf(format string, args ...any) {
	if !Debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[isometric] warning: "+format+"\n", args...)
}
