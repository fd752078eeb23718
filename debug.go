package cursor

import (
	"fmt"
	"os"
)

// frameStats holds per-frame draw-call counts.
// Only logged when the engine is in debug mode.
type frameStats struct {
	clears  int
	fills   int
	glyphs  int
	skipped bool // state was StateDisabled; nothing painted
}

// debugLog prints the last frame's state and draw calls to stderr.
func (e *Engine) debugLog() {
	if !e.debug {
		return
	}
	pos := e.follow.Current
	_, _ = fmt.Fprintf(os.Stderr,
		"[cursor] state: %s | pos: (%.1f, %.1f) | size: %.2f/%.2f | dark: %t\n",
		e.state, pos.X, pos.Y, e.follow.Size, e.follow.TargetSize, e.dark)
	_, _ = fmt.Fprintf(os.Stderr,
		"[cursor] clears: %d | fills: %d | glyphs: %d | skipped: %t\n",
		e.stats.clears, e.stats.fills, e.stats.glyphs, e.stats.skipped)
}

// debugLogMount reports a controller mount decision to stderr.
func debugLogMount(enabled bool, env Environment, err error) {
	if !enabled {
		return
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[cursor] not mounted (viewport %dpx, reduced motion %t): %v\n",
			env.ViewportWidth, env.ReducedMotion, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[cursor] mounted (viewport %dpx)\n", env.ViewportWidth)
}
