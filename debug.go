package headerview

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOutput receives development diagnostics. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// debugStats holds per-frame timing metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	submitTime   time.Duration
	commandCount int
}

// debugLog prints timing stats to the debug output.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOutput,
		"[headerview] traverse: %v | submit: %v | total: %v | commands: %d\n",
		stats.traverseTime, stats.submitTime, stats.traverseTime+stats.submitTime, stats.commandCount)
}

// debugWarn prints a development advisory when enabled is set. Advisories
// never change behavior.
func debugWarn(enabled bool, format string, args ...any) {
	if !enabled {
		return
	}
	_, _ = fmt.Fprintf(debugOutput, "[headerview] warning: "+format+"\n", args...)
}
