package headerview

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

// captureDebug redirects debug output to a buffer for the test's duration.
func captureDebug(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := debugOutput
	debugOutput = &buf
	t.Cleanup(func() { debugOutput = prev })
	return &buf
}

func TestDebugWarnEnabled(t *testing.T) {
	buf := captureDebug(t)

	debugWarn(true, "layer %s omitted", "touchable")

	got := buf.String()
	want := "[headerview] warning: layer touchable omitted\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDebugWarnDisabled(t *testing.T) {
	buf := captureDebug(t)

	debugWarn(false, "should not appear")

	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestDebugLogOnlyInDebugMode(t *testing.T) {
	buf := captureDebug(t)
	s := NewScene()
	stats := debugStats{traverseTime: time.Millisecond, submitTime: time.Millisecond, commandCount: 3}

	s.debugLog(stats)
	if buf.Len() != 0 {
		t.Fatalf("output without debug mode = %q, want empty", buf.String())
	}

	s.SetDebugMode(true)
	s.debugLog(stats)
	got := buf.String()
	if !strings.HasPrefix(got, "[headerview] traverse:") {
		t.Errorf("output = %q, want [headerview] traverse prefix", got)
	}
	if !strings.Contains(got, "commands: 3") {
		t.Errorf("output = %q, want command count", got)
	}
}
