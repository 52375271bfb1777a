package sitefx

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestFrameLoopDebugLog(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	l := NewFrameLoop()
	l.RequestFrame(func(time.Duration) {})
	l.Advance(DefaultFrameInterval)
	if buf.Len() != 0 {
		t.Fatalf("logged without debug mode: %s", buf)
	}

	l.SetDebugMode(true)
	l.Advance(DefaultFrameInterval)
	if !strings.Contains(buf.String(), "msg=frame") || !strings.Contains(buf.String(), "ticks=2") {
		t.Errorf("debug log = %q", buf.String())
	}
}

func TestAttachLogs(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	newTestPage(t, `<span class="counter" data-count-to="many"></span>`, PageConfig{}, true)

	out := buf.String()
	if !strings.Contains(out, "counter skipped") {
		t.Errorf("missing warning for bad counter:\n%s", out)
	}
	if !strings.Contains(out, "sitefx attached") {
		t.Errorf("missing attach summary:\n%s", out)
	}
	if !strings.Contains(out, "starfield disabled") {
		t.Errorf("missing starfield debug line:\n%s", out)
	}
}

func TestSetLoggerNilRestoresSilence(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
