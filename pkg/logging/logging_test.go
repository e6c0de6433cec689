package logging

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestCompactHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo)

	log.Warn("config load failed", "path", "startup-config.json")

	got := buf.String()
	if !strings.HasPrefix(got, "WARN config load failed") {
		t.Errorf("unexpected prefix: %q", got)
	}
	if !strings.Contains(got, "path=startup-config.json") {
		t.Errorf("missing attr: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected a single line, got %q", got)
	}
}

func TestCompactHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelWarn)

	log.Info("quiet")
	if buf.Len() != 0 {
		t.Errorf("info record should be filtered, got %q", buf.String())
	}
	log.Error("loud")
	if !strings.Contains(buf.String(), "ERROR loud") {
		t.Errorf("error record missing: %q", buf.String())
	}
}

func TestCompactHandlerGroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo).With("session", "1").WithGroup("cli")

	log.Info("dispatch", "command", "enable")

	got := buf.String()
	if !strings.Contains(got, "session=1") {
		t.Errorf("missing pre-attr: %q", got)
	}
	if !strings.Contains(got, "cli.command=enable") {
		t.Errorf("missing grouped attr: %q", got)
	}
}

func TestRingEvictsOldest(t *testing.T) {
	r := NewRing(3)
	for i := 1; i <= 5; i++ {
		r.Add(fmt.Sprintf("line %d", i))
	}

	want := []string{"line 3", "line 4", "line 5"}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}

	wantLatest := []string{"line 5", "line 4"}
	if got := r.Latest(2); !reflect.DeepEqual(got, wantLatest) {
		t.Errorf("Latest(2) = %v, want %v", got, wantLatest)
	}
	if got := r.Latest(10); len(got) != 3 {
		t.Errorf("Latest(10) returned %d lines, want 3", len(got))
	}
}

func TestRingEmptyAndMinimumSize(t *testing.T) {
	r := NewRing(0)
	if got := r.Lines(); got != nil {
		t.Errorf("empty ring Lines() = %v, want nil", got)
	}
	r.Add("a")
	r.Add("b")
	if got := r.Lines(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("size-clamped ring Lines() = %v, want [b]", got)
	}
}

func TestHandlerFeedsRing(t *testing.T) {
	handler := NewCompactHandler(io.Discard, slog.LevelInfo)
	ring := NewRing(8)
	handler.SetRing(ring)
	log := slog.New(handler)

	log.Debug("filtered out")
	log.Warn("config load failed", "path", "startup-config.json")

	lines := ring.Lines()
	if len(lines) != 1 {
		t.Fatalf("ring holds %d lines, want 1: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "WARN config load failed") {
		t.Errorf("unexpected ring line: %q", lines[0])
	}
	if strings.Contains(lines[0], "\n") {
		t.Errorf("ring line should not carry a newline: %q", lines[0])
	}

	// Derived loggers share the same ring.
	log.WithGroup("cli").With("session", "1").Info("dispatch")
	if got := ring.Latest(1); len(got) != 1 || !strings.HasPrefix(got[0], "INFO dispatch") {
		t.Errorf("derived handler did not feed the ring: %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
