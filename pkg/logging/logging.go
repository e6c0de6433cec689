// Package logging provides the compact slog handler used by the CLI for
// out-of-band diagnostics (collaborator failures, startup notices), plus
// a bounded ring retaining recent log lines.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// CompactHandler is an slog.Handler that writes single-line
// "LEVEL message key=value" records, keeping REPL output readable.
type CompactHandler struct {
	mu     sync.Mutex
	w      io.Writer
	level  slog.Level
	ring   *Ring
	attrs  []slog.Attr
	groups []string
}

// NewCompactHandler creates a handler writing records at or above level to w.
func NewCompactHandler(w io.Writer, level slog.Level) *CompactHandler {
	return &CompactHandler{w: w, level: level}
}

// NewLogger returns a slog.Logger backed by a CompactHandler.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewCompactHandler(w, level))
}

// SetRing attaches a ring that retains each handled record's formatted
// line. Derived handlers from WithAttrs/WithGroup share the ring.
func (h *CompactHandler) SetRing(r *Ring) {
	h.ring = r
}

// Enabled implements slog.Handler.
func (h *CompactHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle implements slog.Handler.
func (h *CompactHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Level.String())
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%s", a.Key, a.Value.String())
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if len(h.groups) > 0 {
			key = strings.Join(h.groups, ".") + "." + key
		}
		fmt.Fprintf(&b, " %s=%s", key, a.Value.String())
		return true
	})
	line := b.String()
	if h.ring != nil {
		h.ring.Add(line)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

// WithAttrs implements slog.Handler.
func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CompactHandler{
		w:      h.w,
		level:  h.level,
		ring:   h.ring,
		attrs:  append(append([]slog.Attr{}, h.attrs...), attrs...),
		groups: h.groups,
	}
}

// WithGroup implements slog.Handler.
func (h *CompactHandler) WithGroup(name string) slog.Handler {
	return &CompactHandler{
		w:      h.w,
		level:  h.level,
		ring:   h.ring,
		attrs:  h.attrs,
		groups: append(append([]string{}, h.groups...), name),
	}
}

// ParseLevel maps a textual level name to a slog.Level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
