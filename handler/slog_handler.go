package handler

import (
	"context"
	"log/slog"
	"strings"
)

// SlogHandler is a slog.Handler that renders records as plain lines and
// hands them to a Sink, so Go code and the native library can share one
// output. Records carry a zero Context.
type SlogHandler struct {
	sink  Sink
	level slog.Leveler
	attrs string
	group string
}

// NewSlogHandler creates a slog.Handler writing to sink. Records below
// level are discarded; a nil level means slog.LevelInfo.
func NewSlogHandler(sink Sink, level slog.Leveler) *SlogHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &SlogHandler{sink: sink, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record as "message k=v ..." and forwards it.
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.sink.Log(0, NativeLevel(record.Level), b.String())
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	return &SlogHandler{sink: h.sink, level: h.level, attrs: b.String(), group: h.group}
}

// WithGroup returns a new SlogHandler with the given group name.
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &SlogHandler{sink: h.sink, level: h.level, attrs: h.attrs, group: group}
}

// appendAttr writes " key=value", flattening groups with dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
