package handler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
)

// SlogSink forwards native lines to a *slog.Logger. The native context
// and level travel as the "context" and "level_value" attributes.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink backed by l (default: slog.Default()).
func NewSlogSink(l *slog.Logger) *SlogSink {
	if l == nil {
		l = slog.Default()
	}
	return &SlogSink{logger: l}
}

// Log implements Sink.
func (s *SlogSink) Log(ctx core.Context, level core.Level, msg string) {
	lvl := SlogLevel(level)
	if !s.logger.Enabled(context.Background(), lvl) {
		return
	}
	s.logger.LogAttrs(context.Background(), lvl, formatter.CleanMessage(msg),
		slog.String("context", ctx.String()),
		slog.Int("level_value", int(level)),
	)
}
