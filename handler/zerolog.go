package handler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
)

// ZerologSink forwards native lines to a zerolog.Logger.
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink creates a sink backed by l.
func NewZerologSink(l zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: l}
}

// Log implements Sink.
func (s *ZerologSink) Log(ctx core.Context, level core.Level, msg string) {
	s.logger.WithLevel(ZerologLevel(level)).
		Stringer("context", ctx).
		Int("level_value", int(level)).
		Msg(formatter.CleanMessage(msg))
}
