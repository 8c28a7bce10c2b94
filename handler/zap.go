package handler

import (
	"go.uber.org/zap"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
)

// ZapSink forwards native lines to a *zap.Logger.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink creates a sink backed by l (default: zap.NewNop()).
func NewZapSink(l *zap.Logger) *ZapSink {
	if l == nil {
		l = zap.NewNop()
	}
	return &ZapSink{logger: l}
}

// Log implements Sink.
func (s *ZapSink) Log(ctx core.Context, level core.Level, msg string) {
	if ce := s.logger.Check(ZapLevel(level), formatter.CleanMessage(msg)); ce != nil {
		ce.Write(
			zap.Stringer("context", ctx),
			zap.Int("level_value", int(level)),
		)
	}
}

// Sync flushes the underlying logger.
func (s *ZapSink) Sync() error {
	return s.logger.Sync()
}
