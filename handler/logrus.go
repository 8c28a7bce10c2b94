package handler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
)

// LogrusSink forwards native lines to a *logrus.Logger.
type LogrusSink struct {
	logger *logrus.Logger
}

// NewLogrusSink creates a sink backed by l (default: logrus.StandardLogger()).
func NewLogrusSink(l *logrus.Logger) *LogrusSink {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusSink{logger: l}
}

// Log implements Sink.
func (s *LogrusSink) Log(ctx core.Context, level core.Level, msg string) {
	lvl := LogrusLevel(level)
	if !s.logger.IsLevelEnabled(lvl) {
		return
	}
	s.logger.WithFields(logrus.Fields{
		"context":     ctx.String(),
		"level_value": int(level),
	}).Log(lvl, formatter.CleanMessage(msg))
}
