package handler

import (
	"log/slog"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/avlog/core"
)

// SlogLevelTrace is the slog level used for native trace output.
const SlogLevelTrace = slog.LevelDebug - 4

// Native levels are grouped into bands by the next more severe named
// constant. Panic and fatal map to the host's error level: a native
// library reporting a fatal condition must not terminate the host.

// SlogLevel maps a native level onto slog.
func SlogLevel(l core.Level) slog.Level {
	switch {
	case l <= core.LevelError:
		return slog.LevelError
	case l <= core.LevelWarning:
		return slog.LevelWarn
	case l <= core.LevelInfo:
		return slog.LevelInfo
	case l <= core.LevelDebug:
		return slog.LevelDebug
	default:
		return SlogLevelTrace
	}
}

// NativeLevel maps a slog level back onto the native scale.
func NativeLevel(l slog.Level) core.Level {
	switch {
	case l >= slog.LevelError:
		return core.LevelError
	case l >= slog.LevelWarn:
		return core.LevelWarning
	case l >= slog.LevelInfo:
		return core.LevelInfo
	case l >= slog.LevelDebug:
		return core.LevelDebug
	default:
		return core.LevelTrace
	}
}

// ZapLevel maps a native level onto zap. Zap has no trace level.
func ZapLevel(l core.Level) zapcore.Level {
	switch {
	case l <= core.LevelError:
		return zapcore.ErrorLevel
	case l <= core.LevelWarning:
		return zapcore.WarnLevel
	case l <= core.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// ZerologLevel maps a native level onto zerolog.
func ZerologLevel(l core.Level) zerolog.Level {
	switch {
	case l <= core.LevelError:
		return zerolog.ErrorLevel
	case l <= core.LevelWarning:
		return zerolog.WarnLevel
	case l <= core.LevelInfo:
		return zerolog.InfoLevel
	case l <= core.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// LogrusLevel maps a native level onto logrus.
func LogrusLevel(l core.Level) logrus.Level {
	switch {
	case l <= core.LevelError:
		return logrus.ErrorLevel
	case l <= core.LevelWarning:
		return logrus.WarnLevel
	case l <= core.LevelInfo:
		return logrus.InfoLevel
	case l <= core.LevelDebug:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
