package core

import (
	"strconv"
	"strings"
)

// Level is the native severity integer of a log call. Smaller values are
// more severe. Any int is a valid Level and is forwarded unchanged.
type Level int

// Native level values, as defined by libavutil/log.h.
const (
	// LevelQuiet prints nothing.
	LevelQuiet Level = -8
	// LevelPanic precedes a crash of the native library.
	LevelPanic Level = 0
	// LevelFatal is an unrecoverable error.
	LevelFatal Level = 8
	// LevelError is a recoverable error.
	LevelError Level = 16
	// LevelWarning is something that looks wrong and may lead to problems.
	LevelWarning Level = 24
	// LevelInfo is standard information.
	LevelInfo Level = 32
	// LevelVerbose is detailed information.
	LevelVerbose Level = 40
	// LevelDebug is only useful to native library developers.
	LevelDebug Level = 48
	// LevelTrace is extremely verbose debugging.
	LevelTrace Level = 56
)

var levelNames = [...]string{
	"panic", "fatal", "error", "warning", "info", "verbose", "debug", "trace",
}

// String returns the native name of the level. Values between two
// constants are named after the next more severe constant with the
// offset appended, e.g. "info+2"; values outside the known range render
// as "level(N)".
func (l Level) String() string {
	if l == LevelQuiet {
		return "quiet"
	}
	if l < LevelPanic || l >= LevelTrace+8 {
		return "level(" + strconv.Itoa(int(l)) + ")"
	}
	name := levelNames[l/8]
	if off := l % 8; off != 0 {
		return name + "+" + strconv.Itoa(int(off))
	}
	return name
}

// IsKnown reports whether l is exactly one of the named constants.
func (l Level) IsKnown() bool {
	if l == LevelQuiet {
		return true
	}
	return l >= LevelPanic && l <= LevelTrace && l%8 == 0
}

// ParseLevel converts a native level name or a decimal integer to a
// Level. It accepts the names returned by String for the named
// constants, case-insensitively, plus "warn". Unknown input yields
// LevelInfo and false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "quiet":
		return LevelQuiet, true
	case "panic":
		return LevelPanic, true
	case "fatal":
		return LevelFatal, true
	case "error":
		return LevelError, true
	case "warning", "warn":
		return LevelWarning, true
	case "info":
		return LevelInfo, true
	case "verbose":
		return LevelVerbose, true
	case "debug":
		return LevelDebug, true
	case "trace":
		return LevelTrace, true
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return Level(n), true
	}
	return LevelInfo, false
}
