package handler

import "github.com/philipp01105/avlog/core"

// Sink receives one fully rendered native log line. It is the only
// contract a host must implement to consume bridged output.
//
// Log may be called from many native threads at once; implementations
// provide their own synchronisation. It must not retain msg's backing
// memory beyond the call unless msg is a Go string, which it always is.
type Sink interface {
	Log(ctx core.Context, level core.Level, msg string)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(ctx core.Context, level core.Level, msg string)

// Log calls f(ctx, level, msg).
func (f SinkFunc) Log(ctx core.Context, level core.Level, msg string) {
	f(ctx, level, msg)
}

// NopSink discards every line.
type NopSink struct{}

// Log does nothing.
func (NopSink) Log(core.Context, core.Level, string) {}
