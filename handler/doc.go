// Package handler provides the Sink interface and its built-in
// implementations for consuming lines forwarded by the bridge.
//
// A Sink receives (context, level, message) and returns nothing. The
// bridge calls it synchronously on the native thread that produced the
// line, exactly once per rendered line, so sinks must be safe for
// concurrent use and should not block for long.
//
// Built-in sinks:
//
//   - ConsoleSink writes through a formatter.Formatter to any io.Writer
//     (default: stderr), coloured when the writer is a terminal.
//   - MultiSink fans a line out to several sinks.
//   - SlogSink, ZapSink, ZerologSink and LogrusSink forward to the
//     respective logging libraries, mapping native levels with
//     SlogLevel, ZapLevel, ZerologLevel and LogrusLevel.
//
// SlogHandler goes the other way: it is a slog.Handler that feeds a
// Sink, letting host code share the native library's output.
package handler
