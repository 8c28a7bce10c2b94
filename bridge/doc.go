// Package bridge adapts printf-style native log calls into plain
// (context, level, message) calls on a handler.Sink.
//
// Two entry points share the same contract. NativeCallback (cgo builds)
// returns a C function with the av_log callback signature that renders
// the va_list with vsnprintf on the native side and hands Go only the
// finished text. Bridge.RenderAndForward does the same for callers that
// already live in Go, rendering with formatter.Render.
//
// Every call renders into its own LineCapacity buffer, acquired on entry
// and released before the call returns, so concurrent calls never share
// memory and nothing outlives the call. Lines longer than
// LineCapacity-1 bytes are truncated. If a buffer cannot be acquired
// the line is dropped silently: logging never fails its caller.
//
// Context and level are forwarded as received. The bridge does not
// filter, route, queue or reorder lines.
//
// Typical cgo wiring for FFmpeg:
//
//	bridge.SetNativeSink(handler.NewZapSink(logger))
//	cb, err := bridge.NativeCallback()
//	if err == nil {
//		C.av_log_set_callback((*[0]byte)(cb))
//	}
package bridge
