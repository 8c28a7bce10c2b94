package bridge

import (
	"errors"
	"sync/atomic"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/handler"
)

// ErrNativeUnavailable is returned by NativeCallback in builds without
// cgo.
var ErrNativeUnavailable = errors.New("bridge: native callback requires cgo")

type nativeTarget struct {
	sink handler.Sink
}

var nativeSink atomic.Pointer[nativeTarget]

// SetNativeSink sets the sink that lines from the native callback are
// forwarded to. Until it is called, or after it is called with nil,
// native lines are rendered and dropped.
func SetNativeSink(s handler.Sink) {
	if s == nil {
		nativeSink.Store(nil)
		return
	}
	nativeSink.Store(&nativeTarget{sink: s})
}

func forwardNative(ctx core.Context, level core.Level, msg string) {
	if t := nativeSink.Load(); t != nil {
		t.sink.Log(ctx, level, msg)
	}
}
