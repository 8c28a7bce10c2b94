package bridge

import (
	"sync"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
	"github.com/philipp01105/avlog/handler"
)

// Bridge renders printf-style log calls and forwards the finished line
// to a Sink. It holds no per-call state and is safe for concurrent use.
type Bridge struct {
	sink  handler.Sink
	alloc Allocator
}

// Config holds configuration for a Bridge
type Config struct {
	// Sink receives every rendered line (default: ConsoleSink on stderr)
	Sink handler.Sink
	// Allocator provides line buffers (default: HeapAllocator)
	Allocator Allocator
}

// New creates a Bridge
func New(cfg Config) *Bridge {
	if cfg.Sink == nil {
		cfg.Sink = handler.NewConsoleSink(handler.ConsoleConfig{})
	}
	if cfg.Allocator == nil {
		cfg.Allocator = NewHeapAllocator()
	}
	return &Bridge{sink: cfg.Sink, alloc: cfg.Allocator}
}

// Sink returns the sink lines are forwarded to.
func (b *Bridge) Sink() handler.Sink {
	return b.sink
}

// RenderAndForward renders format against args with C printf semantics
// into a LineCapacity buffer and calls the sink once with ctx and level
// unchanged. Output past LineCapacity-1 bytes is dropped.
//
// If no buffer can be acquired the line is dropped without a sink call
// and without an error: logging must not disturb the caller. The buffer
// is released exactly once on every other path, including a panicking
// sink, whose panic propagates.
func (b *Bridge) RenderAndForward(ctx core.Context, level core.Level, format string, args ...any) {
	buf, err := b.alloc.Acquire(LineCapacity)
	if err != nil {
		return
	}
	defer b.alloc.Release(buf)
	if cap(buf) < LineCapacity {
		return
	}

	var w formatter.Buffer
	w.Reset(buf[:0:LineCapacity])
	formatter.Render(&w, format, args...)

	b.sink.Log(ctx, level, w.String())
}

var (
	defaultBridge *Bridge
	defaultMu     sync.RWMutex
)

func init() {
	defaultBridge = New(Config{})
}

// Default returns the default bridge
func Default() *Bridge {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultBridge
}

// SetDefault sets the default bridge
func SetDefault(b *Bridge) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultBridge = b
}

// Log renders and forwards a line through the default bridge
func Log(ctx core.Context, level core.Level, format string, args ...any) {
	Default().RenderAndForward(ctx, level, format, args...)
}
