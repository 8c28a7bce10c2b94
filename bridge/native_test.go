//go:build cgo

package bridge

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/philipp01105/avlog/core"
)

func withNativeSink(t *testing.T) *recorder {
	t.Helper()
	rec := &recorder{}
	SetNativeSink(rec)
	t.Cleanup(func() { SetNativeSink(nil) })
	return rec
}

func TestNativeCallback(t *testing.T) {
	cb, err := NativeCallback()
	if err != nil {
		t.Fatalf("NativeCallback() error = %v", err)
	}
	if cb == nil {
		t.Fatal("NativeCallback() returned nil")
	}
}

func TestNative_Example(t *testing.T) {
	rec := withNativeSink(t)

	newNativeEmitter().emitInt(0x7f00, core.LevelError, "decode error: %d frames dropped", 42)

	lines := rec.all()
	want := record{0x7f00, core.LevelError, "decode error: 42 frames dropped"}
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("got %+v, want [%+v]", lines, want)
	}
}

func TestNative_Conversions(t *testing.T) {
	rec := withNativeSink(t)

	native := newNativeEmitter()
	native.emitString(0, core.LevelInfo, "[%-6s]", "h264")
	native.emitDouble(0, core.LevelInfo, "%.2f fps", 29.97)

	lines := rec.all()
	if len(lines) != 2 || lines[0].msg != "[h264  ]" || lines[1].msg != "29.97 fps" {
		t.Errorf("got %+v", lines)
	}
}

func TestNative_Truncation(t *testing.T) {
	rec := withNativeSink(t)
	long := strings.Repeat("q", 70000)

	newNativeEmitter().emitString(0, core.LevelInfo, "%s", long)

	lines := rec.all()
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].msg != long[:LineCapacity-1] {
		t.Errorf("message length = %d, want %d", len(lines[0].msg), LineCapacity-1)
	}
}

func TestNative_LevelAndContextPassThrough(t *testing.T) {
	rec := withNativeSink(t)

	native := newNativeEmitter()
	native.emitInt(0, -12345, "%d", 1)
	native.emitInt(core.Context(^uintptr(0)), 1<<30, "%d", 2)

	lines := rec.all()
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0].ctx != 0 || lines[0].level != -12345 {
		t.Errorf("first line forwarded (%v, %d)", lines[0].ctx, lines[0].level)
	}
	if lines[1].ctx != core.Context(^uintptr(0)) || lines[1].level != 1<<30 {
		t.Errorf("second line forwarded (%v, %d)", lines[1].ctx, lines[1].level)
	}
}

func TestNative_AllocationFailure(t *testing.T) {
	rec := withNativeSink(t)

	noMemoryEmitter().emitInt(0, core.LevelError, "%d", 1)

	if n := len(rec.all()); n != 0 {
		t.Errorf("sink called %d times after allocation failure", n)
	}
}

func TestNative_NoSink(t *testing.T) {
	SetNativeSink(nil)
	// Must render and drop without touching a sink.
	newNativeEmitter().emitInt(0, core.LevelInfo, "%d", 1)
}

func TestNative_Concurrent(t *testing.T) {
	rec := withNativeSink(t)
	native := newNativeEmitter()
	const workers, perWorker = 32, 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				native.emitInt(core.Context(w+1), core.Level(w), "line %d", w*perWorker+i)
			}
		}(w)
	}
	wg.Wait()

	lines := rec.all()
	if len(lines) != workers*perWorker {
		t.Fatalf("got %d lines, want %d", len(lines), workers*perWorker)
	}
	seen := make(map[string]bool, len(lines))
	for _, l := range lines {
		var n int
		if _, err := fmt.Sscanf(l.msg, "line %d", &n); err != nil {
			t.Fatalf("unexpected message %q", l.msg)
		}
		w := n / perWorker
		if l.ctx != core.Context(w+1) || l.level != core.Level(w) {
			t.Errorf("%q forwarded with (%v, %d), want (%v, %d)", l.msg, l.ctx, l.level, core.Context(w+1), w)
		}
		if seen[l.msg] {
			t.Errorf("%q forwarded twice", l.msg)
		}
		seen[l.msg] = true
	}
}
