package handler

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
)

type record struct {
	ctx   core.Context
	level core.Level
	msg   string
}

type recorder struct {
	mu    sync.Mutex
	lines []record
}

func (r *recorder) Log(ctx core.Context, level core.Level, msg string) {
	r.mu.Lock()
	r.lines = append(r.lines, record{ctx, level, msg})
	r.mu.Unlock()
}

func (r *recorder) all() []record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]record(nil), r.lines...)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(ConsoleConfig{Writer: &buf, IncludeContext: true})

	s.Log(0x10, core.LevelError, "decode error: 42 frames dropped\n")

	out := buf.String()
	if !strings.Contains(out, "[error] [0x10] decode error: 42 frames dropped\n") {
		t.Errorf("unexpected output: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("non-terminal writer should not be coloured: %q", out)
	}
	if got := s.Stats().ProcessedTotal; got != 1 {
		t.Errorf("ProcessedTotal = %d, want 1", got)
	}
}

func TestConsoleSink_CustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})

	s.Log(0, core.LevelInfo, "opened")

	if !strings.Contains(buf.String(), `"message":"opened"`) {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestConsoleSink_WriteFailure(t *testing.T) {
	s := NewConsoleSink(ConsoleConfig{Writer: failingWriter{}})

	s.Log(0, core.LevelInfo, "lost")

	snap := s.Stats()
	if snap.FailedTotal != 1 || snap.ProcessedTotal != 0 {
		t.Errorf("Stats() = %+v, want one failure", snap)
	}
}

func TestConsoleSink_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(ConsoleConfig{Writer: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Log(0, core.LevelInfo, "line\n")
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "[info] line\n"); got != 50 {
		t.Errorf("got %d complete lines, want 50", got)
	}
}

func TestMultiSink(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	m := NewMultiSink(a, nil, b)

	m.Log(7, core.LevelWarning, "hello")

	for name, r := range map[string]*recorder{"a": a, "b": b} {
		lines := r.all()
		if len(lines) != 1 || lines[0] != (record{7, core.LevelWarning, "hello"}) {
			t.Errorf("sink %s got %+v", name, lines)
		}
	}
}

func TestSinkFunc(t *testing.T) {
	var got record
	var s Sink = SinkFunc(func(ctx core.Context, level core.Level, msg string) {
		got = record{ctx, level, msg}
	})

	s.Log(3, -99, "x")
	if got != (record{3, -99, "x"}) {
		t.Errorf("SinkFunc forwarded %+v", got)
	}
	NopSink{}.Log(1, 2, "ignored")
}
