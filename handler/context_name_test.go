package handler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/philipp01105/avlog/core"
)

func itemNames(names map[core.Context]string) ContextName {
	return func(ctx core.Context) string { return names[ctx] }
}

func TestWithContextName(t *testing.T) {
	rec := &recorder{}
	var calls []core.Context
	name := func(ctx core.Context) string {
		calls = append(calls, ctx)
		return map[core.Context]string{0x10: "h264"}[ctx]
	}
	s := WithContextName(rec, name)

	s.Log(0x10, core.LevelError, "decode error\n")
	s.Log(0x20, core.LevelInfo, "unnamed")
	s.Log(0, core.LevelInfo, "no context")

	lines := rec.all()
	want := []record{
		{0x10, core.LevelError, "[h264] decode error\n"},
		{0x20, core.LevelInfo, "unnamed"},
		{0, core.LevelInfo, "no context"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
	if len(calls) != 2 {
		t.Errorf("resolver called for %v, want only non-zero contexts", calls)
	}
}

func TestWithContextName_Nil(t *testing.T) {
	rec := &recorder{}
	if s := WithContextName(rec, nil); s != Sink(rec) {
		t.Errorf("WithContextName(next, nil) = %T, want next", s)
	}
}

func TestConsoleSink_ContextName(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(ConsoleConfig{
		Writer:      &buf,
		ContextName: itemNames(map[core.Context]string{0x10: "mov,mp4"}),
	})

	s.Log(0x10, core.LevelWarning, "stream 1: unknown codec  \n")

	if !strings.HasSuffix(buf.String(), "[warning] [mov,mp4] stream 1: unknown codec\n") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestConsoleSink_InvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsoleSink(ConsoleConfig{Writer: &buf})

	s.Log(0, core.LevelInfo, "title: \xc3\n")

	if !strings.HasSuffix(buf.String(), "[info] title: �\n") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
