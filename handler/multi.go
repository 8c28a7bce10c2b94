package handler

import "github.com/philipp01105/avlog/core"

// MultiSink sends every line to multiple sinks, in order
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink creates a new multi-sink. Nil sinks are skipped.
func NewMultiSink(sinks ...Sink) *MultiSink {
	m := &MultiSink{sinks: make([]Sink, 0, len(sinks))}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Log forwards the line to every child sink
func (m *MultiSink) Log(ctx core.Context, level core.Level, msg string) {
	for _, s := range m.sinks {
		s.Log(ctx, level, msg)
	}
}
