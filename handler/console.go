package handler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/avlog/core"
	"github.com/philipp01105/avlog/formatter"
)

// ConsoleSink writes formatted lines to an io.Writer (default: stderr)
type ConsoleSink struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	contextName     ContextName
	mu              sync.Mutex
	stats           *Stats
}

// ConsoleConfig holds configuration for the console sink
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter, coloured on terminals)
	Formatter formatter.Formatter
	// IncludeContext adds the native context handle to the default formatter
	IncludeContext bool
	// DisableColor turns off colour even when Writer is a terminal
	DisableColor bool
	// ContextName, if set, puts "[name] " in front of each message
	ContextName ContextName
}

// NewConsoleSink creates a new console sink
func NewConsoleSink(cfg ConsoleConfig) *ConsoleSink {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{
			IncludeContext: cfg.IncludeContext,
			Color:          !cfg.DisableColor && isTerminal(cfg.Writer),
		})
	}
	core.StartCoarseClock()

	s := &ConsoleSink{
		writer:      cfg.Writer,
		formatter:   cfg.Formatter,
		contextName: cfg.ContextName,
		stats:       NewStats(),
	}

	// Cache WriterFormatter for the copy-free path
	s.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return s
}

// Log formats and writes one line. Write failures are counted in Stats.
func (s *ConsoleSink) Log(ctx core.Context, level core.Level, msg string) {
	line := formatter.Line{
		Time:    core.CoarseNow(),
		Context: ctx,
		Level:   level,
		Message: s.contextName.prefix(ctx, msg),
	}
	if err := s.write(&line); err != nil {
		s.stats.IncrementFailed()
		return
	}
	s.stats.IncrementProcessed()
}

func (s *ConsoleSink) write(line *formatter.Line) error {
	if s.writerFormatter != nil {
		s.mu.Lock()
		err := s.writerFormatter.FormatTo(line, s.writer)
		s.mu.Unlock()
		return err
	}

	data, err := s.formatter.Format(line)
	if err != nil {
		return err
	}

	s.mu.Lock()
	_, err = s.writer.Write(data)
	s.mu.Unlock()
	return err
}

// Stats returns a snapshot of the current statistics
func (s *ConsoleSink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
