package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/avlog/core"
)

// TextFormatter formats lines as human-readable text:
//
//	2026-01-15T12:00:00Z [error] [0x7f3a10] decode error: 42 frames dropped
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a line as text
func (f *TextFormatter) Format(line *Line) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(line, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a line and writes it directly to the writer
func (f *TextFormatter) FormatTo(line *Line, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(line, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

const colorReset = "\x1b[0m"

// levelColor picks an ANSI colour by severity band.
func levelColor(l core.Level) string {
	switch {
	case l <= core.LevelFatal:
		return "\x1b[1;31m"
	case l <= core.LevelError:
		return "\x1b[31m"
	case l <= core.LevelWarning:
		return "\x1b[33m"
	case l <= core.LevelInfo:
		return "\x1b[32m"
	default:
		return "\x1b[90m"
	}
}

func (f *TextFormatter) formatToBuffer(line *Line, buf *bytes.Buffer) {
	buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" [")
	if f.Color {
		buf.WriteString(levelColor(line.Level))
		buf.WriteString(line.Level.String())
		buf.WriteString(colorReset)
	} else {
		buf.WriteString(line.Level.String())
	}
	buf.WriteString("] ")

	if f.IncludeContext {
		buf.WriteByte('[')
		buf.Write(line.Context.AppendText(buf.AvailableBuffer()))
		buf.WriteString("] ")
	}

	buf.WriteString(CleanMessage(line.Message))
	buf.WriteByte('\n')
}
