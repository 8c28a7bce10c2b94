package formatter

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/philipp01105/avlog/core"
)

// Line is one forwarded log line as presented to a line formatter.
type Line struct {
	Time    time.Time
	Context core.Context
	Level   core.Level
	Message string
}

// Formatter defines the interface for line formatters
type Formatter interface {
	// Format formats a line into bytes
	Format(line *Line) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a line and writes it directly to the writer
	FormatTo(line *Line, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// IncludeContext adds the native context handle to each line
	IncludeContext bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
	// Color wraps the level in ANSI colour codes (text only)
	Color bool
}

// CleanMessage prepares a native line for output: invalid UTF-8 runs are
// replaced with U+FFFD and trailing whitespace, including the newline
// native libraries end most lines with, is removed. Formatters add their
// own terminator.
func CleanMessage(msg string) string {
	msg = strings.ToValidUTF8(msg, "\uFFFD")
	return strings.TrimRightFunc(msg, unicode.IsSpace)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
