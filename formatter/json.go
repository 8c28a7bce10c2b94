package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"
	"unicode/utf8"
)

// JSONFormatter formats lines as one JSON object per line
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats a line as JSON
func (f *JSONFormatter) Format(line *Line) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(line, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a line as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(line *Line, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(line, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(line *Line, buf *bytes.Buffer) {
	buf.WriteString(`{"time":"`)
	buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(`","level":"`)
	appendJSONString(buf, line.Level.String())
	buf.WriteString(`","level_value":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(line.Level), 10))

	if f.IncludeContext {
		buf.WriteString(`,"context":"`)
		buf.Write(line.Context.AppendText(buf.AvailableBuffer()))
		buf.WriteByte('"')
	}

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, CleanMessage(line.Message))
	buf.WriteString("\"}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer.
// Invalid UTF-8 is written as \ufffd so the output is always valid JSON.
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == utf8.RuneError && size == 1 {
				buf.WriteString(s[start:i])
				buf.WriteString(`\ufffd`)
				i++
				start = i
				continue
			}
			i += size
			continue
		}
		if c >= 0x20 && c != '"' && c != '\\' {
			i++
			continue
		}
		buf.WriteString(s[start:i])
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		i++
		start = i
	}
	buf.WriteString(s[start:])
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
