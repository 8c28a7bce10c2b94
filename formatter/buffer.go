package formatter

// Buffer is a fixed-capacity byte sink. It stores at most cap-1 bytes of
// the slice it was reset with, keeping the final slot for the NUL a C
// consumer would expect, and silently drops everything past that while
// still counting it.
//
// The zero Buffer stores nothing. A Buffer is not safe for concurrent
// use.
type Buffer struct {
	b     []byte
	limit int
	total int
}

// NewBuffer returns a Buffer that renders into b's backing array.
func NewBuffer(b []byte) *Buffer {
	w := new(Buffer)
	w.Reset(b)
	return w
}

// Reset discards any content and makes the Buffer render into b's
// backing array, from index 0 up to cap(b)-1.
func (w *Buffer) Reset(b []byte) {
	w.b = b[:0]
	w.limit = cap(b) - 1
	if w.limit < 0 {
		w.limit = 0
	}
	w.total = 0
}

// Bytes returns the stored prefix. It aliases the backing array.
func (w *Buffer) Bytes() []byte { return w.b }

// String returns a copy of the stored prefix.
func (w *Buffer) String() string { return string(w.b) }

// Len returns the number of bytes stored.
func (w *Buffer) Len() int { return len(w.b) }

// Limit returns the maximum number of bytes the Buffer can store.
func (w *Buffer) Limit() int { return w.limit }

// Total returns the number of bytes written so far, stored or not. This
// is the value vsnprintf would return.
func (w *Buffer) Total() int { return w.total }

// Truncated reports whether any written byte was dropped.
func (w *Buffer) Truncated() bool { return w.total > len(w.b) }

// Terminated returns the stored prefix followed by a NUL byte, still
// inside the backing array.
func (w *Buffer) Terminated() []byte {
	if cap(w.b) == len(w.b) {
		return append(w.b[:len(w.b):len(w.b)], 0)
	}
	return append(w.b, 0)
}

// Write implements io.Writer. It never fails; bytes past the limit are
// counted and dropped.
func (w *Buffer) Write(p []byte) (int, error) {
	n := len(p)
	w.total += n
	if room := w.limit - len(w.b); room > 0 {
		if len(p) > room {
			p = p[:room]
		}
		w.b = append(w.b, p...)
	}
	return n, nil
}

// WriteString implements io.StringWriter with the same truncation rules
// as Write.
func (w *Buffer) WriteString(s string) (int, error) {
	n := len(s)
	w.total += n
	if room := w.limit - len(w.b); room > 0 {
		if len(s) > room {
			s = s[:room]
		}
		w.b = append(w.b, s...)
	}
	return n, nil
}

// WriteByte implements io.ByteWriter.
func (w *Buffer) WriteByte(c byte) error {
	w.total++
	if len(w.b) < w.limit {
		w.b = append(w.b, c)
	}
	return nil
}

// writeRepeat writes n copies of c without materialising them past the
// limit.
func (w *Buffer) writeRepeat(c byte, n int) {
	if n <= 0 {
		return
	}
	w.total += n
	room := w.limit - len(w.b)
	if n > room {
		n = room
	}
	for ; n > 0; n-- {
		w.b = append(w.b, c)
	}
}
