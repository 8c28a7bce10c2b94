package core

import "strconv"

// Context is the opaque handle a native library passes along with each
// log call. It is usually a pointer to the library's class context but
// is never dereferenced here.
type Context uintptr

// IsZero reports whether the handle is the native NULL value.
func (c Context) IsZero() bool {
	return c == 0
}

// String formats the handle the way %p does: "0x" followed by lowercase
// hex, or "(nil)" for a zero handle.
func (c Context) String() string {
	if c == 0 {
		return "(nil)"
	}
	return string(c.AppendText(nil))
}

// AppendText appends the %p rendering of the handle to dst.
func (c Context) AppendText(dst []byte) []byte {
	if c == 0 {
		return append(dst, "(nil)"...)
	}
	dst = append(dst, '0', 'x')
	return strconv.AppendUint(dst, uint64(c), 16)
}
