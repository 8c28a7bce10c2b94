// Package formatter renders text for the avlog bridge.
//
// Render is a C printf implementation that writes into a Buffer, a
// fixed-capacity sink that keeps the longest prefix that fits and
// counts the rest. It is the Go-side counterpart of vsnprintf: given a
// buffer of N bytes it stores at most N-1 bytes and reports the length
// the full expansion would have had.
//
// The Formatter and WriterFormatter interfaces turn a forwarded Line
// into output for the console sink. TextFormatter and JSONFormatter
// implement both and use a pooled bytes.Buffer internally. Buffers larger
// than 64 KiB are not returned to the pool, so a single oversized line
// does not inflate memory for the rest of the process.
package formatter
