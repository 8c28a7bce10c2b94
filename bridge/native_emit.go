//go:build cgo

package bridge

/*
#include <stdint.h>
#include "avlog_bridge.h"

static void *avlog_no_memory(size_t n) {
	(void)n;
	return NULL;
}

static void avlog_no_memory_callback(void *avcl, int level, const char *fmt, va_list vl) {
	avlog_bridge_render(avlog_no_memory, avcl, level, fmt, vl);
}

static void *avlog_no_memory_callback_ptr(void) {
	return (void *)avlog_no_memory_callback;
}

static void avlog_emit(void *cb, uintptr_t avcl, int level, const char *fmt, ...) {
	va_list vl;
	va_start(vl, fmt);
	((avlog_callback)cb)((void *)avcl, level, fmt, vl);
	va_end(vl);
}

static void avlog_emit_int(void *cb, uintptr_t avcl, int level, const char *fmt, int v) {
	avlog_emit(cb, avcl, level, fmt, v);
}

static void avlog_emit_str(void *cb, uintptr_t avcl, int level, const char *fmt, const char *s) {
	avlog_emit(cb, avcl, level, fmt, s);
}

static void avlog_emit_double(void *cb, uintptr_t avcl, int level, const char *fmt, double d) {
	avlog_emit(cb, avcl, level, fmt, d);
}
*/
import "C"

import (
	"unsafe"

	"github.com/philipp01105/avlog/core"
)

// nativeEmitter calls a C log callback the way a native library does,
// through a real va_list. cgo cannot call variadic C functions, hence
// one method per argument type.
type nativeEmitter struct {
	cb unsafe.Pointer
}

// newNativeEmitter drives the callback returned by NativeCallback.
func newNativeEmitter() nativeEmitter {
	cb, _ := NativeCallback()
	return nativeEmitter{cb: cb}
}

// noMemoryEmitter drives a callback whose allocation always fails.
func noMemoryEmitter() nativeEmitter {
	return nativeEmitter{cb: C.avlog_no_memory_callback_ptr()}
}

func (e nativeEmitter) emitInt(ctx core.Context, level core.Level, format string, v int) {
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))
	C.avlog_emit_int(e.cb, C.uintptr_t(ctx), C.int(level), cf, C.int(v))
}

func (e nativeEmitter) emitString(ctx core.Context, level core.Level, format, s string) {
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	C.avlog_emit_str(e.cb, C.uintptr_t(ctx), C.int(level), cf, cs)
}

func (e nativeEmitter) emitDouble(ctx core.Context, level core.Level, format string, d float64) {
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))
	C.avlog_emit_double(e.cb, C.uintptr_t(ctx), C.int(level), cf, C.double(d))
}
