//go:build cgo

package bridge

/*
#include "avlog_bridge.h"

// Matches the av_log_set_callback signature.
static void avlog_bridge_callback(void *avcl, int level, const char *fmt, va_list vl) {
	avlog_bridge_render(malloc, avcl, level, fmt, vl);
}

static void *avlog_callback_ptr(void) {
	return (void *)avlog_bridge_callback;
}
*/
import "C"

import "unsafe"

// NativeCallback returns a pointer to the C function
//
//	void callback(void *avcl, int level, const char *fmt, va_list vl)
//
// for registration with the native library, e.g. av_log_set_callback.
// The callback renders with vsnprintf into a LineCapacity buffer and
// forwards to the sink set with SetNativeSink.
func NativeCallback() (unsafe.Pointer, error) {
	return C.avlog_callback_ptr(), nil
}
