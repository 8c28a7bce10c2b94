//go:build !cgo

package bridge

import "unsafe"

// NativeCallback is unavailable without cgo: a va_list can only be
// consumed by C code.
func NativeCallback() (unsafe.Pointer, error) {
	return nil, ErrNativeUnavailable
}
