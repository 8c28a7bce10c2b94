//go:build cgo

package bridge

// #include <stdlib.h>
import "C"

import (
	"unsafe"

	"github.com/philipp01105/avlog/core"
)

// Kept apart from native.go: a file with //export may only declare in
// its preamble.

//export avlogBridgeForward
func avlogBridgeForward(avcl unsafe.Pointer, level C.int, line *C.char) {
	msg := C.GoString(line)
	C.free(unsafe.Pointer(line))
	forwardNative(core.Context(uintptr(avcl)), core.Level(level), msg)
}
