//go:build !cgo

package xdosys

import (
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
)

// Stubs for builds without cgo. The safe layer's unit tests run
// against a fake native layer and never reach these; calling any of
// them outside a cgo build is a programming error.

func unavailable() {
	panic("xdosys: built without cgo; libxdo is unavailable")
}

func New(display *byte) unsafe.Pointer {
	unavailable()
	return nil
}

func Free(xdo unsafe.Pointer) {
	unavailable()
}

func GetActiveWindow(xdo unsafe.Pointer) (xproto.Window, int) {
	unavailable()
	return 0, 0
}

func GetWindowName(xdo unsafe.Pointer, win xproto.Window) (name unsafe.Pointer, length, nameType, ret int) {
	unavailable()
	return nil, 0, 0, 0
}

func SendKeysequence(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	unavailable()
	return 0
}

func SendKeysequenceDown(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	unavailable()
	return 0
}

func SendKeysequenceUp(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	unavailable()
	return 0
}

func GetActiveModifiers(xdo unsafe.Pointer) (mods unsafe.Pointer, n, ret int) {
	unavailable()
	return nil, 0, 0
}

func SetActiveModifiers(xdo unsafe.Pointer, win xproto.Window, mods unsafe.Pointer, n int) int {
	unavailable()
	return 0
}

func ClearActiveModifiers(xdo unsafe.Pointer, win xproto.Window, mods unsafe.Pointer, n int) int {
	unavailable()
	return 0
}

func XFree(p unsafe.Pointer) {
	unavailable()
}

func CFree(p unsafe.Pointer) {
	unavailable()
}
