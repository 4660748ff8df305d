package xdo

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/jwilm/go-xdo/internal/xdosys"
)

// libxdo reports operation outcomes through these two status values;
// anything else is a contract violation.
const (
	xdoSuccess = 0
	xdoError   = 1
)

// nativeLib abstracts the libxdo entry points so unit tests can
// substitute a recording fake. The production implementation forwards
// to internal/xdosys.
type nativeLib interface {
	new(display *byte) unsafe.Pointer
	free(xdo unsafe.Pointer)
	getActiveWindow(xdo unsafe.Pointer) (xproto.Window, int)
	getWindowName(xdo unsafe.Pointer, win xproto.Window) (name unsafe.Pointer, length, nameType, ret int)
	sendKeysequence(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int
	sendKeysequenceDown(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int
	sendKeysequenceUp(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int
	getActiveModifiers(xdo unsafe.Pointer) (mods unsafe.Pointer, n, ret int)
	setActiveModifiers(xdo unsafe.Pointer, win xproto.Window, mods unsafe.Pointer, n int) int
	clearActiveModifiers(xdo unsafe.Pointer, win xproto.Window, mods unsafe.Pointer, n int) int
	xFree(p unsafe.Pointer)
	cFree(p unsafe.Pointer)
}

// sysLib is the cgo-backed nativeLib.
type sysLib struct{}

func (sysLib) new(display *byte) unsafe.Pointer { return xdosys.New(display) }
func (sysLib) free(xdo unsafe.Pointer)          { xdosys.Free(xdo) }

func (sysLib) getActiveWindow(xdo unsafe.Pointer) (xproto.Window, int) {
	return xdosys.GetActiveWindow(xdo)
}

func (sysLib) getWindowName(xdo unsafe.Pointer, win xproto.Window) (unsafe.Pointer, int, int, int) {
	return xdosys.GetWindowName(xdo, win)
}

func (sysLib) sendKeysequence(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	return xdosys.SendKeysequence(xdo, win, seq, delayMicros)
}

func (sysLib) sendKeysequenceDown(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	return xdosys.SendKeysequenceDown(xdo, win, seq, delayMicros)
}

func (sysLib) sendKeysequenceUp(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	return xdosys.SendKeysequenceUp(xdo, win, seq, delayMicros)
}

func (sysLib) getActiveModifiers(xdo unsafe.Pointer) (unsafe.Pointer, int, int) {
	return xdosys.GetActiveModifiers(xdo)
}

func (sysLib) setActiveModifiers(xdo unsafe.Pointer, win xproto.Window, mods unsafe.Pointer, n int) int {
	return xdosys.SetActiveModifiers(xdo, win, mods, n)
}

func (sysLib) clearActiveModifiers(xdo unsafe.Pointer, win xproto.Window, mods unsafe.Pointer, n int) int {
	return xdosys.ClearActiveModifiers(xdo, win, mods, n)
}

func (sysLib) xFree(p unsafe.Pointer) { xdosys.XFree(p) }
func (sysLib) cFree(p unsafe.Pointer) { xdosys.CFree(p) }

// goBytes copies the NUL-terminated byte string at p into Go memory.
func goBytes(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return bytes.Clone(unsafe.Slice((*byte)(p), n))
}

// checkStatus translates a native status into an error, panicking on
// values outside the documented {0, 1} pair.
func checkStatus(ret int, op string) error {
	switch ret {
	case xdoSuccess:
		return nil
	case xdoError:
		return &OpError{Op: op}
	default:
		panic(fmt.Sprintf("xdo: libxdo returned unexpected status %d from %s", ret, op))
	}
}
