//go:build cgo

// Package xdosys exposes the raw libxdo entry points consumed by the
// wrapper, one Go function per native symbol. Pointers cross the
// package boundary as unsafe.Pointer so the safe layer stays free of
// cgo types.
package xdosys

/*
#cgo pkg-config: libxdo x11
#include <stdlib.h>
#include <unistd.h>
#include <xdo.h>
*/
import "C"

import (
	"unsafe"

	"github.com/BurntSushi/xgb/xproto"
)

// New calls xdo_new. display may be nil for the default display. A
// nil return means the native constructor failed.
func New(display *byte) unsafe.Pointer {
	return unsafe.Pointer(C.xdo_new((*C.char)(unsafe.Pointer(display))))
}

// Free calls xdo_free on an instance returned by New.
func Free(xdo unsafe.Pointer) {
	C.xdo_free((*C.xdo_t)(xdo))
}

// GetActiveWindow calls xdo_get_active_window, returning the window
// identifier and the native status.
func GetActiveWindow(xdo unsafe.Pointer) (xproto.Window, int) {
	var win C.Window
	ret := C.xdo_get_active_window((*C.xdo_t)(xdo), &win)
	return xproto.Window(win), int(ret)
}

// GetWindowName calls xdo_get_window_name. On success name points at
// an Xlib-allocated buffer the caller must release with XFree.
func GetWindowName(xdo unsafe.Pointer, win xproto.Window) (name unsafe.Pointer, length, nameType, ret int) {
	var cname *C.uchar
	var clen, ctype C.int
	r := C.xdo_get_window_name((*C.xdo_t)(xdo), C.Window(win), &cname, &clen, &ctype)
	return unsafe.Pointer(cname), int(clen), int(ctype), int(r)
}

// SendKeysequence calls xdo_send_keysequence_window. seq must be
// NUL-terminated; the native side does not retain it.
func SendKeysequence(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	return int(C.xdo_send_keysequence_window(
		(*C.xdo_t)(xdo), C.Window(win),
		(*C.char)(unsafe.Pointer(&seq[0])), C.useconds_t(delayMicros)))
}

// SendKeysequenceDown calls xdo_send_keysequence_window_down.
func SendKeysequenceDown(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	return int(C.xdo_send_keysequence_window_down(
		(*C.xdo_t)(xdo), C.Window(win),
		(*C.char)(unsafe.Pointer(&seq[0])), C.useconds_t(delayMicros)))
}

// SendKeysequenceUp calls xdo_send_keysequence_window_up.
func SendKeysequenceUp(xdo unsafe.Pointer, win xproto.Window, seq []byte, delayMicros uint32) int {
	return int(C.xdo_send_keysequence_window_up(
		(*C.xdo_t)(xdo), C.Window(win),
		(*C.char)(unsafe.Pointer(&seq[0])), C.useconds_t(delayMicros)))
}

// GetActiveModifiers calls xdo_get_active_modifiers. On success mods
// points at a malloc-allocated charcodemap_t array of n records that
// the caller must release with CFree.
func GetActiveModifiers(xdo unsafe.Pointer) (mods unsafe.Pointer, n, ret int) {
	var arr *C.charcodemap_t
	var cn C.int
	r := C.xdo_get_active_modifiers((*C.xdo_t)(xdo), &arr, &cn)
	return unsafe.Pointer(arr), int(cn), int(r)
}

// SetActiveModifiers calls xdo_set_active_modifiers.
func SetActiveModifiers(xdo unsafe.Pointer, win xproto.Window, mods unsafe.Pointer, n int) int {
	return int(C.xdo_set_active_modifiers(
		(*C.xdo_t)(xdo), C.Window(win), (*C.charcodemap_t)(mods), C.int(n)))
}

// ClearActiveModifiers calls xdo_clear_active_modifiers.
func ClearActiveModifiers(xdo unsafe.Pointer, win xproto.Window, mods unsafe.Pointer, n int) int {
	return int(C.xdo_clear_active_modifiers(
		(*C.xdo_t)(xdo), C.Window(win), (*C.charcodemap_t)(mods), C.int(n)))
}

// XFree releases a buffer allocated by Xlib, such as the window name
// from GetWindowName.
func XFree(p unsafe.Pointer) {
	C.XFree(p)
}

// CFree releases a buffer allocated with malloc, such as the modifier
// array from GetActiveModifiers.
func CFree(p unsafe.Pointer) {
	C.free(p)
}
