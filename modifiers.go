package xdo

import (
	"runtime"
	"unsafe"
)

// Modifiers is an opaque snapshot of pressed modifier keys, produced
// by Xdo.ActiveModifiers. It owns a native-allocated array of
// charcodemap records and must be released with Close; a runtime
// cleanup frees the array if the snapshot is collected without one.
//
// Callers never inspect the records; a snapshot exists only to be
// handed back to Window.SetModifiers or Window.ClearModifiers.
type Modifiers struct {
	ptr     unsafe.Pointer
	n       int
	lib     nativeLib
	cleanup runtime.Cleanup
}

func newModifiers(lib nativeLib, ptr unsafe.Pointer, n int) *Modifiers {
	m := &Modifiers{ptr: ptr, n: n, lib: lib}
	if ptr != nil {
		m.cleanup = runtime.AddCleanup(m, lib.cFree, ptr)
	}
	return m
}

// Len reports the number of modifier records in the snapshot.
func (m *Modifiers) Len() int {
	return m.n
}

// Close releases the native array. Calling Close more than once, or
// on an empty snapshot, is a no-op.
func (m *Modifiers) Close() {
	if m.ptr == nil {
		return
	}
	m.cleanup.Stop()
	m.lib.cFree(m.ptr)
	m.ptr = nil
	m.n = 0
}
